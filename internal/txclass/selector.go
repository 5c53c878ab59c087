package txclass

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Selector is the first four bytes of a call's input data.
type Selector [4]byte

// ParseSelector decodes a 0x-prefixed 4-byte selector such as "0x5ae401dc".
func ParseSelector(s string) (Selector, error) {
	raw, err := hexutil.Decode(s)
	if err != nil {
		return Selector{}, fmt.Errorf("%w: selector %q: %w", ErrInvalidSelector, s, err)
	}

	if len(raw) != 4 {
		return Selector{}, fmt.Errorf("%w: selector %q has %d bytes", ErrInvalidSelector, s, len(raw))
	}

	return Selector(raw), nil
}

// MustParseSelector is ParseSelector for constants. It panics on error.
func MustParseSelector(s string) Selector {
	sel, err := ParseSelector(s)
	if err != nil {
		panic(err)
	}
	return sel
}

func (s Selector) String() string {
	return hexutil.Encode(s[:])
}

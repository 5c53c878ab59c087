// Package txclass maps a transaction's value and call data to a Category.
// Classification is pure: no I/O, no state besides the configured selector set.
//
// The first matching rule wins:
//
//  1. value > 0 is a NativeTransfer, whatever the call data says
//  2. the ERC-20 transfer selector is a TokenTransfer
//  3. a known swap or multicall selector is a SwapOrMulticall
//  4. anything else is Unclassified
package txclass

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/pkfire13/Tx-tracking/internal/pkg/erc20"
	"github.com/pkfire13/Tx-tracking/internal/pkg/types"
)

var (
	// ErrMalformedInput marks call data that is too short for a selector or
	// fails ABI decoding.
	ErrMalformedInput = errors.New("malformed transaction input")

	// ErrInvalidSelector is returned when a configured selector cannot be parsed.
	ErrInvalidSelector = errors.New("invalid selector")
)

// TransferSelector is transfer(address,uint256).
var TransferSelector = Selector(erc20.TransferSelector)

// DefaultSwapSelectors are the router and multicall entry points recognized
// when no WithSwapSelectors option is given.
var DefaultSwapSelectors = []Selector{
	MustParseSelector("0x5ae401dc"), // multicall(uint256,bytes[])
	MustParseSelector("0xc10bea5c"),
	MustParseSelector("0xac9650d8"), // multicall(bytes[])
	MustParseSelector("0x3593564c"), // execute(bytes,bytes[],uint256)
}

type config struct {
	swapSelectors []Selector
}

// Option configures a Classifier.
type Option func(*config)

// WithSwapSelectors replaces the default swap/multicall selector set.
func WithSwapSelectors(selectors ...Selector) Option {
	return func(c *config) {
		c.swapSelectors = selectors
	}
}

// Classifier is safe for concurrent use.
type Classifier struct {
	swapSelectors types.Set[Selector]
}

// New builds a Classifier.
func New(opts ...Option) *Classifier {
	cfg := config{
		swapSelectors: DefaultSwapSelectors,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Classifier{
		swapSelectors: types.NewSet(cfg.swapSelectors...),
	}
}

// Classify returns the category of a transaction carrying value and input.
// A nil value counts as zero.
func (c *Classifier) Classify(value *big.Int, input []byte) Category {
	if value != nil && value.Sign() > 0 {
		return NativeTransfer{Value: new(big.Int).Set(value)}
	}

	if len(input) == 0 {
		return Unclassified{}
	}

	if len(input) < len(Selector{}) {
		return Unclassified{Reason: fmt.Errorf("%w: %d bytes of input", ErrMalformedInput, len(input))}
	}

	selector := Selector(input[:4])

	if selector == TransferSelector {
		recipient, amount, err := erc20.DecodeTransferCall(input)
		if err != nil {
			return Unclassified{Reason: fmt.Errorf("%w: %w", ErrMalformedInput, err)}
		}
		return TokenTransfer{Recipient: recipient, Amount: amount}
	}

	if c.swapSelectors.Has(selector) {
		return SwapOrMulticall{Selector: selector}
	}

	return Unclassified{}
}

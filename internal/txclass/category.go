package txclass

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Kind enumerates the transaction categories.
type Kind int

const (
	KindUnclassified Kind = iota
	KindNativeTransfer
	KindTokenTransfer
	KindSwapOrMulticall
)

func (k Kind) String() string {
	switch k {
	case KindNativeTransfer:
		return "native_transfer"
	case KindTokenTransfer:
		return "token_transfer"
	case KindSwapOrMulticall:
		return "swap_or_multicall"
	default:
		return "unclassified"
	}
}

// Category is the closed set of classification results. The concrete types
// are NativeTransfer, TokenTransfer, SwapOrMulticall and Unclassified.
type Category interface {
	Kind() Kind
	sealed()
}

// NativeTransfer moves native currency. Value is always positive.
type NativeTransfer struct {
	Value *big.Int
}

// TokenTransfer is a call to transfer(address,uint256) on a token contract.
type TokenTransfer struct {
	Recipient common.Address
	Amount    *big.Int
}

// SwapOrMulticall is a call to a known router or multicall entry point.
// Its token movements are only visible in the receipt logs.
type SwapOrMulticall struct {
	Selector Selector
}

// Unclassified transactions produce no event. Reason is nil when the call
// simply matched no known selector.
type Unclassified struct {
	Reason error
}

func (NativeTransfer) Kind() Kind  { return KindNativeTransfer }
func (TokenTransfer) Kind() Kind   { return KindTokenTransfer }
func (SwapOrMulticall) Kind() Kind { return KindSwapOrMulticall }
func (Unclassified) Kind() Kind    { return KindUnclassified }

func (NativeTransfer) sealed()  {}
func (TokenTransfer) sealed()   {}
func (SwapOrMulticall) sealed() {}
func (Unclassified) sealed()    {}

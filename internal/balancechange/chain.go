package balancechange

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Transaction is the subset of a mined transaction the reconstruction needs.
// To is nil for contract creations.
type Transaction struct {
	Hash        common.Hash
	From        common.Address
	To          *common.Address
	Value       *big.Int
	Gas         uint64
	GasPrice    *big.Int
	Input       []byte
	BlockHash   common.Hash
	BlockNumber uint64
}

// Log is a receipt log entry.
type Log struct {
	Address common.Address
	Topics  []common.Hash
	Data    []byte
}

// Receipt carries the fee inputs and the ordered logs of a transaction.
// EffectiveGasPrice is nil when the node does not report it.
type Receipt struct {
	GasUsed           uint64
	EffectiveGasPrice *big.Int
	Logs              []Log
}

// ChainReader is the read-only chain access the reconstruction depends on.
// Balances and contract calls are evaluated at the current head.
type ChainReader interface {
	FetchTransaction(ctx context.Context, hash common.Hash) (Transaction, error)
	FetchReceipt(ctx context.Context, hash common.Hash) (Receipt, error)
	NativeBalance(ctx context.Context, account common.Address) (*big.Int, error)

	// CallContract wraps ErrCallReverted when the call itself reverted.
	CallContract(ctx context.Context, contract common.Address, data []byte) ([]byte, error)
}

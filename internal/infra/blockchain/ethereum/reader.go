package ethereum

import (
	"context"
	"fmt"
	"math/big"

	goethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/pkfire13/Tx-tracking/internal/balancechange"
)

type (
	// rpcTransaction is the part of eth_getTransactionByHash the tracker
	// reads. BlockHash is nil while the transaction is pending.
	rpcTransaction struct {
		Hash        common.Hash     `json:"hash"`
		From        common.Address  `json:"from"`
		To          *common.Address `json:"to"`
		Value       *hexutil.Big    `json:"value"`
		Gas         hexutil.Uint64  `json:"gas"`
		GasPrice    *hexutil.Big    `json:"gasPrice"`
		Input       hexutil.Bytes   `json:"input"`
		BlockHash   *common.Hash    `json:"blockHash"`
		BlockNumber *hexutil.Uint64 `json:"blockNumber"`
	}

	rpcLog struct {
		Address common.Address `json:"address"`
		Topics  []common.Hash  `json:"topics"`
		Data    hexutil.Bytes  `json:"data"`
	}

	// rpcReceipt is the part of eth_getTransactionReceipt the tracker reads.
	// Some nodes omit effectiveGasPrice.
	rpcReceipt struct {
		GasUsed           hexutil.Uint64 `json:"gasUsed"`
		EffectiveGasPrice *hexutil.Big   `json:"effectiveGasPrice"`
		Logs              []rpcLog       `json:"logs"`
	}
)

func bigOrZero(v *hexutil.Big) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return v.ToInt()
}

func (t rpcTransaction) toTransaction() balancechange.Transaction {
	return balancechange.Transaction{
		Hash:        t.Hash,
		From:        t.From,
		To:          t.To,
		Value:       bigOrZero(t.Value),
		Gas:         uint64(t.Gas),
		GasPrice:    bigOrZero(t.GasPrice),
		Input:       t.Input,
		BlockHash:   *t.BlockHash,
		BlockNumber: uint64(*t.BlockNumber),
	}
}

func (r rpcReceipt) toReceipt() balancechange.Receipt {
	receipt := balancechange.Receipt{
		GasUsed: uint64(r.GasUsed),
		Logs:    make([]balancechange.Log, len(r.Logs)),
	}
	if r.EffectiveGasPrice != nil {
		receipt.EffectiveGasPrice = r.EffectiveGasPrice.ToInt()
	}

	for i, l := range r.Logs {
		receipt.Logs[i] = balancechange.Log{
			Address: l.Address,
			Topics:  l.Topics,
			Data:    l.Data,
		}
	}

	return receipt
}

// FetchTransaction returns a mined transaction. A pending transaction yields
// ErrTransactionPending.
func (c *client) FetchTransaction(ctx context.Context, hash common.Hash) (balancechange.Transaction, error) {
	var tx *rpcTransaction

	err := c.call(ctx, "eth_getTransactionByHash", func(ctx context.Context) error {
		if err := c.rpc.CallContext(ctx, &tx, "eth_getTransactionByHash", hash); err != nil {
			return err
		}
		if tx == nil {
			return fmt.Errorf("%w: transaction %s", ErrNotFound, hash.Hex())
		}
		return nil
	})
	if err != nil {
		return balancechange.Transaction{}, err
	}

	if tx.BlockHash == nil || tx.BlockNumber == nil {
		return balancechange.Transaction{}, fmt.Errorf("%w: %s", ErrTransactionPending, hash.Hex())
	}

	return tx.toTransaction(), nil
}

// FetchReceipt returns the fee inputs and the ordered logs of a transaction.
func (c *client) FetchReceipt(ctx context.Context, hash common.Hash) (balancechange.Receipt, error) {
	var receipt *rpcReceipt

	err := c.call(ctx, "eth_getTransactionReceipt", func(ctx context.Context) error {
		if err := c.rpc.CallContext(ctx, &receipt, "eth_getTransactionReceipt", hash); err != nil {
			return err
		}
		if receipt == nil {
			return fmt.Errorf("%w: receipt %s", ErrNotFound, hash.Hex())
		}
		return nil
	})
	if err != nil {
		return balancechange.Receipt{}, err
	}

	return receipt.toReceipt(), nil
}

// NativeBalance returns the account's balance at the chain head, in wei.
func (c *client) NativeBalance(ctx context.Context, account common.Address) (*big.Int, error) {
	var balance *big.Int

	err := c.call(ctx, "eth_getBalance", func(ctx context.Context) (err error) {
		balance, err = c.eth.BalanceAt(ctx, account, nil)
		return err
	})
	if err != nil {
		return nil, err
	}

	return balance, nil
}

// CallContract runs eth_call against contract at the chain head. A revert is
// returned on the first attempt, wrapped with balancechange.ErrCallReverted.
func (c *client) CallContract(ctx context.Context, contract common.Address, data []byte) ([]byte, error) {
	var out []byte

	err := c.call(ctx, "eth_call", func(ctx context.Context) (err error) {
		out, err = c.eth.CallContract(ctx, goethereum.CallMsg{To: &contract, Data: data}, nil)
		return err
	})
	if isRevert(err) {
		return nil, fmt.Errorf("%w: %w", balancechange.ErrCallReverted, err)
	}
	if err != nil {
		return nil, err
	}

	return out, nil
}

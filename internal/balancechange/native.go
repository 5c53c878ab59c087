package balancechange

import (
	"context"
	"math/big"

	"github.com/pkfire13/Tx-tracking/internal/txclass"
)

// nativeTransfer emits the sender event (previous = current + value + cost)
// and, unless the transaction created a contract, the receiver event
// (previous = current - value, no cost).
func (r *Reconstructor) nativeTransfer(ctx context.Context, tx Transaction, c txclass.NativeTransfer) (Result, error) {
	cost, _, err := r.cost(ctx, tx)
	if err != nil {
		return Result{}, err
	}

	fromBalance, err := r.nativeBalance(ctx, tx.From)
	if err != nil {
		return Result{}, err
	}

	previousFrom := new(big.Int).Add(fromBalance, c.Value)
	previousFrom.Add(previousFrom, cost)

	res := Result{
		Events: []BalanceChangeEvent{
			r.newEvent(tx, tx.From, fromBalance, previousFrom, cost),
		},
	}

	if tx.To == nil {
		return res, nil
	}

	toBalance, err := r.nativeBalance(ctx, *tx.To)
	if err != nil {
		return Result{}, err
	}

	previousTo := new(big.Int).Sub(toBalance, c.Value)
	res.Events = append(res.Events, r.newEvent(tx, *tx.To, toBalance, previousTo, new(big.Int)))

	return res, nil
}

package balancechange

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/pkfire13/Tx-tracking/internal/pkg/logger"
)

// swap aggregates a sub change for the source and an add change for the
// destination of every fungible Transfer log into a single sender event.
// A receipt without Transfer logs still yields the event since gas was paid.
func (r *Reconstructor) swap(ctx context.Context, tx Transaction) (Result, error) {
	cost, receipt, err := r.cost(ctx, tx)
	if err != nil {
		return Result{}, err
	}

	fromBalance, err := r.nativeBalance(ctx, tx.From)
	if err != nil {
		return Result{}, err
	}

	transfers, err := DecodeTransferLogs(receipt.Logs)
	if err != nil {
		logger.Warn(ctx, "skipping malformed transfer logs",
			"tx.hash", tx.Hash.Hex(),
			"error", err,
		)
	}

	var res Result
	event := r.newEvent(tx, tx.From, fromBalance, new(big.Int).Add(fromBalance, cost), cost)

	for _, transfer := range transfers {
		legs := []struct {
			holder    common.Address
			direction direction
		}{
			{transfer.From, outgoing},
			{transfer.To, incoming},
		}

		for _, leg := range legs {
			change, err := r.tokenChange(ctx, transfer.Token, leg.holder, transfer.Value, leg.direction)
			if err != nil {
				if err := recordFailure(ctx, &res, tx, leg.holder, transfer.Token, err); err != nil {
					return Result{}, err
				}
				continue
			}

			event.TokenChanges = append(event.TokenChanges, change)
		}
	}

	res.Events = []BalanceChangeEvent{event}
	return res, nil
}

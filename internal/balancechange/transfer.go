package balancechange

import (
	"context"
	"fmt"
	"math/big"

	"github.com/pkfire13/Tx-tracking/internal/txclass"
)

// tokenTransfer emits one event for the sender and one for the recipient,
// each with its single TokenChange. Only the sender pays the fee.
func (r *Reconstructor) tokenTransfer(ctx context.Context, tx Transaction, c txclass.TokenTransfer) (Result, error) {
	if tx.To == nil {
		return Result{}, fmt.Errorf("%w: token transfer without a contract", txclass.ErrMalformedInput)
	}
	token := *tx.To

	cost, _, err := r.cost(ctx, tx)
	if err != nil {
		return Result{}, err
	}

	fromBalance, err := r.nativeBalance(ctx, tx.From)
	if err != nil {
		return Result{}, err
	}

	toBalance, err := r.nativeBalance(ctx, c.Recipient)
	if err != nil {
		return Result{}, err
	}

	var res Result

	sender := r.newEvent(tx, tx.From, fromBalance, new(big.Int).Add(fromBalance, cost), cost)
	change, err := r.tokenChange(ctx, token, tx.From, c.Amount, outgoing)
	if err != nil {
		if err := recordFailure(ctx, &res, tx, tx.From, token, err); err != nil {
			return Result{}, err
		}
	} else {
		sender.TokenChanges = append(sender.TokenChanges, change)
	}

	recipient := r.newEvent(tx, c.Recipient, toBalance, toBalance, new(big.Int))
	change, err = r.tokenChange(ctx, token, c.Recipient, c.Amount, incoming)
	if err != nil {
		if err := recordFailure(ctx, &res, tx, c.Recipient, token, err); err != nil {
			return Result{}, err
		}
	} else {
		recipient.TokenChanges = append(recipient.TokenChanges, change)
	}

	res.Events = []BalanceChangeEvent{sender, recipient}
	return res, nil
}

package blockproc

import (
	"context"

	"github.com/pkfire13/Tx-tracking/internal/balancechange"
)

// EventSink receives the balance change events of one transaction at a time,
// in block order.
type EventSink interface {
	// Publish delivers the events of a single transaction. An error is logged
	// by the worker and does not stop the block.
	Publish(ctx context.Context, events ...balancechange.BalanceChangeEvent) error
}

// EventSinkFunc adapts a function to EventSink.
type EventSinkFunc func(ctx context.Context, events ...balancechange.BalanceChangeEvent) error

func (f EventSinkFunc) Publish(ctx context.Context, events ...balancechange.BalanceChangeEvent) error {
	return f(ctx, events...)
}

// PartialFailureNotifier is told about token changes that were skipped
// because a contract call failed.
type PartialFailureNotifier interface {
	NotifyPartialFailure(ctx context.Context, failure balancechange.PartialFailure) error
}

// BlockProcessedNotifier is told when every transaction of a block was
// handled.
type BlockProcessedNotifier interface {
	NotifyBlockProcessed(ctx context.Context, report BlockReport) error
}

type nopNotifier struct{}

func (nopNotifier) NotifyPartialFailure(context.Context, balancechange.PartialFailure) error {
	return nil
}

func (nopNotifier) NotifyBlockProcessed(context.Context, BlockReport) error {
	return nil
}

// Package logsink writes balance change events and processing reports to the
// application log. It is the default sink when no broker is configured.
package logsink

import (
	"context"

	"github.com/pkfire13/Tx-tracking/internal/balancechange"
	"github.com/pkfire13/Tx-tracking/internal/blockproc"
	"github.com/pkfire13/Tx-tracking/internal/pkg/logger"
)

type sink struct{}

var (
	_ blockproc.EventSink              = (*sink)(nil)
	_ blockproc.PartialFailureNotifier = (*sink)(nil)
	_ blockproc.BlockProcessedNotifier = (*sink)(nil)
)

func New() *sink {
	return &sink{}
}

// Publish logs one line per event at info level.
func (s *sink) Publish(ctx context.Context, events ...balancechange.BalanceChangeEvent) error {
	for _, event := range events {
		logger.Info(ctx, "balance change",
			"account.address", event.AccountAddress,
			"tx.hash", event.ChangeSignature,
			"event", event,
		)
	}

	return nil
}

func (s *sink) NotifyPartialFailure(ctx context.Context, failure balancechange.PartialFailure) error {
	logger.Warn(ctx, "token balance change dropped",
		"tx.hash", failure.TransactionHash.Hex(),
		"account.address", failure.AccountAddress.Hex(),
		"token.address", failure.TokenContractAddress.Hex(),
		"error", failure.Err,
	)

	return nil
}

func (s *sink) NotifyBlockProcessed(ctx context.Context, report blockproc.BlockReport) error {
	logger.Info(ctx, "block processed",
		"block.number", report.Block.Number,
		"block.hash", report.Block.Hash.Hex(),
		"block.processing_id", report.ProcessingID,
		"block.transactions", report.Transactions,
		"block.events", report.Events,
		"block.partial_failures", report.PartialFailures,
		"block.failed_transactions", report.FailedTxs,
		"block.duration", report.ProcessedAt.Sub(report.ReceivedAt).String(),
	)

	return nil
}

package blockproc

import (
	"context"
	"errors"

	"github.com/ethereum/go-ethereum/common"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/pkfire13/Tx-tracking/internal/balancechange"
	"github.com/pkfire13/Tx-tracking/internal/chainstream"
	"github.com/pkfire13/Tx-tracking/internal/pkg/logger"
	"github.com/pkfire13/Tx-tracking/internal/pkg/x/chflow"
	"github.com/pkfire13/Tx-tracking/internal/txclass"
)

// handleBlocks processes queued headers one at a time until the queue is
// closed or ctx is canceled.
func (s *service) handleBlocks(ctx context.Context, headersCh <-chan chainstream.Header, cp *checkpoint) {
	for {
		header, ok := chflow.Receive(ctx, headersCh)
		if !ok {
			return
		}

		s.processBlock(ctx, header, cp)
	}
}

// processBlock handles every transaction of the block announced by header.
//
// The block is claimed first so a head re-delivered after a reconnect is
// skipped. A block whose processing is interrupted by ctx is neither marked
// processed nor checkpointed.
func (s *service) processBlock(ctx context.Context, header chainstream.Header, cp *checkpoint) {
	ctx, span := tracer.Start(ctx, "blockproc.processBlock", trace.WithAttributes(
		attribute.String("block.hash", header.Hash.Hex()),
		attribute.Int64("block.number", int64(header.Number)),
	))
	defer span.End()

	state := newBlockProcessingState(s.network)
	ctx = logger.Derive(ctx,
		"block.hash", header.Hash.Hex(),
		"block.number", header.Number,
		"block.processing_id", state.processingID,
	)

	if err := s.idempotencyGuard.ClaimBlock(ctx, s.network, header.Hash, s.claimTTL); err != nil {
		if errors.Is(err, ErrAlreadyFinished) || errors.Is(err, ErrStillInProgress) {
			logger.Debug(ctx, "skipping block", "reason", err)
			return
		}

		logger.Error(ctx, "error claiming block", "error", err)
		span.SetStatus(codes.Error, err.Error())
		return
	}

	if skipped := cp.gap(header.Number); skipped > 0 {
		logger.Warn(ctx, "blocks skipped",
			"checkpoint.height", cp.height,
			"blocks.skipped", skipped,
		)
		s.metrics.recordSkippedBlocks(ctx, skipped)
	}

	block, err := s.source.FetchBlock(ctx, header.Hash)
	if err != nil {
		if ctx.Err() == nil {
			logger.Error(ctx, "error fetching block", "error", err)
			span.SetStatus(codes.Error, err.Error())
		}
		return
	}
	state.block = block

	for _, txHash := range block.Transactions {
		if ctx.Err() != nil {
			return
		}

		s.processTransaction(ctx, txHash, &state)
	}

	if ctx.Err() != nil {
		return
	}

	state.finalize()
	s.metrics.recordBlock(ctx, state.duration())

	if err := s.idempotencyGuard.MarkBlockProcessed(ctx, s.network, block.Hash); err != nil {
		logger.Error(ctx, "error marking block as processed", "error", err)
	}

	if err := cp.advance(ctx, block.Number); err != nil {
		logger.Error(ctx, "failed to save checkpoint", "error", err)
	}

	if err := s.blockProcessedNotifier.NotifyBlockProcessed(ctx, state.asReport()); err != nil {
		logger.Error(ctx, "error notifying processed block", "error", err)
	}
}

// processTransaction derives and publishes the events of one transaction.
// Events are published only once the whole transaction was reconstructed.
func (s *service) processTransaction(ctx context.Context, txHash common.Hash, state *blockProcessingState) {
	ctx = logger.Derive(ctx, "tx.hash", txHash.Hex())

	d, err := s.processor.Derive(ctx, txHash)
	if err != nil {
		if ctx.Err() != nil {
			return
		}

		state.recordFailedTransaction()
		s.metrics.recordFailedTransaction(ctx)

		if errors.Is(err, txclass.ErrMalformedInput) || errors.Is(err, balancechange.ErrMalformedLog) {
			logger.Warn(ctx, "skipping malformed transaction", "error", err)
			return
		}

		logger.Error(ctx, "error deriving balance changes", "error", err)
		return
	}

	kind := txclass.KindUnclassified
	if d.Category != nil {
		kind = d.Category.Kind()
	}

	if unclassified, ok := d.Category.(txclass.Unclassified); ok && unclassified.Reason != nil {
		logger.Warn(ctx, "skipping malformed transaction", "error", unclassified.Reason)
	}

	state.recordTransaction(kind, len(d.Events), len(d.Failures))
	s.metrics.recordTransaction(ctx, kind, len(d.Events), len(d.Failures))

	for _, failure := range d.Failures {
		logger.Warn(ctx, "token change skipped",
			"account.address", failure.AccountAddress.Hex(),
			"token.address", failure.TokenContractAddress.Hex(),
			"error", failure.Err,
		)

		if err := s.partialFailureNotifier.NotifyPartialFailure(ctx, failure); err != nil {
			logger.Error(ctx, "error notifying partial failure", "error", err)
		}
	}

	if len(d.Events) == 0 {
		return
	}

	if err := s.sink.Publish(ctx, d.Events...); err != nil {
		logger.Error(ctx, "error publishing balance change events",
			"tx.category", kind.String(),
			"error", err,
		)
	}
}

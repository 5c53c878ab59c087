package blockproc

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/pkfire13/Tx-tracking/internal/txclass"
)

const instrumentationName = "github.com/pkfire13/Tx-tracking/internal/blockproc"

var tracer = otel.Tracer(instrumentationName)

type metrics struct {
	blocksProcessed metric.Int64Counter
	blocksSkipped   metric.Int64Counter
	blockDuration   metric.Float64Histogram
	transactions    metric.Int64Counter
	failedTxs       metric.Int64Counter
	eventsEmitted   metric.Int64Counter
	partialFailures metric.Int64Counter
}

// newMetrics registers the worker instruments on the global meter provider.
// Registration errors are reported to the otel error handler and leave the
// instrument unset.
func newMetrics() *metrics {
	var (
		meter = otel.Meter(instrumentationName)
		m     metrics
		err   error
	)

	m.blocksProcessed, err = meter.Int64Counter("txtracker.blocks.processed",
		metric.WithDescription("Blocks whose transactions were all handled."))
	handle(err)

	m.blocksSkipped, err = meter.Int64Counter("txtracker.blocks.skipped",
		metric.WithDescription("Blocks between the checkpoint and a new head that were never processed."))
	handle(err)

	m.blockDuration, err = meter.Float64Histogram("txtracker.block.duration",
		metric.WithDescription("Time spent processing a block."),
		metric.WithUnit("s"))
	handle(err)

	m.transactions, err = meter.Int64Counter("txtracker.transactions",
		metric.WithDescription("Processed transactions by category."))
	handle(err)

	m.failedTxs, err = meter.Int64Counter("txtracker.transactions.failed",
		metric.WithDescription("Transactions that produced no events because of an error."))
	handle(err)

	m.eventsEmitted, err = meter.Int64Counter("txtracker.events.emitted",
		metric.WithDescription("Balance change events handed to the sink."))
	handle(err)

	m.partialFailures, err = meter.Int64Counter("txtracker.partial_failures",
		metric.WithDescription("Token changes skipped after a failed contract call."))
	handle(err)

	return &m
}

func handle(err error) {
	if err != nil {
		otel.Handle(err)
	}
}

func (m *metrics) recordBlock(ctx context.Context, d time.Duration) {
	if m.blocksProcessed != nil {
		m.blocksProcessed.Add(ctx, 1)
	}
	if m.blockDuration != nil {
		m.blockDuration.Record(ctx, d.Seconds())
	}
}

func (m *metrics) recordSkippedBlocks(ctx context.Context, n uint64) {
	if m.blocksSkipped != nil {
		m.blocksSkipped.Add(ctx, int64(n))
	}
}

func (m *metrics) recordTransaction(ctx context.Context, kind txclass.Kind, events, partialFailures int) {
	if m.transactions != nil {
		m.transactions.Add(ctx, 1, metric.WithAttributes(attribute.String("tx.category", kind.String())))
	}
	if m.eventsEmitted != nil && events > 0 {
		m.eventsEmitted.Add(ctx, int64(events))
	}
	if m.partialFailures != nil && partialFailures > 0 {
		m.partialFailures.Add(ctx, int64(partialFailures))
	}
}

func (m *metrics) recordFailedTransaction(ctx context.Context) {
	if m.failedTxs != nil {
		m.failedTxs.Add(ctx, 1)
	}
}

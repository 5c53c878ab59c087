package chainstream

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/pkfire13/Tx-tracking/internal/chainstream"

type metrics struct {
	reconnectFailures metric.Int64Counter
}

// newMetrics registers the stream instruments on the global meter provider.
// Instruments that fail to register fall back to no-ops.
func newMetrics() *metrics {
	meter := otel.Meter(instrumentationName)

	reconnectFailures, err := meter.Int64Counter("txtracker.reconnect.attempts",
		metric.WithDescription("Failed attempts to re-subscribe to new blocks."),
	)
	if err != nil {
		otel.Handle(err)
	}

	return &metrics{reconnectFailures: reconnectFailures}
}

func (m *metrics) recordReconnectFailure(ctx context.Context) {
	if m.reconnectFailures != nil {
		m.reconnectFailures.Add(ctx, 1)
	}
}

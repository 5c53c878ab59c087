// Package telemetry initializes OpenTelemetry metrics and tracing. Metrics are
// either pushed over OTLP gRPC or exposed for scraping through the otel
// Prometheus exporter. Traces are exported over OTLP when that exporter is
// selected; otherwise spans are still created so logs carry trace ids.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.34.0"
)

// ErrUnknownExporter is returned by Init for an unsupported exporter name.
var ErrUnknownExporter = errors.New("unknown telemetry exporter")

// Exporter selects where telemetry is sent.
type Exporter string

const (
	ExporterNone       Exporter = "none"
	ExporterOTLP       Exporter = "otlp"
	ExporterPrometheus Exporter = "prometheus"
)

// MetricsPath is the path the Prometheus handler is mounted on.
const MetricsPath = "/metrics"

type config struct {
	exporter    Exporter
	metricsAddr string
}

// Option configures Init.
type Option func(*config)

// WithExporter selects the exporter. Default: ExporterNone.
func WithExporter(e Exporter) Option {
	return func(c *config) {
		c.exporter = e
	}
}

// WithMetricsAddr sets the listen address of the Prometheus endpoint.
// Default: ":9464".
func WithMetricsAddr(addr string) Option {
	return func(c *config) {
		c.metricsAddr = addr
	}
}

// initMeterProvider sets up an OTLP gRPC MeterProvider using a
// periodic reader and the given Resource.
func initMeterProvider(ctx context.Context, res *sdkresource.Resource) (*sdkmetric.MeterProvider, error) {
	exporter, err := otlpmetricgrpc.New(ctx)
	if err != nil {
		return nil, err
	}

	return sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter)),
		sdkmetric.WithResource(res),
	), nil
}

// initPrometheusMeterProvider builds a MeterProvider whose instruments are
// collected into a dedicated Prometheus registry.
func initPrometheusMeterProvider(res *sdkresource.Resource) (*sdkmetric.MeterProvider, *prometheus.Registry, error) {
	registry := prometheus.NewRegistry()

	exporter, err := otelprom.New(otelprom.WithRegisterer(registry))
	if err != nil {
		return nil, nil, err
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
		sdkmetric.WithResource(res),
	)

	return mp, registry, nil
}

// initTracerProvider sets up an OTLP gRPC TracerProvider using a
// batched exporter and the given Resource.
func initTracerProvider(ctx context.Context, res *sdkresource.Resource) (*sdktrace.TracerProvider, error) {
	exporter, err := otlptracegrpc.New(ctx)
	if err != nil {
		return nil, err
	}

	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	), nil
}

// newResource merges the default system resource with a ServiceName attribute.
func newResource(serviceName string) (*sdkresource.Resource, error) {
	return sdkresource.Merge(
		sdkresource.Default(),
		sdkresource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
		),
	)
}

func newMetricsHandler(registry *prometheus.Registry) http.Handler {
	mux := http.NewServeMux()
	mux.Handle(MetricsPath, promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	return mux
}

// serveMetrics binds addr synchronously so a busy port fails Init, then
// serves the handler in the background.
func serveMetrics(addr string, handler http.Handler) (*http.Server, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen metrics on %s: %w", addr, err)
	}

	server := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		_ = server.Serve(ln)
	}()

	return server, nil
}

// ShutdownFunc defines a callback to flush and stop all telemetry providers.
// Call this function at application shutdown to ensure all telemetry is sent.
type ShutdownFunc func(ctx context.Context) error

// Init configures OpenTelemetry for the given service and registers the
// global meter and tracer providers. With ExporterNone nothing is registered
// and the returned ShutdownFunc is a no-op.
func Init(ctx context.Context, serviceName string, opts ...Option) (ShutdownFunc, error) {
	cfg := config{
		exporter:    ExporterNone,
		metricsAddr: ":9464",
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.exporter == ExporterNone || cfg.exporter == "" {
		return func(context.Context) error { return nil }, nil
	}

	res, err := newResource(serviceName)
	if err != nil {
		return nil, err
	}

	switch cfg.exporter {
	case ExporterOTLP:
		mp, err := initMeterProvider(ctx, res)
		if err != nil {
			return nil, err
		}

		tp, err := initTracerProvider(ctx, res)
		if err != nil {
			return nil, errors.Join(err, mp.Shutdown(ctx))
		}

		otel.SetMeterProvider(mp)
		otel.SetTracerProvider(tp)

		return func(ctx context.Context) error {
			return errors.Join(mp.Shutdown(ctx), tp.Shutdown(ctx))
		}, nil
	case ExporterPrometheus:
		mp, registry, err := initPrometheusMeterProvider(res)
		if err != nil {
			return nil, err
		}

		server, err := serveMetrics(cfg.metricsAddr, newMetricsHandler(registry))
		if err != nil {
			return nil, errors.Join(err, mp.Shutdown(ctx))
		}

		tp := sdktrace.NewTracerProvider(sdktrace.WithResource(res))

		otel.SetMeterProvider(mp)
		otel.SetTracerProvider(tp)

		return func(ctx context.Context) error {
			return errors.Join(server.Shutdown(ctx), mp.Shutdown(ctx), tp.Shutdown(ctx))
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownExporter, cfg.exporter)
	}
}

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkfire13/Tx-tracking/internal/balancechange"
	"github.com/pkfire13/Tx-tracking/internal/blockproc"
	"github.com/pkfire13/Tx-tracking/internal/chainstream"
	"github.com/pkfire13/Tx-tracking/internal/config"
	"github.com/pkfire13/Tx-tracking/internal/handlers/cli"
	"github.com/pkfire13/Tx-tracking/internal/infra/blockchain/ethereum"
	pollingethereum "github.com/pkfire13/Tx-tracking/internal/infra/blockchain/jsonrpc/ethereum"
	"github.com/pkfire13/Tx-tracking/internal/infra/sink/kafka"
	"github.com/pkfire13/Tx-tracking/internal/infra/sink/logsink"
	"github.com/pkfire13/Tx-tracking/internal/infra/storage/redis"
	"github.com/pkfire13/Tx-tracking/internal/pkg/logger"
	"github.com/pkfire13/Tx-tracking/internal/pkg/telemetry"
	xhttp "github.com/pkfire13/Tx-tracking/internal/pkg/transport/http"
	"github.com/pkfire13/Tx-tracking/internal/pkg/transport/jsonrpc"
	"github.com/pkfire13/Tx-tracking/internal/txclass"
)

const serviceName = "txtracker"

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) (err error) {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	shutdownTelemetry, err := telemetry.Init(ctx, serviceName,
		telemetry.WithExporter(cfg.Exporter()),
		telemetry.WithMetricsAddr(cfg.MetricsAddr),
	)
	if err != nil {
		return fmt.Errorf("init telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		err = errors.Join(err, shutdownTelemetry(shutdownCtx))
	}()

	node, err := ethereum.Dial(ctx, cfg.RPCEndpoint,
		ethereum.WithTimeout(cfg.RPCTimeout),
		ethereum.WithRateLimit(cfg.RPCRateLimit, cfg.RPCRateBurst),
		ethereum.WithRetry(cfg.RPCRetryAttempts, cfg.RPCRetryDelay),
	)
	if err != nil {
		return err
	}
	defer node.Close()

	stream := chainstream.New(headSource(cfg, node),
		chainstream.WithQueueSize(cfg.BlockQueueSize),
		chainstream.WithMaxReconnectAttempts(cfg.MaxReconnectAttempts),
		chainstream.WithReconnectBackoff(cfg.ReconnectBackoff, cfg.ReconnectMaxBackoff),
	)

	reconstructor, err := newReconstructor(cfg, node)
	if err != nil {
		return err
	}

	sink, closeSink := newSink(cfg)
	defer func() { err = errors.Join(err, closeSink.Close()) }()

	notifier := logsink.New()
	opts := []blockproc.Option{
		blockproc.WithNetwork(cfg.Network),
		blockproc.WithPartialFailureNotifier(notifier),
		blockproc.WithBlockProcessedNotifier(notifier),
	}

	if cfg.RedisAddr != "" {
		store, err := redis.NewClient(ctx, cfg.RedisAddr,
			redis.WithAuth(cfg.RedisUsername, cfg.RedisPassword),
			redis.WithDB(cfg.RedisDB),
		)
		if err != nil {
			return err
		}
		defer store.Close()

		opts = append(opts,
			blockproc.WithIdempotencyGuard(store, cfg.BlockClaimTTL),
			blockproc.WithCheckpointStorage(store),
		)
	}

	bp := blockproc.New(stream, node, reconstructor, sink, opts...)

	return cli.Run(ctx, bp)
}

// headSource subscribes over websockets and falls back to polling otherwise.
func headSource(cfg config.Config, node chainstream.Blockchain) chainstream.Blockchain {
	if cfg.SupportsSubscriptions() {
		return node
	}

	httpClient := xhttp.NewStandardClient(
		xhttp.WithTimeout(cfg.RPCTimeout),
		xhttp.WithName("head-poller"),
	)

	return pollingethereum.NewClient(
		jsonrpc.NewClient(httpClient, cfg.RPCEndpoint),
		pollingethereum.WithPollInterval(cfg.PollInterval),
	)
}

func newReconstructor(cfg config.Config, chain balancechange.ChainReader) (*balancechange.Reconstructor, error) {
	chainID, err := balancechange.ParseChain(cfg.Chain)
	if err != nil {
		return nil, err
	}

	var classifierOpts []txclass.Option
	if len(cfg.SwapSelectors) > 0 {
		selectors := make([]txclass.Selector, 0, len(cfg.SwapSelectors))
		for _, s := range cfg.SwapSelectors {
			selector, err := txclass.ParseSelector(s)
			if err != nil {
				return nil, err
			}
			selectors = append(selectors, selector)
		}

		classifierOpts = append(classifierOpts, txclass.WithSwapSelectors(selectors...))
	}

	opts := []balancechange.Option{
		balancechange.WithChain(chainID),
		balancechange.WithCurrency(cfg.CurrencySymbol, cfg.NativeDecimals),
		balancechange.WithMetadataTTL(cfg.TokenMetadataTTL),
		balancechange.WithClassifier(txclass.New(classifierOpts...)),
	}
	if decimals, ok := cfg.FixedDecimals(); ok {
		opts = append(opts, balancechange.WithFixedTokenDecimals(decimals))
	}

	return balancechange.New(chain, opts...), nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// newSink publishes to Kafka when brokers are configured and to the log
// otherwise.
func newSink(cfg config.Config) (blockproc.EventSink, io.Closer) {
	if len(cfg.KafkaBrokers) == 0 {
		return logsink.New(), nopCloser{}
	}

	s := kafka.New(cfg.KafkaBrokers, cfg.KafkaTopic,
		kafka.WithWriteTimeout(cfg.KafkaWriteTimeout),
		kafka.WithMaxAttempts(cfg.KafkaMaxAttempts),
	)
	return s, s
}

// Package ethereum talks to an EVM node through go-ethereum's RPC client.
//
// A single client serves the three read paths of the tracker: new head
// subscriptions (chainstream.Blockchain), block lookups (blockproc.BlockSource)
// and transaction, receipt, balance and eth_call reads
// (balancechange.ChainReader). Every call is rate limited, bounded by a
// per-call timeout and retried while the failure is transient.
package ethereum

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"golang.org/x/time/rate"

	"github.com/pkfire13/Tx-tracking/internal/balancechange"
	"github.com/pkfire13/Tx-tracking/internal/blockproc"
	"github.com/pkfire13/Tx-tracking/internal/chainstream"
	"github.com/pkfire13/Tx-tracking/internal/pkg/logger"
	"github.com/pkfire13/Tx-tracking/internal/pkg/resilience/retry"
	xhttp "github.com/pkfire13/Tx-tracking/internal/pkg/transport/http"
)

type client struct {
	rpc       *rpc.Client
	eth       *ethclient.Client
	limiter   *rate.Limiter
	retryOpts []retry.Option
	timeout   time.Duration
}

var (
	_ chainstream.Blockchain    = (*client)(nil)
	_ blockproc.BlockSource     = (*client)(nil)
	_ balancechange.ChainReader = (*client)(nil)
)

type config struct {
	timeout       time.Duration
	rateLimit     float64
	burst         int
	retryAttempts uint
	retryDelay    time.Duration
	retryMaxDelay time.Duration
}

// Option configures the client.
type Option func(*config)

// WithTimeout bounds every RPC call. Default: 10 seconds.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// WithRateLimit caps the calls sent to the node per second. A non-positive
// rps disables the limit. Default: 25 calls per second, burst 25.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *config) {
		c.rateLimit = rps
		c.burst = burst
	}
}

// WithRetry sets how many times a transient failure is attempted in total and
// the initial delay between attempts. Default: 3 attempts, 500ms.
func WithRetry(attempts uint, delay time.Duration) Option {
	return func(c *config) {
		c.retryAttempts = attempts
		c.retryDelay = delay
	}
}

func newConfig(opts []Option) config {
	cfg := config{
		timeout:       10 * time.Second,
		rateLimit:     25,
		burst:         25,
		retryAttempts: 3,
		retryDelay:    500 * time.Millisecond,
		retryMaxDelay: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Dial connects to endpoint. ws:// and wss:// endpoints support head
// subscriptions; http:// and https:// endpoints only serve reads and go
// through the retrying HTTP transport.
func Dial(ctx context.Context, endpoint string, opts ...Option) (*client, error) {
	cfg := newConfig(opts)

	httpClient := xhttp.NewStandardClient(
		xhttp.WithTimeout(cfg.timeout),
		xhttp.WithName("ethereum"),
	)

	conn, err := rpc.DialOptions(ctx, endpoint, rpc.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", endpoint, err)
	}

	return newClient(conn, cfg), nil
}

func newClient(conn *rpc.Client, cfg config) *client {
	limit := rate.Inf
	if cfg.rateLimit > 0 {
		limit = rate.Limit(cfg.rateLimit)
	}

	retryOpts := []retry.Option{
		retry.WithAttempts(max(cfg.retryAttempts, 1)),
		retry.WithDelay(cfg.retryDelay),
		retry.WithMaxDelay(cfg.retryMaxDelay),
		retry.WithRetryIf(isTransient),
	}

	return &client{
		rpc:       conn,
		eth:       ethclient.NewClient(conn),
		limiter:   rate.NewLimiter(limit, max(cfg.burst, 1)),
		retryOpts: retryOpts,
		timeout:   cfg.timeout,
	}
}

// Close releases the connection. Active subscriptions end with an error.
func (c *client) Close() {
	c.rpc.Close()
}

// call runs one RPC round trip through the limiter, the per-call timeout and
// the retry policy. Failed attempts are logged with the method name.
func (c *client) call(ctx context.Context, method string, fn func(ctx context.Context) error) error {
	opts := append(c.retryOpts[:len(c.retryOpts):len(c.retryOpts)],
		retry.WithOnRetry(func(attempt uint, err error) {
			logger.Debug(ctx, "rpc call failed",
				"rpc.method", method,
				"rpc.attempt", attempt+1,
				"error", err,
			)
		}),
	)

	return retry.New(opts...).Execute(ctx, func() error {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}

		callCtx, cancel := context.WithTimeout(ctx, c.timeout)
		defer cancel()

		return fn(callCtx)
	})
}

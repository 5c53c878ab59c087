package chainstream

import (
	"time"

	"github.com/cenkalti/backoff/v5"
)

const (
	defaultQueueSize            = 16
	defaultMaxReconnectAttempts = 5
)

type config struct {
	queueSize            int
	maxReconnectAttempts int
	reconnectInitial     time.Duration
	reconnectMax         time.Duration
}

// newBackOff returns a fresh exponential backoff for one reconnect cycle.
func (c config) newBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.reconnectInitial
	b.MaxInterval = c.reconnectMax
	b.Reset()
	return b
}

// Option configures the chainstream service.
type Option func(*config)

// WithQueueSize sets how many headers may wait for the worker before the
// subscription reader blocks. Default: 16.
func WithQueueSize(n int) Option {
	return func(c *config) {
		c.queueSize = n
	}
}

// WithMaxReconnectAttempts sets how many consecutive failed re-subscribes are
// tolerated before the stream stops with a FatalError. Default: 5.
func WithMaxReconnectAttempts(n int) Option {
	return func(c *config) {
		c.maxReconnectAttempts = n
	}
}

// WithReconnectBackoff sets the initial and maximum delay between reconnect
// attempts. Default: 500ms growing up to 30s.
func WithReconnectBackoff(initial, maxDelay time.Duration) Option {
	return func(c *config) {
		c.reconnectInitial = initial
		c.reconnectMax = maxDelay
	}
}

// New creates a chainstream service reading heads from blockchain.
func New(blockchain Blockchain, opts ...Option) *service {
	cfg := config{
		queueSize:            defaultQueueSize,
		maxReconnectAttempts: defaultMaxReconnectAttempts,
		reconnectInitial:     500 * time.Millisecond,
		reconnectMax:         30 * time.Second,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.queueSize < 1 {
		cfg.queueSize = 1
	}

	return &service{
		blockchain: blockchain,
		cfg:        cfg,
		metrics:    newMetrics(),
	}
}

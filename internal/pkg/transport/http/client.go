// Package http builds the retrying HTTP client used by the JSON-RPC transport.
// It wraps retryablehttp.Client from HashiCorp and exposes functional options
// for timeouts and retry behavior. Retries are logged through the
// application logger instead of retryablehttp's own logger.
package http

import (
	"context"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/pkfire13/Tx-tracking/internal/pkg/logger"
)

// config holds internal settings for the HTTP client.
type config struct {
	timeout      time.Duration // maximum duration for a single HTTP request
	retryWaitMin time.Duration // minimum delay between retry attempts
	retryWaitMax time.Duration // maximum delay between retry attempts
	retryMax     int           // maximum number of retry attempts
	name         string        // upstream name attached to retry logs
}

// Option defines a functional option for configuring the HTTP client.
type Option func(*config)

// NewClient creates and returns a retryablehttp.Client configured with
// the provided options. If no options are given, default values are used:
//
//   - timeout:      5 seconds
//   - retryWaitMin: 1 second
//   - retryWaitMax: 5 seconds
//   - retryMax:     2 retries
//
// Connection errors, 429 and 5xx responses are retried. A Retry-After header
// sent with a 429 is honored.
func NewClient(opts ...Option) *retryablehttp.Client {
	cfg := config{
		timeout:      5 * time.Second,
		retryWaitMin: 1 * time.Second,
		retryWaitMax: 5 * time.Second,
		retryMax:     2,
		name:         "rpc",
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	client := retryablehttp.NewClient()
	client.Logger = nil
	client.HTTPClient.Timeout = cfg.timeout
	client.RetryWaitMin = cfg.retryWaitMin
	client.RetryWaitMax = cfg.retryWaitMax
	client.RetryMax = cfg.retryMax
	client.CheckRetry = retryablehttp.ErrorPropagatedRetryPolicy
	client.RequestLogHook = retryLogHook(cfg.name)
	return client
}

// NewStandardClient is NewClient wrapped into a plain *http.Client, which is
// what JSON-RPC callers consume.
func NewStandardClient(opts ...Option) *http.Client {
	return NewClient(opts...).StandardClient()
}

// retryLogHook logs every attempt after the first one.
func retryLogHook(name string) retryablehttp.RequestLogHook {
	return func(_ retryablehttp.Logger, req *http.Request, attempt int) {
		if attempt == 0 {
			return
		}

		ctx := req.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		logger.Warn(ctx, "retrying http request",
			"http.upstream", name,
			"http.method", req.Method,
			"http.attempt", attempt,
		)
	}
}

// WithTimeout sets the maximum duration allowed for a single HTTP request.
// Default: 5 seconds.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// WithRetryWaitMin sets the minimum delay between retry attempts.
// Default: 1 second.
func WithRetryWaitMin(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMin = d
	}
}

// WithRetryWaitMax sets the maximum delay between retry attempts.
// Default: 5 seconds.
func WithRetryWaitMax(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMax = d
	}
}

// WithRetryMax sets the maximum number of retry attempts for failed requests.
// Default: 2 retries.
func WithRetryMax(n int) Option {
	return func(c *config) {
		c.retryMax = n
	}
}

// WithName sets the upstream name reported in retry logs.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// Package redis stores the block monitor's checkpoints and block claims in
// Redis. A single client implements both blockproc.CheckpointStorage and
// blockproc.IdempotencyGuard.
package redis

import (
	"context"
	"fmt"

	redis "github.com/redis/go-redis/v9"
)

// keyPrefix namespaces every key written by the tracker.
const keyPrefix = "txtracker"

type client struct {
	conn *redis.Client
}

// Option tunes the Redis connection.
type Option func(*redis.Options)

// WithAuth sets the ACL credentials. An empty username authenticates with
// the password only.
func WithAuth(username, password string) Option {
	return func(o *redis.Options) {
		o.Username = username
		o.Password = password
	}
}

// WithDB selects the logical database. Default: 0.
func WithDB(db int) Option {
	return func(o *redis.Options) {
		o.DB = db
	}
}

func (c *client) Close() error {
	return c.conn.Close()
}

// NewClient connects to the Redis server at addr and checks the connection
// with a PING.
func NewClient(ctx context.Context, addr string, opts ...Option) (*client, error) {
	redisOpts := redis.Options{Addr: addr}
	for _, opt := range opts {
		opt(&redisOpts)
	}

	conn := redis.NewClient(&redisOpts)
	if err := conn.Ping(ctx).Err(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ping redis at %s: %w", addr, err)
	}

	return &client{conn: conn}, nil
}

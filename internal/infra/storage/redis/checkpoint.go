package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/pkfire13/Tx-tracking/internal/blockproc"
	"github.com/pkfire13/Tx-tracking/internal/pkg/types"
)

// checkpointKey builds the key holding the last processed height of network:
//
//	"txtracker:checkpoint:<network>"
func checkpointKey(network string) string {
	return fmt.Sprintf("%s:checkpoint:%s", keyPrefix, network)
}

// SaveCheckpoint stores height as the last processed block of network. The
// key never expires.
func (c *client) SaveCheckpoint(ctx context.Context, network string, height types.Hex) error {
	return c.conn.Set(ctx, checkpointKey(network), string(height), 0).Err()
}

// LoadLatestCheckpoint returns the last saved height of network, or
// blockproc.ErrNoCheckpointFound when nothing was saved yet.
func (c *client) LoadLatestCheckpoint(ctx context.Context, network string) (types.Hex, error) {
	val, err := c.conn.Get(ctx, checkpointKey(network)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = blockproc.ErrNoCheckpointFound
		}

		return "", err
	}

	return types.HexFromString(val)
}

var _ blockproc.CheckpointStorage = new(client)

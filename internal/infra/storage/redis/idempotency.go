package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/redis/go-redis/v9"

	"github.com/pkfire13/Tx-tracking/internal/blockproc"
)

// blockDone is stored once every transaction of a block was handled.
const blockDone = "done"

// blockClaimKey builds the key tracking the processing of a block:
//
//	"txtracker:block:<network>:<hash>"
func blockClaimKey(network string, blockHash common.Hash) string {
	return fmt.Sprintf("%s:block:%s:%s", keyPrefix, network, blockHash.Hex())
}

// ClaimBlock reserves a block for processing.
//
// A key already set to "done" yields blockproc.ErrAlreadyFinished. Any other
// existing value is a live claim and yields blockproc.ErrStillInProgress.
// Otherwise an empty value is set with ttl so a crashed worker's claim
// eventually expires.
func (c *client) ClaimBlock(ctx context.Context, network string, blockHash common.Hash, ttl time.Duration) error {
	key := blockClaimKey(network, blockHash)

	val, err := c.conn.Get(ctx, key).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return err
	}

	if val == blockDone {
		return blockproc.ErrAlreadyFinished
	}

	ok, err := c.conn.SetNX(ctx, key, "", ttl).Result()
	if err != nil {
		return err
	}

	if !ok {
		return blockproc.ErrStillInProgress
	}

	return nil
}

// MarkBlockProcessed sets the block key to "done" without expiration.
func (c *client) MarkBlockProcessed(ctx context.Context, network string, blockHash common.Hash) error {
	return c.conn.Set(ctx, blockClaimKey(network, blockHash), blockDone, 0).Err()
}

var _ blockproc.IdempotencyGuard = new(client)

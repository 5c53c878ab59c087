package blockproc

import (
	"context"
	"errors"

	"github.com/pkfire13/Tx-tracking/internal/pkg/types"
)

// ErrNoCheckpointFound is returned by LoadLatestCheckpoint when no checkpoint
// has been saved yet for the requested network.
var ErrNoCheckpointFound = errors.New("no checkpoint found for network")

// CheckpointStorage persists the height of the last processed block of each
// network. It is used to detect blocks the monitor never saw, for example
// while it was down; those blocks are reported, not backfilled.
type CheckpointStorage interface {
	// SaveCheckpoint records height as the latest processed block of network,
	// overwriting any previous value.
	SaveCheckpoint(ctx context.Context, network string, height types.Hex) error

	// LoadLatestCheckpoint returns the latest saved height of network, or
	// ErrNoCheckpointFound.
	LoadLatestCheckpoint(ctx context.Context, network string) (types.Hex, error)
}

// nopCheckpoint stores nothing and never finds a checkpoint.
type nopCheckpoint struct{}

func (nopCheckpoint) SaveCheckpoint(context.Context, string, types.Hex) error {
	return nil
}

func (nopCheckpoint) LoadLatestCheckpoint(context.Context, string) (types.Hex, error) {
	return "", ErrNoCheckpointFound
}

// checkpoint tracks the highest processed height in memory and mirrors it to
// the storage.
type checkpoint struct {
	storage CheckpointStorage
	network string
	height  uint64
	known   bool
}

// load reads the stored checkpoint. A missing checkpoint is not an error.
func (c *checkpoint) load(ctx context.Context) error {
	height, err := c.storage.LoadLatestCheckpoint(ctx, c.network)
	if errors.Is(err, ErrNoCheckpointFound) {
		return nil
	}
	if err != nil {
		return err
	}

	c.height, c.known = height.Uint64(), true
	return nil
}

// gap returns how many blocks lie between the checkpoint and number.
func (c *checkpoint) gap(number uint64) uint64 {
	if !c.known || number <= c.height+1 {
		return 0
	}
	return number - c.height - 1
}

// advance moves the checkpoint to number unless it is already past it.
func (c *checkpoint) advance(ctx context.Context, number uint64) error {
	if c.known && number <= c.height {
		return nil
	}

	c.height, c.known = number, true
	return c.storage.SaveCheckpoint(ctx, c.network, types.HexFromUint64(number))
}

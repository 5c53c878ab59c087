package blockproc

import (
	"context"
	"errors"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

var (
	// ErrAlreadyFinished is returned by ClaimBlock when the block was already
	// processed successfully.
	ErrAlreadyFinished = errors.New("block already processed")

	// ErrStillInProgress is returned by ClaimBlock while another claim on the
	// block has not expired.
	ErrStillInProgress = errors.New("block processing still in progress")
)

// IdempotencyGuard makes sure a block re-delivered by the node, typically
// after a reconnect, is not processed twice.
type IdempotencyGuard interface {
	// ClaimBlock reserves the block for processing for at most ttl.
	//
	// Returns ErrAlreadyFinished if the block was marked processed and
	// ErrStillInProgress if a previous claim is still valid.
	ClaimBlock(ctx context.Context, network string, blockHash common.Hash, ttl time.Duration) error

	// MarkBlockProcessed records that every transaction of the block was
	// handled. Later claims return ErrAlreadyFinished.
	MarkBlockProcessed(ctx context.Context, network string, blockHash common.Hash) error
}

// nopIdempotency accepts every claim.
type nopIdempotency struct{}

func (nopIdempotency) ClaimBlock(context.Context, string, common.Hash, time.Duration) error {
	return nil
}

func (nopIdempotency) MarkBlockProcessed(context.Context, string, common.Hash) error {
	return nil
}

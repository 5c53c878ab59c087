package blockproc

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Block is a mined block reduced to what the worker needs: its identity and
// the ordered transaction hashes.
type Block struct {
	Hash         common.Hash   // block hash
	Number       uint64        // block height
	Transactions []common.Hash // transaction hashes in block order
}

// BlockReport summarizes one processed block.
//
// ProcessingID is a UUIDv7 generated when the block was received, so reports
// of the same block processed twice (for example after an expired idempotency
// claim) can be told apart.
type BlockReport struct {
	ProcessingID    string
	Network         string
	Block           Block
	ReceivedAt      time.Time
	ProcessedAt     time.Time
	Transactions    map[string]int // processed transactions by category
	Events          int            // events handed to the sink
	PartialFailures int            // token changes skipped after a contract call error
	FailedTxs       int            // transactions that produced no events because of an error
}

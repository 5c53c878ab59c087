package blockproc

import (
	"time"

	"github.com/google/uuid"

	"github.com/pkfire13/Tx-tracking/internal/txclass"
)

// blockProcessingState tracks the processing of a single block from the
// moment its header is received until every transaction was handled.
type blockProcessingState struct {
	processingID    string         // UUIDv7 of this processing cycle
	receivedAt      time.Time      // when the header was taken off the queue
	network         string         // network the block belongs to
	block           Block          // fetched block
	transactions    map[string]int // processed transactions by category
	events          int            // events published
	partialFailures int            // skipped token changes
	failedTxs       int            // transactions aborted with an error
	finalized       bool           // whether the block completed
	finalizedAt     *time.Time     // when the block completed
}

func newBlockProcessingState(network string) blockProcessingState {
	return blockProcessingState{
		processingID: uuid.Must(uuid.NewV7()).String(),
		receivedAt:   time.Now().UTC(),
		network:      network,
		transactions: make(map[string]int),
	}
}

// recordTransaction counts a transaction that was derived without error.
func (s *blockProcessingState) recordTransaction(kind txclass.Kind, events, partialFailures int) {
	if s.finalized {
		return
	}

	s.transactions[kind.String()]++
	s.events += events
	s.partialFailures += partialFailures
}

// recordFailedTransaction counts a transaction that produced no events.
func (s *blockProcessingState) recordFailedTransaction() {
	if s.finalized {
		return
	}

	s.failedTxs++
}

// finalize marks the block as completed. It is a no-op on a finalized state.
func (s *blockProcessingState) finalize() {
	if s.finalized {
		return
	}

	now := time.Now().UTC()

	s.finalized = true
	s.finalizedAt = &now
}

// duration is the time spent on the block so far, or in total once finalized.
func (s blockProcessingState) duration() time.Duration {
	if s.finalizedAt != nil {
		return s.finalizedAt.Sub(s.receivedAt)
	}
	return time.Since(s.receivedAt)
}

// asReport converts a finalized state into a BlockReport. A state that is
// not finalized yields the zero value.
func (s blockProcessingState) asReport() BlockReport {
	if !s.finalized {
		return BlockReport{}
	}

	return BlockReport{
		ProcessingID:    s.processingID,
		Network:         s.network,
		Block:           s.block,
		ReceivedAt:      s.receivedAt,
		ProcessedAt:     *s.finalizedAt,
		Transactions:    s.transactions,
		Events:          s.events,
		PartialFailures: s.partialFailures,
		FailedTxs:       s.failedTxs,
	}
}

// Package blockproc runs the single block worker of the monitor. It drains
// the header queue of chainstream, fetches each block, derives the balance
// changes of its transactions in block order and hands every transaction's
// events to an EventSink before starting the next one.
package blockproc

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/pkfire13/Tx-tracking/internal/balancechange"
	"github.com/pkfire13/Tx-tracking/internal/chainstream"
)

// ErrServiceAlreadyStarted is returned if Start is called on a running service.
var ErrServiceAlreadyStarted = errors.New("service already started")

// BlockSource fetches a block's transaction hashes.
type BlockSource interface {
	FetchBlock(ctx context.Context, hash common.Hash) (Block, error)
}

// TransactionProcessor classifies a transaction and reconstructs its balance
// changes. It is implemented by *balancechange.Reconstructor.
type TransactionProcessor interface {
	Derive(ctx context.Context, hash common.Hash) (balancechange.Derivation, error)
}

// Service is the block processing entrypoint.
type Service interface {
	// Start starts the header stream and the worker.
	//
	// Returns ErrServiceAlreadyStarted if the service is running.
	Start(ctx context.Context) error

	// Close stops the stream and waits for the worker. A transaction whose
	// processing is interrupted publishes nothing.
	Close()

	// Done is closed when the worker stopped, either through Close or because
	// the stream failed. It is nil before Start.
	Done() <-chan struct{}

	// Err returns the fatal stream error that stopped the worker, or nil.
	Err() error

	// InspectTransaction derives the events of one transaction without
	// publishing them.
	InspectTransaction(ctx context.Context, hash common.Hash) (balancechange.Derivation, error)
}

type closeFunc func()

type service struct {
	mu        sync.Mutex
	isStarted bool
	closeFunc closeFunc

	stateMu sync.Mutex
	done    chan struct{}

	stream    chainstream.Service
	source    BlockSource
	processor TransactionProcessor
	sink      EventSink

	network                string
	claimTTL               time.Duration
	idempotencyGuard       IdempotencyGuard
	checkpointStorage      CheckpointStorage
	partialFailureNotifier PartialFailureNotifier
	blockProcessedNotifier BlockProcessedNotifier
	metrics                *metrics
}

var _ Service = (*service)(nil)

func (s *service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		return ErrServiceAlreadyStarted
	}

	ctx, cancel := context.WithCancel(ctx)

	cp := &checkpoint{storage: s.checkpointStorage, network: s.network}
	if err := cp.load(ctx); err != nil {
		cancel()
		return fmt.Errorf("load checkpoint: %w", err)
	}

	headersCh, err := s.stream.Start(ctx)
	if err != nil {
		cancel()
		return err
	}

	done := make(chan struct{})

	s.stateMu.Lock()
	s.done = done
	s.stateMu.Unlock()

	go func() {
		defer close(done)
		s.handleBlocks(ctx, headersCh, cp)
	}()

	s.closeFunc = func() {
		cancel()
		s.stream.Close()
		<-done
	}
	s.isStarted = true
	return nil
}

func (s *service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closeFunc != nil {
		s.closeFunc()
	}

	s.closeFunc = nil
	s.isStarted = false
}

func (s *service) Done() <-chan struct{} {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()

	return s.done
}

func (s *service) Err() error {
	return s.stream.Err()
}

func (s *service) InspectTransaction(ctx context.Context, hash common.Hash) (balancechange.Derivation, error) {
	return s.processor.Derive(ctx, hash)
}

type config struct {
	network                string
	claimTTL               time.Duration
	idempotencyGuard       IdempotencyGuard
	checkpointStorage      CheckpointStorage
	partialFailureNotifier PartialFailureNotifier
	blockProcessedNotifier BlockProcessedNotifier
}

// Option configures the blockproc service.
type Option func(*config)

// WithNetwork sets the network name used for idempotency and checkpoint keys.
// Default: "ethereum".
func WithNetwork(name string) Option {
	return func(c *config) {
		c.network = name
	}
}

// WithIdempotencyGuard enables block deduplication. Claims expire after ttl.
func WithIdempotencyGuard(g IdempotencyGuard, ttl time.Duration) Option {
	return func(c *config) {
		c.idempotencyGuard = g
		c.claimTTL = ttl
	}
}

// WithCheckpointStorage enables skipped-block detection across restarts.
func WithCheckpointStorage(cs CheckpointStorage) Option {
	return func(c *config) {
		c.checkpointStorage = cs
	}
}

// WithPartialFailureNotifier registers a receiver for skipped token changes.
func WithPartialFailureNotifier(n PartialFailureNotifier) Option {
	return func(c *config) {
		c.partialFailureNotifier = n
	}
}

// WithBlockProcessedNotifier registers a receiver for block reports.
func WithBlockProcessedNotifier(n BlockProcessedNotifier) Option {
	return func(c *config) {
		c.blockProcessedNotifier = n
	}
}

// New wires the header stream, the block source, the transaction processor
// and the event sink into a block processing service.
func New(stream chainstream.Service, source BlockSource, processor TransactionProcessor, sink EventSink, opts ...Option) *service {
	cfg := config{
		network:                "ethereum",
		claimTTL:               5 * time.Minute,
		idempotencyGuard:       nopIdempotency{},
		checkpointStorage:      nopCheckpoint{},
		partialFailureNotifier: nopNotifier{},
		blockProcessedNotifier: nopNotifier{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		stream:                 stream,
		source:                 source,
		processor:              processor,
		sink:                   sink,
		network:                cfg.network,
		claimTTL:               cfg.claimTTL,
		idempotencyGuard:       cfg.idempotencyGuard,
		checkpointStorage:      cfg.checkpointStorage,
		partialFailureNotifier: cfg.partialFailureNotifier,
		blockProcessedNotifier: cfg.blockProcessedNotifier,
		metrics:                newMetrics(),
	}
}

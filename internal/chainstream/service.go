// Package chainstream owns the new-heads subscription of a single chain. It
// forwards announced headers into a bounded queue, re-subscribes when the
// node drops the subscription and gives up with a FatalError once the
// configured number of consecutive reconnect attempts has failed.
package chainstream

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/pkfire13/Tx-tracking/internal/pkg/logger"
	"github.com/pkfire13/Tx-tracking/internal/pkg/x/chflow"
)

var (
	// ErrServiceAlreadyStarted is returned if Start is called on a running service.
	ErrServiceAlreadyStarted = errors.New("service already started")

	// ErrSubscriptionClosed is reported when a subscription ends without an error.
	ErrSubscriptionClosed = errors.New("subscription closed by the node")

	// ErrReconnectAttemptsExhausted is wrapped by the FatalError returned once
	// re-subscribing failed too many times in a row.
	ErrReconnectAttemptsExhausted = errors.New("reconnect attempts exhausted")
)

// FatalError is the terminal failure of the stream. No further subscribe
// attempts are made after it is reported.
type FatalError struct {
	Attempts int   // consecutive failed reconnect attempts
	Err      error // cause, wraps ErrReconnectAttemptsExhausted
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("chainstream stopped after %d reconnect attempts: %v", e.Attempts, e.Err)
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

// Service streams new chain heads.
type Service interface {
	// Start subscribes synchronously and returns the queue new heads are
	// delivered on. The queue is closed when the stream stops.
	//
	// Returns ErrServiceAlreadyStarted if the service is running.
	Start(ctx context.Context) (<-chan Header, error)

	// Close unsubscribes and waits for the stream to stop. No header is
	// delivered after Close returns.
	Close()

	// Done is closed when the stream stops, either through Close or a fatal
	// error. It is nil before Start.
	Done() <-chan struct{}

	// Err returns the FatalError that stopped the stream, or nil.
	Err() error
}

type closeFunc func()

type service struct {
	mu        sync.Mutex
	isStarted bool
	closeFunc closeFunc

	// stateMu guards done and err. It is separate from mu because Close
	// holds mu while waiting for the stream goroutine.
	stateMu sync.Mutex
	done    chan struct{}
	err     error

	// reconnectAttempts counts consecutive failed re-subscribes. It is only
	// touched by the stream goroutine and reset after every success.
	reconnectAttempts int

	blockchain Blockchain
	cfg        config
	metrics    *metrics
}

var _ Service = (*service)(nil)

func (s *service) Start(ctx context.Context) (<-chan Header, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		return nil, ErrServiceAlreadyStarted
	}

	ctx, cancel := context.WithCancel(ctx)

	sub, err := s.blockchain.SubscribeNewBlocks(ctx)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("subscribe to new blocks: %w", err)
	}

	logger.Info(ctx, "subscribed to new blocks", "subscription.id", sub.ID())

	var (
		headersCh = make(chan Header, s.cfg.queueSize)
		done      = make(chan struct{})
	)

	s.stateMu.Lock()
	s.done = done
	s.err = nil
	s.stateMu.Unlock()

	s.reconnectAttempts = 0

	go s.stream(ctx, sub, headersCh, done)

	s.closeFunc = func() {
		cancel()
		<-done
	}
	s.isStarted = true
	return headersCh, nil
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
	s.stateMu.Lock()
	defer s.stateMu.Unlock()

	return s.err
}

func (s *service) fail(err error) {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()

	s.err = err
}

// stream forwards headers of the current subscription and replaces it when
// it breaks. It closes out and done on exit.
func (s *service) stream(ctx context.Context, sub Subscription, out chan<- Header, done chan<- struct{}) {
	defer close(done)
	defer close(out)

	for {
		err := s.forward(ctx, sub, out)
		sub.Unsubscribe()

		if ctx.Err() != nil {
			logger.Info(ctx, "unsubscribed from new blocks", "subscription.id", sub.ID())
			return
		}

		logger.Warn(ctx, "subscription lost",
			"subscription.id", sub.ID(),
			"error", err,
		)

		sub, err = s.resubscribe(ctx)
		if err != nil {
			if ctx.Err() == nil {
				logger.Error(ctx, "giving up on the new blocks subscription", "error", err)
				s.fail(err)
			}
			return
		}
	}
}

// forward copies headers from sub into out until the subscription breaks or
// ctx is done. A full queue blocks the reader so the node stream is paced by
// the worker. It returns nil when ctx is done.
func (s *service) forward(ctx context.Context, sub Subscription, out chan<- Header) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-sub.Err():
			if err == nil {
				err = ErrSubscriptionClosed
			}
			return err
		case header, ok := <-sub.Headers():
			if !ok {
				return ErrSubscriptionClosed
			}

			if chflow.TrySend(out, header) {
				continue
			}

			logger.Warn(ctx, "block queue full, waiting for the worker",
				"block.number", header.Number,
				"block.hash", header.Hash.Hex(),
			)

			if ok := chflow.Send(ctx, out, header); !ok {
				return nil
			}
		}
	}
}

// resubscribe tries to open a new subscription, sleeping an exponential
// backoff before every attempt. It returns a FatalError once
// maxReconnectAttempts consecutive attempts failed, or ctx.Err().
func (s *service) resubscribe(ctx context.Context) (Subscription, error) {
	b := s.cfg.newBackOff()

	var lastErr error
	for {
		if s.reconnectAttempts >= s.cfg.maxReconnectAttempts {
			return nil, &FatalError{
				Attempts: s.reconnectAttempts,
				Err:      errors.Join(ErrReconnectAttemptsExhausted, lastErr),
			}
		}

		if err := sleep(ctx, b.NextBackOff()); err != nil {
			return nil, err
		}

		sub, err := s.blockchain.SubscribeNewBlocks(ctx)
		if err == nil {
			logger.Info(ctx, "resubscribed to new blocks",
				"subscription.id", sub.ID(),
				"reconnect.attempts", s.reconnectAttempts+1,
			)

			s.reconnectAttempts = 0
			return sub, nil
		}

		s.reconnectAttempts++
		s.metrics.recordReconnectFailure(ctx)
		lastErr = err

		logger.Warn(ctx, "reconnect attempt failed",
			"reconnect.attempt", s.reconnectAttempts,
			"reconnect.max_attempts", s.cfg.maxReconnectAttempts,
			"error", err,
		)
	}
}

// sleep waits for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

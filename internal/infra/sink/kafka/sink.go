// Package kafka publishes balance change events to a Kafka topic, one JSON
// message per event. Messages are keyed by account address so the events of
// one account stay ordered within a partition.
package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/segmentio/kafka-go"

	"github.com/pkfire13/Tx-tracking/internal/balancechange"
	"github.com/pkfire13/Tx-tracking/internal/blockproc"
)

// messageWriter is the part of *kafka.Writer the sink uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type sink struct {
	writer       messageWriter
	writeTimeout time.Duration
}

var _ blockproc.EventSink = (*sink)(nil)

type config struct {
	writeTimeout time.Duration
	maxAttempts  int
	batchTimeout time.Duration
}

// Option configures the sink.
type Option func(*config)

// WithWriteTimeout bounds a single Publish call. Default: 5 seconds.
func WithWriteTimeout(d time.Duration) Option {
	return func(c *config) {
		c.writeTimeout = d
	}
}

// WithMaxAttempts sets how many times the writer tries to deliver a batch.
// Default: 3.
func WithMaxAttempts(n int) Option {
	return func(c *config) {
		c.maxAttempts = n
	}
}

// New creates a sink writing to topic on brokers. Every Publish waits for the
// acknowledgement of all in-sync replicas.
func New(brokers []string, topic string, opts ...Option) *sink {
	cfg := config{
		writeTimeout: 5 * time.Second,
		maxAttempts:  3,
		batchTimeout: 10 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		MaxAttempts:            cfg.maxAttempts,
		BatchTimeout:           cfg.batchTimeout,
		AllowAutoTopicCreation: true,
	}

	return &sink{
		writer:       writer,
		writeTimeout: cfg.writeTimeout,
	}
}

func toMessage(event balancechange.BalanceChangeEvent) (kafka.Message, error) {
	value, err := sonic.Marshal(event)
	if err != nil {
		return kafka.Message{}, err
	}

	return kafka.Message{
		Key:   []byte(event.AccountAddress),
		Value: value,
		Headers: []kafka.Header{
			{Key: "tx.hash", Value: []byte(event.ChangeSignature)},
			{Key: "block.hash", Value: []byte(event.BlockHash)},
			{Key: "chain", Value: []byte(event.Chain.String())},
		},
	}, nil
}

// Publish writes the events of one transaction in a single batch.
func (s *sink) Publish(ctx context.Context, events ...balancechange.BalanceChangeEvent) error {
	if len(events) == 0 {
		return nil
	}

	msgs := make([]kafka.Message, 0, len(events))
	for _, event := range events {
		msg, err := toMessage(event)
		if err != nil {
			return fmt.Errorf("encode event of %s: %w", event.AccountAddress, err)
		}

		msgs = append(msgs, msg)
	}

	ctx, cancel := context.WithTimeout(ctx, s.writeTimeout)
	defer cancel()

	if err := s.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("write %d events: %w", len(msgs), err)
	}

	return nil
}

// Close flushes pending messages and closes the writer.
func (s *sink) Close() error {
	return s.writer.Close()
}

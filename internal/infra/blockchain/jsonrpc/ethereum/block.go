// Package ethereum turns eth_blockNumber polling over plain HTTP into a
// chainstream.Blockchain, for nodes that do not offer eth_subscribe.
package ethereum

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"

	"github.com/pkfire13/Tx-tracking/internal/chainstream"
	"github.com/pkfire13/Tx-tracking/internal/pkg/transport/jsonrpc"
	"github.com/pkfire13/Tx-tracking/internal/pkg/types"
)

// averageBlockTime is the default delay between two polls.
const averageBlockTime = 12 * time.Second

// BlockHeaderResponse is the part of eth_getBlockByNumber the poller reads.
type BlockHeaderResponse struct {
	Hash       string    `json:"hash"`
	ParentHash string    `json:"parentHash"`
	Number     types.Hex `json:"number"`
}

func (b BlockHeaderResponse) toHeader() chainstream.Header {
	return chainstream.Header{
		Hash:       common.HexToHash(b.Hash),
		ParentHash: common.HexToHash(b.ParentHash),
		Number:     b.Number.Uint64(),
	}
}

type client struct {
	conn     jsonrpc.Client
	interval time.Duration
}

var _ chainstream.Blockchain = (*client)(nil)

// Option configures the poller.
type Option func(*client)

// WithPollInterval sets the delay between two eth_blockNumber calls.
// Default: 12 seconds.
func WithPollInterval(d time.Duration) Option {
	return func(c *client) {
		c.interval = d
	}
}

// NewClient creates a poller on top of a JSON-RPC connection.
func NewClient(conn jsonrpc.Client, opts ...Option) *client {
	c := &client{
		conn:     conn,
		interval: averageBlockTime,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *client) getLatestBlockNumber(ctx context.Context) (types.Hex, error) {
	return jsonrpc.FetchInto[types.Hex](ctx, c.conn, "eth_blockNumber")
}

func (c *client) getBlockHeader(ctx context.Context, number types.Hex) (BlockHeaderResponse, error) {
	return jsonrpc.FetchInto[BlockHeaderResponse](ctx, c.conn, "eth_getBlockByNumber", number, false)
}

// SubscribeNewBlocks starts polling after the current head. Blocks mined
// before the call are not delivered. Canceling ctx after the call returns
// does not stop the polling; only Unsubscribe does.
func (c *client) SubscribeNewBlocks(ctx context.Context) (chainstream.Subscription, error) {
	latest, err := c.getLatestBlockNumber(ctx)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.WithoutCancel(ctx))

	sub := &pollSubscription{
		id:      uuid.NewString(),
		headers: make(chan chainstream.Header),
		errs:    make(chan error, 1),
		cancel:  cancel,
	}
	go c.poll(ctx, sub, latest.Add(1))

	return sub, nil
}

// poll emits every block from next up to the head on each tick. A block the
// node announced but cannot serve yet is requested again on the next tick.
// Any other failed call is reported on the error channel and ends the
// subscription.
func (c *client) poll(ctx context.Context, sub *pollSubscription, next types.Hex) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		latest, err := c.getLatestBlockNumber(ctx)
		if err != nil {
			sub.fail(ctx, err)
			return
		}

		for ; next.Uint64() <= latest.Uint64(); next = next.Add(1) {
			header, err := c.getBlockHeader(ctx, next)
			if errors.Is(err, jsonrpc.ErrEmptyResult) {
				break
			}
			if err != nil {
				sub.fail(ctx, err)
				return
			}

			select {
			case sub.headers <- header.toHeader():
			case <-ctx.Done():
				return
			}
		}
	}
}

type pollSubscription struct {
	id      string
	headers chan chainstream.Header
	errs    chan error
	cancel  context.CancelFunc
	once    sync.Once
}

var _ chainstream.Subscription = (*pollSubscription)(nil)

func (s *pollSubscription) ID() string {
	return s.id
}

func (s *pollSubscription) Headers() <-chan chainstream.Header {
	return s.headers
}

func (s *pollSubscription) Err() <-chan error {
	return s.errs
}

func (s *pollSubscription) Unsubscribe() {
	s.once.Do(s.cancel)
}

func (s *pollSubscription) fail(ctx context.Context, err error) {
	if ctx.Err() != nil {
		return
	}

	select {
	case s.errs <- err:
	default:
	}
}

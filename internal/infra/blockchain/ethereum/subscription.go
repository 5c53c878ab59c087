package ethereum

import (
	"context"
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/google/uuid"

	"github.com/pkfire13/Tx-tracking/internal/chainstream"
)

// rpcHeader is the part of a newHeads notification the stream needs.
type rpcHeader struct {
	Hash       common.Hash    `json:"hash"`
	ParentHash common.Hash    `json:"parentHash"`
	Number     hexutil.Uint64 `json:"number"`
}

func (h rpcHeader) toHeader() chainstream.Header {
	return chainstream.Header{
		Hash:       h.Hash,
		ParentHash: h.ParentHash,
		Number:     uint64(h.Number),
	}
}

// headSubscription adapts an eth_subscribe("newHeads") subscription to
// chainstream.Subscription.
type headSubscription struct {
	id      string
	sub     *rpc.ClientSubscription
	raw     chan *rpcHeader
	headers chan chainstream.Header

	once sync.Once
	quit chan struct{}
}

var _ chainstream.Subscription = (*headSubscription)(nil)

// ID identifies the subscription in logs. go-ethereum keeps the node's
// subscription id private, so a local one is generated.
func (s *headSubscription) ID() string {
	return s.id
}

func (s *headSubscription) Headers() <-chan chainstream.Header {
	return s.headers
}

func (s *headSubscription) Err() <-chan error {
	return s.sub.Err()
}

// Unsubscribe cancels the node subscription and stops the header conversion.
// It is safe to call more than once.
func (s *headSubscription) Unsubscribe() {
	s.once.Do(func() {
		s.sub.Unsubscribe()
		close(s.quit)
	})
}

func (s *headSubscription) convert() {
	for {
		select {
		case <-s.quit:
			return
		case h := <-s.raw:
			if h == nil {
				continue
			}

			select {
			case s.headers <- h.toHeader():
			case <-s.quit:
				return
			}
		}
	}
}

// SubscribeNewBlocks opens a newHeads subscription. It fails on endpoints
// without notification support, such as plain HTTP.
func (c *client) SubscribeNewBlocks(ctx context.Context) (chainstream.Subscription, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	raw := make(chan *rpcHeader, 16)

	sub, err := c.rpc.EthSubscribe(ctx, raw, "newHeads")
	if err != nil {
		return nil, fmt.Errorf("subscribe to new heads: %w", err)
	}

	s := &headSubscription{
		id:      uuid.NewString(),
		sub:     sub,
		raw:     raw,
		headers: make(chan chainstream.Header),
		quit:    make(chan struct{}),
	}
	go s.convert()

	return s, nil
}

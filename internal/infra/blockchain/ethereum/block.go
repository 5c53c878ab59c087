package ethereum

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/pkfire13/Tx-tracking/internal/blockproc"
)

// rpcBlock is eth_getBlockByHash with hydrated transactions turned off.
type rpcBlock struct {
	Hash         common.Hash    `json:"hash"`
	Number       hexutil.Uint64 `json:"number"`
	Transactions []common.Hash  `json:"transactions"`
}

func (b rpcBlock) toBlock() blockproc.Block {
	return blockproc.Block{
		Hash:         b.Hash,
		Number:       uint64(b.Number),
		Transactions: b.Transactions,
	}
}

// FetchBlock returns the hashes of the block's transactions in block order.
func (c *client) FetchBlock(ctx context.Context, hash common.Hash) (blockproc.Block, error) {
	var block *rpcBlock

	err := c.call(ctx, "eth_getBlockByHash", func(ctx context.Context) error {
		if err := c.rpc.CallContext(ctx, &block, "eth_getBlockByHash", hash, false); err != nil {
			return err
		}
		if block == nil {
			return fmt.Errorf("%w: block %s", ErrNotFound, hash.Hex())
		}
		return nil
	})
	if err != nil {
		return blockproc.Block{}, err
	}

	return block.toBlock(), nil
}

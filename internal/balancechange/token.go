package balancechange

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/patrickmn/go-cache"

	"github.com/pkfire13/Tx-tracking/internal/pkg/erc20"
	"github.com/pkfire13/Tx-tracking/internal/pkg/logger"
)

// defaultTokenDecimals is used for tokens that do not implement decimals().
const defaultTokenDecimals = 18

// direction tells how a transfer moved the holder's token balance.
type direction int

const (
	// outgoing tokens left the holder: pre = post + value.
	outgoing direction = iota
	// incoming tokens reached the holder: pre = post - value.
	incoming
)

type tokenMeta struct {
	Symbol   string
	Decimals uint8
}

// tokenMetadata resolves symbol and decimals of a token contract, caching
// successful lookups. A failing symbol() is a contract call error. decimals()
// falls back to defaultTokenDecimals only when the contract reverted or
// answered with undecodable data; any other failure is a contract call error
// and nothing is cached.
func (r *Reconstructor) tokenMetadata(ctx context.Context, token common.Address) (tokenMeta, error) {
	key := token.Hex()
	if cached, found := r.metadata.Get(key); found {
		if meta, ok := cached.(tokenMeta); ok {
			return meta, nil
		}
	}

	symbolCall, err := erc20.PackSymbol()
	if err != nil {
		return tokenMeta{}, err
	}

	out, err := r.chain.CallContract(ctx, token, symbolCall)
	if err != nil {
		return tokenMeta{}, fmt.Errorf("%w: symbol() on %s: %w", ErrContractCall, key, err)
	}

	symbol, err := erc20.UnpackSymbol(out)
	if err != nil {
		return tokenMeta{}, fmt.Errorf("%w: symbol() on %s: %w", ErrContractCall, key, err)
	}

	decimals, err := r.tokenDecimals(ctx, token)
	if err != nil {
		return tokenMeta{}, err
	}

	meta := tokenMeta{Symbol: symbol, Decimals: decimals}
	r.metadata.Set(key, meta, cache.DefaultExpiration)
	return meta, nil
}

func (r *Reconstructor) tokenDecimals(ctx context.Context, token common.Address) (uint8, error) {
	if r.cfg.fixedTokenDecimals != nil {
		return *r.cfg.fixedTokenDecimals, nil
	}

	decimalsCall, err := erc20.PackDecimals()
	if err != nil {
		return 0, err
	}

	out, err := r.chain.CallContract(ctx, token, decimalsCall)
	if err != nil && !errors.Is(err, ErrCallReverted) {
		return 0, fmt.Errorf("%w: decimals() on %s: %w", ErrContractCall, token.Hex(), err)
	}

	if err == nil {
		decimals, unpackErr := erc20.UnpackDecimals(out)
		if unpackErr == nil {
			return decimals, nil
		}
		err = unpackErr
	}

	logger.Warn(ctx, "token has no usable decimals(), assuming default",
		"token.address", token.Hex(),
		"token.decimals", defaultTokenDecimals,
		"error", err,
	)
	return defaultTokenDecimals, nil
}

func (r *Reconstructor) tokenBalance(ctx context.Context, token, holder common.Address) (*big.Int, error) {
	call, err := erc20.PackBalanceOf(holder)
	if err != nil {
		return nil, err
	}

	out, err := r.chain.CallContract(ctx, token, call)
	if err != nil {
		return nil, fmt.Errorf("%w: balanceOf(%s) on %s: %w", ErrContractCall, holder.Hex(), token.Hex(), err)
	}

	balance, err := erc20.UnpackBalanceOf(out)
	if err != nil {
		return nil, fmt.Errorf("%w: balanceOf(%s) on %s: %w", ErrContractCall, holder.Hex(), token.Hex(), err)
	}

	return balance, nil
}

// tokenChange reads holder's current balance of token and derives the
// balance before a transfer of value in the given direction.
func (r *Reconstructor) tokenChange(ctx context.Context, token, holder common.Address, value *big.Int, dir direction) (TokenChange, error) {
	meta, err := r.tokenMetadata(ctx, token)
	if err != nil {
		return TokenChange{}, err
	}

	post, err := r.tokenBalance(ctx, token, holder)
	if err != nil {
		return TokenChange{}, err
	}

	pre := new(big.Int).Set(post)
	switch dir {
	case outgoing:
		pre.Add(pre, value)
	case incoming:
		pre.Sub(pre, value)
	}

	return TokenChange{
		AccountAddress:       holder.Hex(),
		Symbol:               meta.Symbol,
		TokenContractAddress: token.Hex(),
		PreAmount:            toUnits(pre, meta.Decimals),
		PostAmount:           toUnits(post, meta.Decimals),
	}, nil
}

// Package balancechange derives BalanceChangeEvents from mined transactions.
//
// Each category has its own strategy. Native transfers touch the sender and
// the receiver. Token transfers decode the transfer call and read balanceOf for
// both parties. Swaps and multicalls aggregate every fungible Transfer log of
// the receipt under the sender. All balances are read at the current chain
// head and the "previous" side is derived arithmetically, so results for
// older transactions drift once later blocks touch the same accounts.
package balancechange

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/patrickmn/go-cache"

	"github.com/pkfire13/Tx-tracking/internal/txclass"
)

type config struct {
	chain              Chain
	currencySymbol     string
	nativeDecimals     uint8
	fixedTokenDecimals *uint8
	metadataTTL        time.Duration
	classifier         *txclass.Classifier
}

// Option configures a Reconstructor.
type Option func(*config)

// WithChain sets the chain stamped on every event. Default: ChainEthereum.
func WithChain(chain Chain) Option {
	return func(c *config) {
		c.chain = chain
	}
}

// WithCurrency sets the native currency symbol and decimals. Default: ETH, 18.
func WithCurrency(symbol string, decimals uint8) Option {
	return func(c *config) {
		c.currencySymbol = symbol
		c.nativeDecimals = decimals
	}
}

// WithFixedTokenDecimals skips decimals() and scales every token amount by d.
func WithFixedTokenDecimals(d uint8) Option {
	return func(c *config) {
		c.fixedTokenDecimals = &d
	}
}

// WithMetadataTTL sets how long token symbol and decimals stay cached.
// Default: 10 minutes.
func WithMetadataTTL(ttl time.Duration) Option {
	return func(c *config) {
		c.metadataTTL = ttl
	}
}

// WithClassifier replaces the default transaction classifier.
func WithClassifier(classifier *txclass.Classifier) Option {
	return func(c *config) {
		c.classifier = classifier
	}
}

// Derivation is the outcome of processing one transaction.
type Derivation struct {
	Transaction Transaction
	Category    txclass.Category
	Result
}

// Reconstructor is safe for concurrent use. It keeps no state between
// transactions besides the token metadata cache.
type Reconstructor struct {
	cfg      config
	chain    ChainReader
	metadata *cache.Cache
}

// New creates a Reconstructor reading from chain.
func New(chain ChainReader, opts ...Option) *Reconstructor {
	cfg := config{
		chain:          ChainEthereum,
		currencySymbol: "ETH",
		nativeDecimals: 18,
		metadataTTL:    10 * time.Minute,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.classifier == nil {
		cfg.classifier = txclass.New()
	}

	return &Reconstructor{
		cfg:      cfg,
		chain:    chain,
		metadata: cache.New(cfg.metadataTTL, time.Minute),
	}
}

// Derive fetches the transaction, classifies it and reconstructs its balance
// changes. Unclassified transactions return an empty Result and no error.
func (r *Reconstructor) Derive(ctx context.Context, hash common.Hash) (Derivation, error) {
	tx, err := r.chain.FetchTransaction(ctx, hash)
	if err != nil {
		return Derivation{}, fmt.Errorf("fetch transaction %s: %w", hash.Hex(), err)
	}

	d := Derivation{
		Transaction: tx,
		Category:    r.cfg.classifier.Classify(tx.Value, tx.Input),
	}

	if d.Category.Kind() == txclass.KindUnclassified {
		return d, nil
	}

	d.Result, err = r.Reconstruct(ctx, tx, d.Category)
	return d, err
}

// Reconstruct runs the strategy matching category. No events are returned
// together with an error, so a failed transaction never emits partially.
func (r *Reconstructor) Reconstruct(ctx context.Context, tx Transaction, category txclass.Category) (Result, error) {
	var (
		res Result
		err error
	)

	switch c := category.(type) {
	case txclass.NativeTransfer:
		res, err = r.nativeTransfer(ctx, tx, c)
	case txclass.TokenTransfer:
		res, err = r.tokenTransfer(ctx, tx, c)
	case txclass.SwapOrMulticall:
		res, err = r.swap(ctx, tx)
	default:
		return Result{}, ErrNotReconstructable
	}

	if err != nil {
		return Result{}, err
	}

	return res, nil
}

func (r *Reconstructor) newEvent(tx Transaction, account common.Address, current, previous, cost *big.Int) BalanceChangeEvent {
	return BalanceChangeEvent{
		CurrencySymbol:        r.cfg.currencySymbol,
		AccountAddress:        account.Hex(),
		Chain:                 r.cfg.chain,
		CurrentNativeBalance:  toUnits(current, r.cfg.nativeDecimals),
		PreviousNativeBalance: toUnits(previous, r.cfg.nativeDecimals),
		TransactionCost:       toUnits(cost, r.cfg.nativeDecimals),
		BlockHash:             tx.BlockHash.Hex(),
		SequenceNumber:        tx.BlockNumber,
		ChangeSignature:       tx.Hash.Hex(),
		TokenChanges:          []TokenChange{},
	}
}

func (r *Reconstructor) nativeBalance(ctx context.Context, account common.Address) (*big.Int, error) {
	balance, err := r.chain.NativeBalance(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("native balance of %s: %w", account.Hex(), err)
	}
	return balance, nil
}

func (r *Reconstructor) cost(ctx context.Context, tx Transaction) (*big.Int, Receipt, error) {
	receipt, err := r.chain.FetchReceipt(ctx, tx.Hash)
	if err != nil {
		return nil, Receipt{}, fmt.Errorf("fetch receipt %s: %w", tx.Hash.Hex(), err)
	}
	return transactionCost(tx, receipt), receipt, nil
}

// recordFailure turns a contract call error into a PartialFailure. Any other
// error, including a done context, aborts the transaction.
func recordFailure(ctx context.Context, res *Result, tx Transaction, holder, token common.Address, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	if !errors.Is(err, ErrContractCall) {
		return err
	}

	res.Failures = append(res.Failures, PartialFailure{
		TransactionHash:      tx.Hash,
		AccountAddress:       holder,
		TokenContractAddress: token,
		Err:                  err,
	})
	return nil
}

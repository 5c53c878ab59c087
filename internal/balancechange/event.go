package balancechange

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// Chain identifies the blockchain an event belongs to.
type Chain int

const (
	ChainSolana Chain = iota
	ChainNear
	ChainEthereum
)

var chainNames = map[Chain]string{
	ChainSolana:   "solana",
	ChainNear:     "near",
	ChainEthereum: "ethereum",
}

// ParseChain resolves a lowercase chain name.
func ParseChain(name string) (Chain, error) {
	for chain, n := range chainNames {
		if strings.EqualFold(n, name) {
			return chain, nil
		}
	}
	return 0, fmt.Errorf("unknown chain %q", name)
}

func (c Chain) String() string {
	if name, ok := chainNames[c]; ok {
		return name
	}
	return fmt.Sprintf("chain(%d)", int(c))
}

func (c Chain) MarshalText() ([]byte, error) {
	if _, ok := chainNames[c]; !ok {
		return nil, fmt.Errorf("unknown chain %d", int(c))
	}
	return []byte(c.String()), nil
}

func (c *Chain) UnmarshalText(text []byte) error {
	chain, err := ParseChain(string(text))
	if err != nil {
		return err
	}

	*c = chain
	return nil
}

// TokenChange is the before/after balance of one holder for one token,
// in the token's human-readable units.
type TokenChange struct {
	AccountAddress       string          `json:"accountAddress"`
	Symbol               string          `json:"symbol"`
	TokenContractAddress string          `json:"tokenContractAddress"`
	PreAmount            decimal.Decimal `json:"preAmount"`
	PostAmount           decimal.Decimal `json:"postAmount"`
}

// BalanceChangeEvent describes how one account's balances moved in one
// transaction. Native amounts are in the chain currency's human-readable
// units. TransactionCost is only non-zero on the sender's event.
type BalanceChangeEvent struct {
	CurrencySymbol        string          `json:"currencySymbol"`
	AccountAddress        string          `json:"accountAddress"`
	Chain                 Chain           `json:"chain"`
	CurrentNativeBalance  decimal.Decimal `json:"currentNativeBalance"`
	PreviousNativeBalance decimal.Decimal `json:"previousNativeBalance"`
	TransactionCost       decimal.Decimal `json:"transactionCost"`
	BlockHash             string          `json:"blockHash"`
	SequenceNumber        uint64          `json:"sequenceNumber"`
	ChangeSignature       string          `json:"changeSignature"`
	TokenChanges          []TokenChange   `json:"tokenChanges"`
}

// PartialFailure records a token change that could not be built because a
// contract call failed. The rest of the transaction's events are unaffected.
type PartialFailure struct {
	TransactionHash      common.Hash
	AccountAddress       common.Address
	TokenContractAddress common.Address
	Err                  error
}

// Result is everything derived from one transaction.
type Result struct {
	Events   []BalanceChangeEvent
	Failures []PartialFailure
}

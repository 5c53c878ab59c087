package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/urfave/cli/v3"

	"github.com/pkfire13/Tx-tracking/internal/balancechange"
	"github.com/pkfire13/Tx-tracking/internal/blockproc"
	"github.com/pkfire13/Tx-tracking/internal/txclass"
)

// ErrInvalidTxHash is returned for a --tx value that is not a 32-byte hex hash.
var ErrInvalidTxHash = errors.New("invalid transaction hash")

type partialFailureOutput struct {
	AccountAddress       string `json:"accountAddress"`
	TokenContractAddress string `json:"tokenContractAddress"`
	Error                string `json:"error"`
}

type inspectOutput struct {
	Transaction     string                             `json:"transaction"`
	Category        string                             `json:"category"`
	Events          []balancechange.BalanceChangeEvent `json:"events"`
	PartialFailures []partialFailureOutput             `json:"partialFailures,omitempty"`
}

func parseTxHash(s string) (common.Hash, error) {
	b, err := hexutil.Decode(strings.TrimSpace(s))
	if err != nil || len(b) != common.HashLength {
		return common.Hash{}, fmt.Errorf("%w: %q", ErrInvalidTxHash, s)
	}

	return common.BytesToHash(b), nil
}

func newInspectOutput(hash common.Hash, d balancechange.Derivation) inspectOutput {
	out := inspectOutput{
		Transaction: hash.Hex(),
		Category:    txclass.KindUnclassified.String(),
		Events:      d.Events,
	}
	if d.Category != nil {
		out.Category = d.Category.Kind().String()
	}
	if out.Events == nil {
		out.Events = []balancechange.BalanceChangeEvent{}
	}

	for _, failure := range d.Failures {
		out.PartialFailures = append(out.PartialFailures, partialFailureOutput{
			AccountAddress:       failure.AccountAddress.Hex(),
			TokenContractAddress: failure.TokenContractAddress.Hex(),
			Error:                failure.Err.Error(),
		})
	}

	return out
}

// inspectTransactionCommand prints the classification and the balance changes
// of one mined transaction as JSON without publishing them.
//
//	txtracker inspect --tx 0x...
func inspectTransactionCommand(bp blockproc.Service) *cli.Command {
	return &cli.Command{
		Name:        "inspect",
		Description: "Classifies a mined transaction and prints the balance change events it would produce.",
		Usage:       "Prints the balance changes of one transaction as JSON.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "tx",
				Usage:    "transaction hash (0x-prefixed, 32 bytes)",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			hash, err := parseTxHash(c.String("tx"))
			if err != nil {
				return err
			}

			d, err := bp.InspectTransaction(ctx, hash)
			if err != nil {
				return fmt.Errorf("inspect %s: %w", hash.Hex(), err)
			}

			data, err := sonic.ConfigStd.MarshalIndent(newInspectOutput(hash, d), "", "  ")
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(c.Root().Writer, string(data))
			return err
		},
	}
}

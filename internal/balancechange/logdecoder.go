package balancechange

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	"github.com/pkfire13/Tx-tracking/internal/pkg/erc20"
)

// fungibleTransferTopics is topic0 plus the indexed from and to. ERC-721
// transfers share the signature but index the token id as a fourth topic.
const fungibleTransferTopics = 3

// TransferLog is a decoded fungible-token Transfer event.
type TransferLog struct {
	Token common.Address
	From  common.Address
	To    common.Address
	Value *big.Int
}

var transferIndexedArgs = func() abi.Arguments {
	var indexed abi.Arguments
	for _, arg := range erc20.ABI.Events["Transfer"].Inputs {
		if arg.Indexed {
			indexed = append(indexed, arg)
		}
	}
	return indexed
}()

// DecodeTransferLogs returns the fungible Transfer events found in logs, in
// log order. Logs with another signature, and non-fungible transfers, are
// ignored. Transfer logs that fail to decode are left out and reported in the
// returned error, which wraps ErrMalformedLog once per bad log.
func DecodeTransferLogs(logs []Log) ([]TransferLog, error) {
	var (
		transfers []TransferLog
		errs      []error
	)

	for i, l := range logs {
		if len(l.Topics) != fungibleTransferTopics || l.Topics[0] != erc20.TransferEventID {
			continue
		}

		transfer, err := decodeTransferLog(l)
		if err != nil {
			errs = append(errs, fmt.Errorf("log %d of %s: %w", i, l.Address.Hex(), err))
			continue
		}

		transfers = append(transfers, transfer)
	}

	return transfers, errors.Join(errs...)
}

func decodeTransferLog(l Log) (TransferLog, error) {
	var event struct {
		From  common.Address
		To    common.Address
		Value *big.Int
	}

	if err := erc20.ABI.UnpackIntoInterface(&event, "Transfer", l.Data); err != nil {
		return TransferLog{}, fmt.Errorf("%w: %w", ErrMalformedLog, err)
	}

	if err := abi.ParseTopics(&event, transferIndexedArgs, l.Topics[1:]); err != nil {
		return TransferLog{}, fmt.Errorf("%w: %w", ErrMalformedLog, err)
	}

	return TransferLog{
		Token: l.Address,
		From:  event.From,
		To:    event.To,
		Value: event.Value,
	}, nil
}

// Package erc20 holds the subset of the ERC-20 ABI the tracker needs and
// helpers to encode calls and decode their results.
package erc20

import (
	"bytes"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

const abiJSON = `[
	{"type":"function","name":"transfer","stateMutability":"nonpayable",
	 "inputs":[{"name":"to","type":"address"},{"name":"value","type":"uint256"}],
	 "outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"balanceOf","stateMutability":"view",
	 "inputs":[{"name":"owner","type":"address"}],
	 "outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"symbol","stateMutability":"view",
	 "inputs":[],
	 "outputs":[{"name":"","type":"string"}]},
	{"type":"function","name":"decimals","stateMutability":"view",
	 "inputs":[],
	 "outputs":[{"name":"","type":"uint8"}]},
	{"type":"event","name":"Transfer","anonymous":false,
	 "inputs":[
		{"name":"from","type":"address","indexed":true},
		{"name":"to","type":"address","indexed":true},
		{"name":"value","type":"uint256","indexed":false}]}
]`

// ErrUnexpectedOutput is returned when a contract answers with data that does
// not match the ERC-20 return type.
var ErrUnexpectedOutput = errors.New("unexpected erc20 output")

var (
	// ABI is the parsed ERC-20 subset.
	ABI = mustParse(abiJSON)

	// TransferSelector is the 4-byte id of transfer(address,uint256), 0xa9059cbb.
	TransferSelector = [4]byte(ABI.Methods["transfer"].ID)

	// TransferEventID is keccak256("Transfer(address,address,uint256)").
	TransferEventID = ABI.Events["Transfer"].ID
)

func mustParse(def string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(def))
	if err != nil {
		panic(err)
	}
	return parsed
}

// DecodeTransferCall extracts (to, value) from transfer(address,uint256) call data.
// input must include the selector.
func DecodeTransferCall(input []byte) (common.Address, *big.Int, error) {
	if len(input) < 4 || !bytes.Equal(input[:4], TransferSelector[:]) {
		return common.Address{}, nil, fmt.Errorf("%w: not a transfer call", ErrUnexpectedOutput)
	}

	values, err := ABI.Methods["transfer"].Inputs.Unpack(input[4:])
	if err != nil {
		return common.Address{}, nil, err
	}

	to, ok := values[0].(common.Address)
	if !ok {
		return common.Address{}, nil, fmt.Errorf("%w: transfer recipient", ErrUnexpectedOutput)
	}

	value, ok := values[1].(*big.Int)
	if !ok {
		return common.Address{}, nil, fmt.Errorf("%w: transfer value", ErrUnexpectedOutput)
	}

	return to, value, nil
}

// PackBalanceOf encodes balanceOf(owner).
func PackBalanceOf(owner common.Address) ([]byte, error) {
	return ABI.Pack("balanceOf", owner)
}

// UnpackBalanceOf decodes the uint256 returned by balanceOf.
func UnpackBalanceOf(out []byte) (*big.Int, error) {
	values, err := ABI.Unpack("balanceOf", out)
	if err != nil {
		return nil, err
	}

	balance, ok := values[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("%w: balanceOf", ErrUnexpectedOutput)
	}

	return balance, nil
}

// PackSymbol encodes symbol().
func PackSymbol() ([]byte, error) {
	return ABI.Pack("symbol")
}

// UnpackSymbol decodes the result of symbol(). Older tokens return a
// zero-padded bytes32 instead of a string; both forms are accepted.
func UnpackSymbol(out []byte) (string, error) {
	values, err := ABI.Unpack("symbol", out)
	if err == nil {
		if symbol, ok := values[0].(string); ok {
			return symbol, nil
		}
	}

	if len(out) == 32 {
		if symbol := string(bytes.TrimRight(out, "\x00")); symbol != "" {
			return symbol, nil
		}
	}

	return "", fmt.Errorf("%w: symbol", ErrUnexpectedOutput)
}

// PackDecimals encodes decimals().
func PackDecimals() ([]byte, error) {
	return ABI.Pack("decimals")
}

// UnpackDecimals decodes the uint8 returned by decimals().
func UnpackDecimals(out []byte) (uint8, error) {
	values, err := ABI.Unpack("decimals", out)
	if err != nil {
		return 0, err
	}

	decimals, ok := values[0].(uint8)
	if !ok {
		return 0, fmt.Errorf("%w: decimals", ErrUnexpectedOutput)
	}

	return decimals, nil
}

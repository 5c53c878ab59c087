package balancechange

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pkfire13/Tx-tracking/internal/pkg/erc20"
	"github.com/pkfire13/Tx-tracking/internal/pkg/logger"
)

func init() {
	_ = logger.Init("error")
}

var (
	alice   = common.HexToAddress("0x00000000000000000000000000000000000a11ce")
	bob     = common.HexToAddress("0x0000000000000000000000000000000000000b0b")
	carol   = common.HexToAddress("0x00000000000000000000000000000000000ca401")
	router  = common.HexToAddress("0x00000000000000000000000000000000000e0e7e")
	tknAddr = common.HexToAddress("0x0000000000000000000000000000000000007e57")
	usdAddr = common.HexToAddress("0x00000000000000000000000000000000000005d0")

	txHash    = common.HexToHash("0x1111111111111111111111111111111111111111111111111111111111111111")
	blockHash = common.HexToHash("0x2222222222222222222222222222222222222222222222222222222222222222")
)

// units converts a human-readable amount into its smallest denomination.
func units(amount string, decimals int32) *big.Int {
	return decimal.RequireFromString(amount).Shift(decimals).BigInt()
}

func ether(amount string) *big.Int {
	return units(amount, 18)
}

func gwei(amount string) *big.Int {
	return units(amount, 9)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func pack(t *testing.T, method string, values ...any) []byte {
	t.Helper()

	out, err := erc20.ABI.Methods[method].Outputs.Pack(values...)
	require.NoError(t, err)
	return out
}

func expectNativeBalance(chain *ChainReaderMock, account common.Address, balance *big.Int) {
	chain.EXPECT().NativeBalance(mock.Anything, account).Return(balance, nil)
}

// expectToken registers symbol() and decimals() answers. They are optional
// because metadata is cached after the first lookup.
func expectToken(t *testing.T, chain *ChainReaderMock, token common.Address, symbol string, decimals uint8) {
	t.Helper()

	symbolCall, err := erc20.PackSymbol()
	require.NoError(t, err)
	chain.EXPECT().CallContract(mock.Anything, token, symbolCall).Return(pack(t, "symbol", symbol), nil).Maybe()

	decimalsCall, err := erc20.PackDecimals()
	require.NoError(t, err)
	chain.EXPECT().CallContract(mock.Anything, token, decimalsCall).Return(pack(t, "decimals", decimals), nil).Maybe()
}

func expectTokenBalance(t *testing.T, chain *ChainReaderMock, token, holder common.Address, balance *big.Int) {
	t.Helper()

	call, err := erc20.PackBalanceOf(holder)
	require.NoError(t, err)
	chain.EXPECT().CallContract(mock.Anything, token, call).Return(pack(t, "balanceOf", balance), nil)
}

func transferLog(token, from, to common.Address, value *big.Int) Log {
	return Log{
		Address: token,
		Topics: []common.Hash{
			erc20.TransferEventID,
			common.BytesToHash(from.Bytes()),
			common.BytesToHash(to.Bytes()),
		},
		Data: common.LeftPadBytes(value.Bytes(), 32),
	}
}

func baseTx() Transaction {
	return Transaction{
		Hash:        txHash,
		From:        alice,
		Value:       new(big.Int),
		Gas:         21000,
		GasPrice:    gwei("50"),
		BlockHash:   blockHash,
		BlockNumber: 19000000,
	}
}

func paidReceipt(logs ...Log) Receipt {
	return Receipt{
		GasUsed:           21000,
		EffectiveGasPrice: gwei("50"),
		Logs:              logs,
	}
}

package balancechange

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// toUnits scales an integer amount in the smallest denomination down by
// 10^decimals. A nil amount is zero.
func toUnits(amount *big.Int, decimals uint8) decimal.Decimal {
	if amount == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(amount, -int32(decimals))
}

// transactionCost is gasUsed * effectiveGasPrice from the receipt, falling
// back to the gas limit and gas price of the transaction.
func transactionCost(tx Transaction, receipt Receipt) *big.Int {
	if receipt.GasUsed > 0 && receipt.EffectiveGasPrice != nil {
		return new(big.Int).Mul(new(big.Int).SetUint64(receipt.GasUsed), receipt.EffectiveGasPrice)
	}

	if tx.GasPrice == nil {
		return new(big.Int)
	}
	return new(big.Int).Mul(new(big.Int).SetUint64(tx.Gas), tx.GasPrice)
}

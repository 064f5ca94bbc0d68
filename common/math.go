package common

import (
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// BigToFloat converts a big int to float according to its number of decimal digits
// Example:
// - BigToFloat(1100, 3) = 1.1
// - BigToFloat(1100, 2) = 11
// - BigToFloat(1100, 5) = 0.11
func BigToFloat(b *big.Int, decimal uint64) float64 {
	if b == nil {
		return 0
	}
	f := new(big.Float).SetInt(b)
	power := new(big.Float).SetInt(new(big.Int).Exp(
		big.NewInt(10), big.NewInt(int64(decimal)), nil,
	))
	res := new(big.Float).Quo(f, power)
	result, _ := res.Float64()
	return result
}

// FormatUnits renders value scaled down by decimals without losing
// precision. Whole numbers keep one fractional digit:
// - FormatUnits(1500000, 6) = "1.5"
// - FormatUnits(2e18, 18) = "2.0"
func FormatUnits(value *big.Int, decimals uint64) string {
	if value == nil {
		return "0.0"
	}
	s := decimal.NewFromBigInt(value, -int32(decimals)).String()
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func FormatEther(value *big.Int) string {
	return FormatUnits(value, 18)
}

func WeiToGwei(value *big.Int) float64 {
	return BigToFloat(value, 9)
}

// GweiToWei converts a whole number of gwei to wei.
func GweiToWei(gwei int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(gwei), big.NewInt(1_000_000_000))
}

package txanalyzer

import (
	"github.com/shopspring/decimal"
)

// usdPrices is a fixed reference table, not a price feed.
var usdPrices = map[string]decimal.Decimal{
	"ETH":   decimal.NewFromInt(2000),
	"DAI":   decimal.NewFromInt(1),
	"USDC":  decimal.NewFromInt(1),
	"USDT":  decimal.NewFromInt(1),
	"LINK":  decimal.NewFromInt(15),
	"WBTC":  decimal.NewFromInt(45000),
	"UNI":   decimal.NewFromInt(8),
	"MATIC": decimal.RequireFromString("0.8"),
	"stETH": decimal.NewFromInt(2000),
}

var (
	oneCent  = decimal.RequireFromString("0.01")
	oneUSD   = decimal.NewFromInt(1)
	thousand = decimal.NewFromInt(1000)
)

func USDPrice(symbol string) decimal.Decimal {
	if p, found := usdPrices[symbol]; found {
		return p
	}
	return decimal.Zero
}

// USDValue formats amount*price(symbol): "< $0.01", "$0.500", "$12.34" or
// "$1.50K".
func USDValue(symbol string, amount decimal.Decimal) string {
	v := amount.Abs().Mul(USDPrice(symbol))
	switch {
	case v.LessThan(oneCent):
		return "< $0.01"
	case v.LessThan(oneUSD):
		return "$" + v.StringFixed(3)
	case v.LessThan(thousand):
		return "$" + v.StringFixed(2)
	}
	return "$" + v.Div(thousand).StringFixed(2) + "K"
}

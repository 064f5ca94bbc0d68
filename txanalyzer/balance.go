package txanalyzer

import (
	"math/big"

	"github.com/shopspring/decimal"

	txcommon "github.com/txlens/txlens/common"
)

// parseBalanceChanges derives changes from the transferred value only.
// Previous balances are not fetched so PreBalance is always 0.
func parseBalanceChanges(to string, value *big.Int, transfers []txcommon.TokenTransfer) []txcommon.BalanceChange {
	changes := []txcommon.BalanceChange{}
	if value != nil && value.Sign() > 0 {
		eth := decimal.NewFromBigInt(value, -18)
		f := eth.InexactFloat64()
		changes = append(changes, txcommon.BalanceChange{
			Account:     to,
			PreBalance:  0,
			PostBalance: f,
			Change:      f,
			ChangeType:  txcommon.ChangeIncrease,
			USDValue:    USDValue("ETH", eth),
			TokenType:   "ETH",
		})
	}
	for _, t := range transfers {
		amount := t.DecimalAmount()
		f := amount.InexactFloat64()
		usd := USDValue(t.TokenSymbol, amount)
		changes = append(changes,
			txcommon.BalanceChange{
				Account:     t.From,
				PreBalance:  0,
				PostBalance: -f,
				Change:      -f,
				ChangeType:  txcommon.ChangeDecrease,
				USDValue:    usd,
				TokenType:   t.TokenSymbol,
			},
			txcommon.BalanceChange{
				Account:     t.To,
				PreBalance:  0,
				PostBalance: f,
				Change:      f,
				ChangeType:  txcommon.ChangeIncrease,
				USDValue:    usd,
				TokenType:   t.TokenSymbol,
			},
		)
	}
	return changes
}

package txanalyzer

import (
	"math/big"
	"math/rand"
	"strings"

	txcommon "github.com/txlens/txlens/common"
)

var (
	highGasThreshold     = txcommon.GweiToWei(50)
	sandwichGasThreshold = txcommon.GweiToWei(100)
	mediumGasThreshold   = txcommon.GweiToWei(20)
)

type MEVInput struct {
	GasPrice       *big.Int
	TxType         txcommon.TxType
	TokenTransfers int
	FunctionCalls  int
}

// AnalyzeMEV scores how MEV-like a transaction looks using fixed gas price
// thresholds. It inspects nothing beyond its input and the reported profit
// is drawn from rnd, so it is an illustration, not a detector.
func AnalyzeMEV(in MEVInput, rnd *rand.Rand) txcommon.MEVAnalysis {
	gasPrice := in.GasPrice
	if gasPrice == nil {
		gasPrice = big.NewInt(0)
	}
	isHighGas := gasPrice.Cmp(highGasThreshold) > 0

	switch {
	case in.TxType == txcommon.TxTypeDEXSwap && in.TokenTransfers > 2 && isHighGas:
		return txcommon.MEVAnalysis{
			IsMEV:       true,
			MEVType:     txcommon.MEVArbitrage,
			Confidence:  85,
			Profit:      rnd.Float64()*200 + 50,
			Description: "Detected potential arbitrage opportunity across multiple DEXs",
			RiskLevel:   txcommon.RiskMedium,
		}
	case isHighGas && gasPrice.Cmp(sandwichGasThreshold) > 0:
		return txcommon.MEVAnalysis{
			IsMEV:       true,
			MEVType:     txcommon.MEVSandwich,
			Confidence:  70,
			Profit:      rnd.Float64()*100 + 20,
			Description: "High gas fee suggests potential sandwich attack",
			RiskLevel:   txcommon.RiskHigh,
		}
	case in.TxType == txcommon.TxTypeLending && isHighGas:
		return txcommon.MEVAnalysis{
			IsMEV:       true,
			MEVType:     txcommon.MEVLiquidation,
			Confidence:  95,
			Profit:      rnd.Float64()*500 + 100,
			Description: "Liquidation transaction with potential MEV profit",
			RiskLevel:   txcommon.RiskLow,
		}
	case isHighGas && in.FunctionCalls > 0:
		return txcommon.MEVAnalysis{
			IsMEV:       true,
			MEVType:     txcommon.MEVFrontrun,
			Confidence:  60,
			Profit:      rnd.Float64()*50 + 10,
			Description: "High gas price suggests potential frontrunning activity",
			RiskLevel:   txcommon.RiskHigh,
		}
	}
	return txcommon.MEVAnalysis{
		IsMEV:       false,
		MEVType:     txcommon.MEVNone,
		Confidence:  90,
		Profit:      0,
		Description: "No MEV activity detected - normal transaction",
		RiskLevel:   txcommon.RiskLow,
	}
}

// PriorityLevel buckets a gas price: > 50 gwei High, > 20 gwei Medium.
func PriorityLevel(gasPrice *big.Int) string {
	switch {
	case gasPrice == nil:
		return "Low"
	case gasPrice.Cmp(highGasThreshold) > 0:
		return "High"
	case gasPrice.Cmp(mediumGasThreshold) > 0:
		return "Medium"
	}
	return "Low"
}

func MEVTypeIcon(t txcommon.MEVType) string {
	switch t {
	case txcommon.MEVArbitrage:
		return "🔄"
	case txcommon.MEVSandwich:
		return "🥪"
	case txcommon.MEVLiquidation:
		return "💥"
	case txcommon.MEVFrontrun:
		return "🏃"
	}
	return "✅"
}

func MEVTypeTitle(t txcommon.MEVType) string {
	s := string(t)
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// MEVTypeExplanation is empty for MEVNone.
func MEVTypeExplanation(t txcommon.MEVType) string {
	switch t {
	case txcommon.MEVArbitrage:
		return "This transaction appears to exploit price differences between different DEXs on Ethereum. " +
			"The trader buys tokens at a lower price on one exchange and sells them at a higher price on another."
	case txcommon.MEVSandwich:
		return "This transaction may be part of a sandwich attack, where a trader places transactions before and after " +
			"a victim's transaction to profit from price slippage."
	case txcommon.MEVLiquidation:
		return "This is a liquidation transaction where an undercollateralized position is liquidated. " +
			"The liquidator receives a bonus for helping maintain protocol health."
	case txcommon.MEVFrontrun:
		return "This transaction may be frontrunning another transaction by paying higher gas fees " +
			"to execute first and profit from the price impact."
	}
	return ""
}

const MEVProtectionNote = "Ethereum's proof-of-stake consensus and EIP-1559 gas mechanism provide some protection against MEV attacks. " +
	"Flashbots and other MEV protection services help users avoid frontrunning and sandwich attacks."

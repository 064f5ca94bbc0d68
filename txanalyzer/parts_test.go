package txanalyzer

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	txcommon "github.com/txlens/txlens/common"
)

func TestSelectors(t *testing.T) {
	known := map[string]string{
		"0xa9059cbb": "transfer",
		"0x23b872dd": "transferFrom",
		"0x095ea7b3": "approve",
		"0x7ff36ab5": "swapExactETHForTokens",
		"0x18cbafe5": "swapExactTokensForETH",
		"0x38ed1739": "swapExactTokensForTokens",
		"0xd0e30db0": "deposit",
		"0x2e1a7d4d": "withdraw",
	}
	for selector, name := range known {
		assert.Equal(t, name, FunctionName(selector), selector)
	}
	assert.Equal(t, "transfer", FunctionName("0xA9059CBB"))
	assert.Equal(t, UnknownFunction, FunctionName("0xdeadbeef"))
	assert.Equal(t, "0xa9059cbb", Selector("transfer(address,uint256)"))
}

func TestParseFunctionCallsShortData(t *testing.T) {
	calls := parseFunctionCalls([]byte{0xab, 0xcd}, "")
	require.Len(t, calls, 1)
	assert.Equal(t, "0xabcd", calls[0].Signature)
	assert.Empty(t, parseFunctionCalls(nil, ""))
}

func TestUSDValue(t *testing.T) {
	cases := []struct {
		symbol string
		amount string
		want   string
	}{
		{"ETH", "0.000001", "< $0.01"},
		{"USDC", "0.5", "$0.500"},
		{"MATIC", "1", "$0.800"},
		{"LINK", "2", "$30.00"},
		{"DAI", "999.994", "$999.99"},
		{"WBTC", "1", "$45.00K"},
		{"ETH", "1.2345", "$2.47K"},
		{"FOO", "1000000", "< $0.01"},
		{"USDT", "-5", "$5.00"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, USDValue(c.symbol, decimal.RequireFromString(c.amount)), c.symbol+" "+c.amount)
	}
}

func TestAnalyzeMEV(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	cases := []struct {
		name      string
		in        MEVInput
		want      txcommon.MEVType
		risk      txcommon.RiskLevel
		minProfit float64
		maxProfit float64
	}{
		{
			name: "arbitrage",
			in:   MEVInput{GasPrice: gwei(150), TxType: txcommon.TxTypeDEXSwap, TokenTransfers: 3, FunctionCalls: 1},
			want: txcommon.MEVArbitrage, risk: txcommon.RiskMedium, minProfit: 50, maxProfit: 250,
		},
		{
			name: "sandwich beats liquidation",
			in:   MEVInput{GasPrice: gwei(101), TxType: txcommon.TxTypeLending, FunctionCalls: 1},
			want: txcommon.MEVSandwich, risk: txcommon.RiskHigh, minProfit: 20, maxProfit: 120,
		},
		{
			name: "liquidation",
			in:   MEVInput{GasPrice: gwei(51), TxType: txcommon.TxTypeLending, FunctionCalls: 1},
			want: txcommon.MEVLiquidation, risk: txcommon.RiskLow, minProfit: 100, maxProfit: 600,
		},
		{
			name: "frontrun",
			in:   MEVInput{GasPrice: gwei(60), TxType: txcommon.TxTypeDEXSwap, TokenTransfers: 2, FunctionCalls: 1},
			want: txcommon.MEVFrontrun, risk: txcommon.RiskHigh, minProfit: 10, maxProfit: 60,
		},
		{
			name: "high gas without calls",
			in:   MEVInput{GasPrice: gwei(60), TxType: txcommon.TxTypeETHTransfer},
			want: txcommon.MEVNone, risk: txcommon.RiskLow,
		},
		{
			name: "exactly 50 gwei is not high",
			in:   MEVInput{GasPrice: gwei(50), TxType: txcommon.TxTypeLending, FunctionCalls: 1},
			want: txcommon.MEVNone, risk: txcommon.RiskLow,
		},
		{
			name: "nil gas price",
			in:   MEVInput{TxType: txcommon.TxTypeDEXSwap, TokenTransfers: 5},
			want: txcommon.MEVNone, risk: txcommon.RiskLow,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := AnalyzeMEV(c.in, rnd)
			assert.Equal(t, c.want, got.MEVType)
			assert.Equal(t, c.risk, got.RiskLevel)
			assert.Equal(t, c.want != txcommon.MEVNone, got.IsMEV)
			if c.want == txcommon.MEVNone {
				assert.Equal(t, 0.0, got.Profit)
				assert.Equal(t, 90, got.Confidence)
				return
			}
			assert.GreaterOrEqual(t, got.Profit, c.minProfit)
			assert.Less(t, got.Profit, c.maxProfit)
		})
	}
}

func TestAnalyzeMEVIsDeterministicForASeed(t *testing.T) {
	in := MEVInput{GasPrice: gwei(150), TxType: txcommon.TxTypeContractInteraction, FunctionCalls: 1}
	a := AnalyzeMEV(in, rand.New(rand.NewSource(42)))
	b := AnalyzeMEV(in, rand.New(rand.NewSource(42)))
	assert.Equal(t, a, b)
}

func TestPriorityLevel(t *testing.T) {
	assert.Equal(t, "High", PriorityLevel(gwei(51)))
	assert.Equal(t, "Medium", PriorityLevel(gwei(50)))
	assert.Equal(t, "Medium", PriorityLevel(gwei(21)))
	assert.Equal(t, "Low", PriorityLevel(gwei(20)))
	assert.Equal(t, "Low", PriorityLevel(nil))
}

func TestMEVTypePresentation(t *testing.T) {
	assert.Equal(t, "Sandwich", MEVTypeTitle(txcommon.MEVSandwich))
	assert.Equal(t, "🥪", MEVTypeIcon(txcommon.MEVSandwich))
	assert.Equal(t, "✅", MEVTypeIcon(txcommon.MEVNone))
	assert.Empty(t, MEVTypeExplanation(txcommon.MEVNone))
	assert.Contains(t, MEVTypeExplanation(txcommon.MEVLiquidation), "liquidation")
}

func TestFlow(t *testing.T) {
	e := &txcommon.Explanation{
		From:          "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045",
		GasPrice:      big.NewInt(20_500_000_000),
		BlockNumber:   16,
		GasUsed:       21000,
		Success:       true,
		FunctionCalls: []txcommon.FunctionCall{{Function: "transfer"}},
	}
	steps := Flow(e)
	require.Len(t, steps, 5)
	assert.Equal(t, "Transaction Initiation", steps[0].Title)
	assert.Equal(t, "From: 0xd8dA6B...7aA96045", steps[0].Details)
	assert.Equal(t, "Network Validation", steps[1].Title)
	assert.Equal(t, "Gas price: 20.50 Gwei", steps[2].Details)
	assert.Equal(t, "Block 16 • 1 function calls", steps[3].Details)
	assert.Equal(t, "Gas used: 21000 • Status: Success", steps[4].Details)

	e.Success = false
	assert.Equal(t, "Gas used: 21000 • Status: Failed", Flow(e)[4].Details)
}

func TestGasRating(t *testing.T) {
	assert.Equal(t, "Excellent", GasRating(0.0019))
	assert.Equal(t, "Good", GasRating(0.01))
	assert.Equal(t, "Good", GasRating(0.049))
	assert.Equal(t, "Fair", GasRating(0.05))
}

func TestEducationalContent(t *testing.T) {
	assert.Len(t, educationalContent(txcommon.TxTypeDEXSwap), 4)
	assert.Len(t, educationalContent(txcommon.TxTypeUnknown), 2)
	assert.Equal(t, generalEducation, educationalContent(txcommon.TxTypeUnknown))
}

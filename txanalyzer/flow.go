package txanalyzer

import (
	"fmt"

	txcommon "github.com/txlens/txlens/common"
)

type FlowStep struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Details     string `json:"details"`
}

// Flow narrates the life of a transaction in five fixed steps.
func Flow(e *txcommon.Explanation) []FlowStep {
	status := "Failed"
	if e.Success {
		status = "Success"
	}
	return []FlowStep{
		{
			Title:       "Transaction Initiation",
			Description: "User initiates transaction with wallet signature",
			Details:     fmt.Sprintf("From: %s", txcommon.ShortAddress(e.From)),
		},
		{
			Title:       "Network Validation",
			Description: "Ethereum network validates transaction and checks balance",
			Details:     "Balance and nonce validation, signature verification",
		},
		{
			Title:       "Mempool Entry",
			Description: "Transaction enters mempool and waits for inclusion",
			Details:     fmt.Sprintf("Gas price: %.2f Gwei", txcommon.WeiToGwei(e.GasPrice)),
		},
		{
			Title:       "Block Execution",
			Description: "Validator includes transaction in block and executes",
			Details:     fmt.Sprintf("Block %d • %d function calls", e.BlockNumber, len(e.FunctionCalls)),
		},
		{
			Title:       "Finalization",
			Description: "Transaction is finalized and state changes are applied",
			Details:     fmt.Sprintf("Gas used: %d • Status: %s", e.GasUsed, status),
		},
	}
}

// GasRating rates the fee paid in ETH.
func GasRating(feeEth float64) string {
	switch {
	case feeEth < 0.01:
		return "Excellent"
	case feeEth < 0.05:
		return "Good"
	}
	return "Fair"
}

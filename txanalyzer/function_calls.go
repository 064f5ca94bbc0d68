package txanalyzer

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"

	txcommon "github.com/txlens/txlens/common"
	"github.com/txlens/txlens/util/addrbook"
)

// parseFunctionCalls produces at most one call: the top level one.
func parseFunctionCalls(data []byte, to string) []txcommon.FunctionCall {
	calls := []txcommon.FunctionCall{}
	if len(data) == 0 {
		return calls
	}
	selectorBytes := data
	if len(selectorBytes) > 4 {
		selectorBytes = selectorBytes[:4]
	}
	selector := hexutil.Encode(selectorBytes)
	protocol := addrbook.UnknownProtocol
	if to != "" {
		protocol = addrbook.ProtocolName(to)
	}
	name := FunctionName(selector)
	calls = append(calls, txcommon.FunctionCall{
		Function:    name,
		Signature:   selector,
		Arguments:   []interface{}{},
		Protocol:    protocol,
		Description: functionDescription(name, protocol),
	})
	return calls
}

func functionDescription(name, protocol string) string {
	switch name {
	case "transfer":
		return fmt.Sprintf("Transfer tokens via %s", protocol)
	case "transferFrom":
		return fmt.Sprintf("Transfer tokens on behalf of another address via %s", protocol)
	case "approve":
		return fmt.Sprintf("Approve token spending via %s", protocol)
	case "swapExactETHForTokens":
		return fmt.Sprintf("Swap exact ETH for tokens on %s", protocol)
	case "deposit", "supply", "submit":
		return fmt.Sprintf("Deposit funds to %s", protocol)
	case "withdraw":
		return fmt.Sprintf("Withdraw funds from %s", protocol)
	}
	if strings.HasPrefix(name, "swap") {
		return fmt.Sprintf("Swap tokens on %s", protocol)
	}
	return fmt.Sprintf("%s operation on %s", name, protocol)
}

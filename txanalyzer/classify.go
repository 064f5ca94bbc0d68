package txanalyzer

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/core/types"

	txcommon "github.com/txlens/txlens/common"
	"github.com/txlens/txlens/util/addrbook"
)

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func hasTransferLog(logs []*types.Log, topics int) bool {
	for _, l := range logs {
		if isTransferLog(l, topics) {
			return true
		}
	}
	return false
}

// classify returns the first matching transaction type.
func classify(data []byte, value *big.Int, to string, logs []*types.Log) txcommon.TxType {
	if len(data) == 0 && value != nil && value.Sign() > 0 {
		return txcommon.TxTypeETHTransfer
	}
	if to == "" || len(data) == 0 {
		return txcommon.TxTypeUnknown
	}
	protocol := addrbook.ProtocolName(to)
	switch {
	case containsAny(protocol, "Uniswap", "SushiSwap", "1inch"):
		return txcommon.TxTypeDEXSwap
	case containsAny(protocol, "Aave", "Compound"):
		return txcommon.TxTypeLending
	case containsAny(protocol, "stETH", "rETH", "cbETH", "Deposit"):
		return txcommon.TxTypeStaking
	case containsAny(protocol, "Bridge"):
		return txcommon.TxTypeBridge
	case addrbook.IsNFTCollection(to) || hasTransferLog(logs, 4):
		return txcommon.TxTypeNFTTransfer
	case hasTransferLog(logs, 3):
		return txcommon.TxTypeTokenTransfer
	}
	return txcommon.TxTypeContractInteraction
}

func summarize(t txcommon.TxType, calls, transfers int, valueInEth float64) string {
	switch t {
	case txcommon.TxTypeETHTransfer:
		return fmt.Sprintf("ETH transfer of %.4f ETH", valueInEth)
	case txcommon.TxTypeDEXSwap:
		return fmt.Sprintf("Token swap on DEX involving %d token transfers", transfers)
	case txcommon.TxTypeLending:
		return fmt.Sprintf("Lending protocol interaction with %d function calls", calls)
	case txcommon.TxTypeStaking:
		return "Staking transaction for ETH 2.0 or liquid staking"
	case txcommon.TxTypeBridge:
		return "Cross-chain bridge transaction"
	case txcommon.TxTypeNFTTransfer:
		return "NFT transfer transaction"
	case txcommon.TxTypeTokenTransfer:
		return fmt.Sprintf("Token transfer involving %d token transfers", transfers)
	case txcommon.TxTypeContractInteraction:
		return fmt.Sprintf("Smart contract interaction with %d function calls", calls)
	}
	return fmt.Sprintf("Ethereum transaction with %d function calls", calls)
}

// GasEfficiency rates how much of the gas limit was used.
func GasEfficiency(gasUsed, gasLimit uint64) string {
	if gasLimit == 0 {
		return "Low"
	}
	ratio := float64(gasUsed) / float64(gasLimit)
	switch {
	case ratio > 0.9:
		return "High"
	case ratio > 0.7:
		return "Medium"
	}
	return "Low"
}

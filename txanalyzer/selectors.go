package txanalyzer

import (
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

const UnknownFunction = "unknown"

// knownSignatures are matched by 4-byte selector only. Arguments are never
// decoded.
var knownSignatures = []string{
	"transfer(address,uint256)",
	"transferFrom(address,address,uint256)",
	"approve(address,uint256)",
	"swapExactETHForTokens(uint256,address[],address,uint256)",
	"swapExactTokensForETH(uint256,uint256,address[],address,uint256)",
	"swapExactTokensForTokens(uint256,uint256,address[],address,uint256)",
	"swapExactETHForTokensSupportingFeeOnTransferTokens(uint256,address[],address,uint256)",
	"swapExactTokensForETHSupportingFeeOnTransferTokens(uint256,uint256,address[],address,uint256)",
	"swapExactTokensForTokensSupportingFeeOnTransferTokens(uint256,uint256,address[],address,uint256)",
	"removeLiquidityETH(address,uint256,uint256,uint256,address,uint256)",
	"multicall(uint256,bytes[])",
	"execute(bytes,bytes[],uint256)",
	"deposit()",
	"deposit(bytes,bytes,bytes,bytes32)",
	"submit(address)",
	"withdraw(uint256)",
	"mint()",
	"burn(uint256)",
	"supply(address,uint256,address,uint16)",
	"borrow(address,uint256,uint256,uint16,address)",
	"repay(address,uint256,uint256,address)",
	"setApprovalForAll(address,bool)",
	"safeTransferFrom(address,address,uint256)",
}

// selectorNames maps "0x" + 8 hex chars to the function name.
var selectorNames = map[string]string{}

func init() {
	for _, sig := range knownSignatures {
		selectorNames[Selector(sig)] = sig[:strings.Index(sig, "(")]
	}
}

// Selector computes the 4-byte function selector of a canonical signature.
func Selector(signature string) string {
	return hexutil.Encode(crypto.Keccak256([]byte(signature))[:4])
}

func FunctionName(selector string) string {
	if name, found := selectorNames[strings.ToLower(selector)]; found {
		return name
	}
	return UnknownFunction
}

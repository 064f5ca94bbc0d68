package txanalyzer

import (
	txcommon "github.com/txlens/txlens/common"
)

var typeEducation = map[txcommon.TxType][]string{
	txcommon.TxTypeETHTransfer: {
		"💡 ETH transfers are the most basic Ethereum transactions. They move native Ether from one address to another, similar to sending money through a bank transfer.",
		"⚡ Ethereum uses a proof-of-stake consensus mechanism, making transactions faster and more energy-efficient than the previous proof-of-work system.",
	},
	txcommon.TxTypeDEXSwap: {
		"🔄 DEX swaps use automated market makers (AMMs) to provide liquidity. Uniswap, SushiSwap, and 1inch are popular DEXs that enable token trading without intermediaries.",
		"📊 AMMs use mathematical formulas to determine prices based on the ratio of tokens in liquidity pools, ensuring continuous liquidity for traders.",
	},
	txcommon.TxTypeLending: {
		"🏦 DeFi lending protocols like Aave and Compound allow users to earn interest on deposits or borrow against collateral without traditional banks.",
		"🔒 These protocols use over-collateralization and liquidation mechanisms to maintain system stability and protect lenders.",
	},
	txcommon.TxTypeStaking: {
		"🎯 Staking helps secure the Ethereum network while earning rewards. ETH 2.0 staking requires 32 ETH minimum, while liquid staking tokens like stETH allow smaller amounts.",
		"⚡ Liquid staking tokens provide flexibility by allowing stakers to use their staked ETH in other DeFi protocols while still earning staking rewards.",
	},
	txcommon.TxTypeBridge: {
		"🌉 Cross-chain bridges enable asset transfers between different blockchains, expanding the reach of Ethereum's DeFi ecosystem.",
		"🔗 Popular bridges include Arbitrum, Polygon, and Optimism, each offering different trade-offs between speed, cost, and security.",
	},
	txcommon.TxTypeNFTTransfer: {
		"🎨 NFTs (Non-Fungible Tokens) represent unique digital assets. The ERC-721 and ERC-1155 standards enable ownership and transfer of these unique items.",
		"🖼️ NFT transfers use the same underlying technology as token transfers but represent ownership of unique digital items rather than fungible tokens.",
	},
	txcommon.TxTypeTokenTransfer: {
		"🪙 ERC-20 is the standard interface for fungible tokens. Every transfer emits a Transfer event that wallets and explorers read to track balances.",
		"🧾 Token amounts are stored as integers; the token's decimals tell you where to put the decimal point (USDC uses 6, most tokens use 18).",
	},
	txcommon.TxTypeContractInteraction: {
		"🤖 Smart contracts are programs stored on Ethereum. Calling one runs its code on every node and can change on-chain state.",
		"🔍 The first 4 bytes of the call data select which contract function runs. They are derived from the keccak256 hash of the function signature.",
	},
}

var generalEducation = []string{
	"🚀 Ethereum is the world's leading smart contract platform, enabling decentralized applications (dApps) and DeFi protocols.",
	"⛽ Gas fees pay for transaction processing and network security. Higher gas prices can lead to faster transaction confirmation.",
}

func educationalContent(t txcommon.TxType) []string {
	content := []string{}
	content = append(content, typeEducation[t]...)
	return append(content, generalEducation...)
}

package addrbook

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

const (
	CategoryDEX       = "DEX"
	CategoryLending   = "Lending"
	CategoryStaking   = "Staking"
	CategoryNFT       = "NFT"
	CategoryBridge    = "Bridge"
	CategoryOtherDeFi = "Other DeFi"

	UnknownProtocol = "Unknown Protocol"
)

type ProtocolEntry struct {
	Address  string
	Name     string
	Category string
}

type TokenEntry struct {
	Address  string
	Name     string
	Symbol   string
	Decimals uint64
}

// PROTOCOL_MAPPINGS lists well known mainnet contracts in display order.
var PROTOCOL_MAPPINGS = []ProtocolEntry{
	{"0x7a250d5630B4cF539739dF2C5dAcb4c659F2488D", "Uniswap V2 Router", CategoryDEX},
	{"0xE592427A0AEce92De3Edee1F18E0157C05861564", "Uniswap V3 Router", CategoryDEX},
	{"0x68b3465833fb72A70ecDF485E0e4C7bD8665Fc45", "Uniswap V3 Router 2", CategoryDEX},
	{"0xd9e1cE17f2641f24aE83637ab66a2cca9C378B9F", "SushiSwap Router", CategoryDEX},
	{"0x1b02dA8Cb0d097eB8D57A175b88c7D8b47997506", "SushiSwap Router V2", CategoryDEX},
	{"0x1111111254EEB25477B68fb85Ed929f73A960582", "1inch Router", CategoryDEX},
	{"0x7C2508411c79e8C5C0c2423d48cD6b0E5e1D2a47", "1inch Router V5", CategoryDEX},

	{"0x7d2768dE32b0b80b7a3454c06BdAc94A69DDc7A9", "Aave V2 Lending Pool", CategoryLending},
	{"0x87870Bca3F3fD6335C3F4ce8392D69350B4fA4E2", "Aave V3 Lending Pool", CategoryLending},
	{"0x4Ddc2D193948926D02f9B1fE9e1daa0718270ED5", "Compound cETH", CategoryLending},
	{"0x39AA39c021dfbaE8faC545936693aC917d5E7563", "Compound cUSDC", CategoryLending},
	{"0xf650C3d88D12dB855b8bf7D11Be6C55A4e07dCC9", "Compound cUSDT", CategoryLending},

	{"0x00000000219ab540356cBB839Cbe05303d7705Fa", "Ethereum 2.0 Deposit Contract", CategoryStaking},
	{"0xae7ab96520DE3A18E5e111B5EaAb095312D7fE84", "Lido stETH", CategoryStaking},
	{"0xBe9895146f7AF43049ca1c1AE358B0541Ea49704", "Coinbase cbETH", CategoryStaking},
	{"0xae78736Cd615f374D3085123A210448E74Fc6393", "Rocket Pool rETH", CategoryStaking},

	{"0xBC4CA0EdA7647A8aB7C2061c2E118A18a936f13D", "Bored Ape Yacht Club", CategoryNFT},
	{"0x60E4d786628Fea6478F785A6d7e704777c86a7c6", "Mutant Ape Yacht Club", CategoryNFT},
	{"0xED5AF388653567Af2F388E6224dC7C4b3241C544", "Azuki", CategoryNFT},
	{"0x49cF6f5d44E70224e2E23fDcdd2C053F30aDA28B", "CloneX", CategoryNFT},

	{"0x3ee18B2214AFF97000D97cf826a7A8C3F3d415F0", "Wormhole Bridge", CategoryBridge},
	{"0x4Dbd4fc535Ac27206064B68FfCf827b0A60BAB3d", "Arbitrum Bridge", CategoryBridge},
	{"0x8315177aB297bA92A06054cE80a67Ed4DBd7ed3a", "Polygon Bridge", CategoryBridge},

	{"0x5d3a536E4D6DbD6114cc1Ead35777bAB948E3643", "Compound cDAI", CategoryOtherDeFi},
	{"0x6B175474E89094C44Da98b954EedeAC495271d0F", "DAI Stablecoin", CategoryOtherDeFi},
	{"0x9f8F72aA9304c8B593d555F12eF6589cC3A579A2", "MakerDAO", CategoryOtherDeFi},
	{"0x514910771AF9Ca656af840dff83E8264EcF986CA", "Chainlink LINK", CategoryOtherDeFi},
	{"0x2260FAC5E5542a773Aa44fBCfeDf7C193bc2C599", "Wrapped Bitcoin (WBTC)", CategoryOtherDeFi},
}

var POPULAR_TOKENS = []TokenEntry{
	{"0x0000000000000000000000000000000000000000", "Ethereum", "ETH", 18},
	{"0x6B175474E89094C44Da98b954EedeAC495271d0F", "Dai Stablecoin", "DAI", 18},
	{"0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48", "USD Coin", "USDC", 6},
	{"0xdAC17F958D2ee523a2206206994597C13D831ec7", "Tether USD", "USDT", 6},
	{"0x514910771AF9Ca656af840dff83E8264EcF986CA", "Chainlink", "LINK", 18},
	{"0x2260FAC5E5542a773Aa44fBCfeDf7C193bc2C599", "Wrapped Bitcoin", "WBTC", 8},
	{"0x1f9840a85d5aF5bf1D1762F925BDADdC4201F984", "Uniswap", "UNI", 18},
	{"0x7D1AfA7B718fb893dB30A3aBc0Cfc608AaCfeBB0", "Polygon", "MATIC", 18},
	{"0xae7ab96520DE3A18E5e111B5EaAb095312D7fE84", "Lido Staked ETH", "stETH", 18},
}

var (
	protocolIndex = map[common.Address]ProtocolEntry{}
	tokenIndex    = map[common.Address]TokenEntry{}
)

func init() {
	for _, p := range PROTOCOL_MAPPINGS {
		protocolIndex[common.HexToAddress(p.Address)] = p
	}
	for _, t := range POPULAR_TOKENS {
		tokenIndex[common.HexToAddress(t.Address)] = t
	}
}

func normalize(addr string) (common.Address, bool) {
	addr = strings.TrimSpace(addr)
	if !common.IsHexAddress(addr) {
		return common.Address{}, false
	}
	return common.HexToAddress(addr), true
}

// ProtocolName returns the known protocol at addr, or UnknownProtocol.
func ProtocolName(addr string) string {
	p, found := LookupProtocol(addr)
	if !found {
		return UnknownProtocol
	}
	return p.Name
}

func LookupProtocol(addr string) (ProtocolEntry, bool) {
	a, ok := normalize(addr)
	if !ok {
		return ProtocolEntry{}, false
	}
	p, found := protocolIndex[a]
	return p, found
}

// TokenInfo returns the known token at addr. Unknown tokens are assumed to
// have 18 decimals.
func TokenInfo(addr string) TokenEntry {
	if a, ok := normalize(addr); ok {
		if t, found := tokenIndex[a]; found {
			return t
		}
	}
	return TokenEntry{
		Address:  addr,
		Name:     "Unknown Token",
		Symbol:   "UNK",
		Decimals: 18,
	}
}

func IsNFTCollection(addr string) bool {
	p, found := LookupProtocol(addr)
	return found && p.Category == CategoryNFT
}

package networks

var EthereumMainnet Network = NewGenericNetwork(GenericNetworkConfig{
	Name:               "mainnet",
	AlternativeNames:   []string{"ethereum", "eth"},
	ChainID:            1,
	NativeTokenSymbol:  "ETH",
	NativeTokenDecimal: 18,
	BlockTime:          12,
	NodeVariableName:   "TXLENS_MAINNET_NODE",
	DefaultNodes: map[string]string{
		"mainnet-llamarpc": "https://eth.llamarpc.com",
	},
	BlockExplorerURL: "https://etherscan.io",
})

var Sepolia Network = NewGenericNetwork(GenericNetworkConfig{
	Name:               "sepolia",
	ChainID:            11155111,
	NativeTokenSymbol:  "ETH",
	NativeTokenDecimal: 18,
	BlockTime:          12,
	NodeVariableName:   "TXLENS_SEPOLIA_NODE",
	DefaultNodes: map[string]string{
		"sepolia-publicnode": "https://ethereum-sepolia-rpc.publicnode.com",
	},
	BlockExplorerURL: "https://sepolia.etherscan.io",
})

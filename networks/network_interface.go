package networks

import (
	"encoding/json"
	"time"
)

type Network interface {
	GetName() string
	GetChainID() uint64
	GetAlternativeNames() []string
	GetNativeTokenSymbol() string
	GetNativeTokenDecimal() uint64
	GetBlockTime() time.Duration

	// GetNodeVariableName is the env var that overrides the default nodes,
	// e.g. TXLENS_MAINNET_NODE. Multiple urls are comma separated.
	GetNodeVariableName() string
	GetDefaultNodes() map[string]string

	GetBlockExplorerURL() string
	TxURL(hash string) string

	json.Marshaler
}

package networks

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

type GenericNetworkConfig struct {
	Name               string            `json:"name"`
	AlternativeNames   []string          `json:"alternative_names"`
	ChainID            uint64            `json:"chain_id"`
	NativeTokenSymbol  string            `json:"native_token_symbol"`
	NativeTokenDecimal uint64            `json:"native_token_decimal"`
	BlockTime          uint64            `json:"block_time"`
	NodeVariableName   string            `json:"node_variable_name"`
	DefaultNodes       map[string]string `json:"default_nodes"`
	BlockExplorerURL   string            `json:"block_explorer_url"`
}

// GenericNetwork is a Network fully described by its config. Built-in
// networks and the ones loaded from <data-dir>/networks/*.json are both
// GenericNetworks.
type GenericNetwork struct {
	config GenericNetworkConfig
}

func NewGenericNetwork(config GenericNetworkConfig) *GenericNetwork {
	if config.NativeTokenSymbol == "" {
		config.NativeTokenSymbol = "ETH"
	}
	if config.NativeTokenDecimal == 0 {
		config.NativeTokenDecimal = 18
	}
	if config.NodeVariableName == "" {
		config.NodeVariableName = fmt.Sprintf(
			"TXLENS_%s_NODE",
			strings.ToUpper(strings.ReplaceAll(config.Name, "-", "_")),
		)
	}
	return &GenericNetwork{config: config}
}

func NewNetworkFromJSON(content []byte) (Network, error) {
	config := GenericNetworkConfig{}
	if err := json.Unmarshal(content, &config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal network config: %w", err)
	}
	if config.Name == "" {
		return nil, fmt.Errorf("network config has no name")
	}
	if config.ChainID == 0 {
		return nil, fmt.Errorf("network config %s has no chain id", config.Name)
	}
	return NewGenericNetwork(config), nil
}

func (gn *GenericNetwork) GetName() string {
	return gn.config.Name
}

func (gn *GenericNetwork) GetChainID() uint64 {
	return gn.config.ChainID
}

func (gn *GenericNetwork) GetAlternativeNames() []string {
	return gn.config.AlternativeNames
}

func (gn *GenericNetwork) GetNativeTokenSymbol() string {
	return gn.config.NativeTokenSymbol
}

func (gn *GenericNetwork) GetNativeTokenDecimal() uint64 {
	return gn.config.NativeTokenDecimal
}

func (gn *GenericNetwork) GetBlockTime() time.Duration {
	return time.Duration(gn.config.BlockTime) * time.Second
}

func (gn *GenericNetwork) GetNodeVariableName() string {
	return gn.config.NodeVariableName
}

func (gn *GenericNetwork) GetDefaultNodes() map[string]string {
	return gn.config.DefaultNodes
}

func (gn *GenericNetwork) GetBlockExplorerURL() string {
	return gn.config.BlockExplorerURL
}

func (gn *GenericNetwork) TxURL(hash string) string {
	if gn.config.BlockExplorerURL == "" {
		return ""
	}
	return fmt.Sprintf("%s/tx/%s", strings.TrimRight(gn.config.BlockExplorerURL, "/"), hash)
}

func (gn *GenericNetwork) MarshalJSON() ([]byte, error) {
	return json.Marshal(gn.config)
}

package networks

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGetNetwork(t *testing.T) {
	n, err := GetNetwork("mainnet")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), n.GetChainID())
	assert.Equal(t, "ETH", n.GetNativeTokenSymbol())

	alias, err := GetNetwork("ethereum")
	require.NoError(t, err)
	assert.Equal(t, n, alias)

	_, err = GetNetwork("ropsten")
	assert.True(t, errors.Is(err, ErrNetworkNotFound))
}

func TestTxURL(t *testing.T) {
	assert.Equal(t, "https://sepolia.etherscan.io/tx/0xabc", Sepolia.TxURL("0xabc"))
	n := NewGenericNetwork(GenericNetworkConfig{Name: "devnet", ChainID: 1337})
	assert.Equal(t, "", n.TxURL("0xabc"))
	assert.Equal(t, "TXLENS_DEVNET_NODE", n.GetNodeVariableName())
	assert.Equal(t, uint64(18), n.GetNativeTokenDecimal())
}

func TestLoadCustomNetworks(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "holesky.json"), []byte(`{
		"name": "holesky-test",
		"chain_id": 17000,
		"block_time": 12,
		"default_nodes": {"holesky": "https://holesky.example"}
	}`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte(`{"name": "x"}`), 0644))

	require.NoError(t, LoadCustomNetworks(dir, zap.NewNop()))

	n, err := GetNetwork("holesky-test")
	require.NoError(t, err)
	assert.Equal(t, uint64(17000), n.GetChainID())
	assert.Equal(t, "https://holesky.example", n.GetDefaultNodes()["holesky"])

	byID, err := GetNetworkByID(17000)
	require.NoError(t, err)
	assert.Equal(t, "holesky-test", byID.GetName())

	_, err = GetNetwork("x")
	assert.Error(t, err)
}

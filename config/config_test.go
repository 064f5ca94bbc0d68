package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func Test_parseStringAsList(t *testing.T) {
	assert.Equal(t, []string{}, parseStringAsList(""))
	assert.Equal(t,
		[]string{"http://a:8545", "http://b:8545"},
		parseStringAsList(" http://a:8545 ,, http://b:8545,"),
	)
}

func Test_NewConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		viper.Reset()
		cfg := NewConfig()
		assert.Equal(t, "mainnet", cfg.Network)
		assert.Equal(t, DefaultTimeout, cfg.Timeout)
		assert.Empty(t, cfg.RpcUrls)
		assert.Equal(t, DefaultDataDir(), cfg.DataDir)
	})

	t.Run("env overrides", func(t *testing.T) {
		viper.Reset()
		viper.SetEnvPrefix(ENV_PREFIX)
		viper.AutomaticEnv()
		t.Setenv("TXLENS_NETWORK", "sepolia")
		t.Setenv("TXLENS_RPC_URL", "http://localhost:8545,http://backup:8545")
		t.Setenv("TXLENS_TIMEOUT", "10s")
		t.Setenv("TXLENS_DATA_DIR", "/tmp/txlens")

		cfg := NewConfig()
		assert.Equal(t, "sepolia", cfg.Network)
		assert.Equal(t, []string{"http://localhost:8545", "http://backup:8545"}, cfg.RpcUrls)
		assert.Equal(t, 10*time.Second, cfg.Timeout)
		assert.Equal(t, "/tmp/txlens/history", cfg.HistoryPath())
		assert.Equal(t, "/tmp/txlens/cache.json", cfg.CachePath())
		viper.Reset()
	})
}

func Test_KebabToSnakeCase(t *testing.T) {
	assert.Equal(t, "rpc_url", KebabToSnakeCase("rpc-url"))
	assert.Equal(t, "debug", KebabToSnakeCase("debug"))
}

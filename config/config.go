package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const ENV_PREFIX = "TXLENS"

// Keys shared by the cobra flags and viper. Env vars are the prefixed,
// snake-cased form, e.g. TXLENS_RPC_URL.
const (
	Network    = "network"
	RpcUrl     = "rpc-url"
	Debug      = "debug"
	DataDir    = "data-dir"
	Timeout    = "timeout"
	JSONOutput = "json"
	NoColor    = "no-color"
)

const DefaultTimeout = 4 * time.Second

type Config struct {
	Network        string
	RpcUrls        []string
	Debug          bool
	DataDir        string
	Timeout        time.Duration
	JSONOutputFile string
	NoColor        bool
}

func KebabToSnakeCase(str string) string {
	return strings.ReplaceAll(str, "-", "_")
}

func parseStringAsList(envVar string) []string {
	if envVar == "" {
		return []string{}
	}
	l := make([]string, 0)
	for _, s := range strings.Split(envVar, ",") {
		s = strings.TrimSpace(s)
		if s != "" {
			l = append(l, s)
		}
	}
	return l
}

func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".txlens"
	}
	return filepath.Join(home, ".txlens")
}

// NewConfig reads the effective configuration from viper. Flags must have
// been bound beforehand.
func NewConfig() *Config {
	cfg := &Config{
		Network:        viper.GetString(KebabToSnakeCase(Network)),
		RpcUrls:        parseStringAsList(viper.GetString(KebabToSnakeCase(RpcUrl))),
		Debug:          viper.GetBool(KebabToSnakeCase(Debug)),
		DataDir:        viper.GetString(KebabToSnakeCase(DataDir)),
		Timeout:        viper.GetDuration(KebabToSnakeCase(Timeout)),
		JSONOutputFile: viper.GetString(KebabToSnakeCase(JSONOutput)),
		NoColor:        viper.GetBool(KebabToSnakeCase(NoColor)),
	}
	if cfg.Network == "" {
		cfg.Network = "mainnet"
	}
	if cfg.DataDir == "" {
		cfg.DataDir = DefaultDataDir()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return cfg
}

func (c *Config) HistoryPath() string {
	return filepath.Join(c.DataDir, "history")
}

func (c *Config) CachePath() string {
	return filepath.Join(c.DataDir, "cache.json")
}

func (c *Config) NetworksDir() string {
	return filepath.Join(c.DataDir, "networks")
}

package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/txlens/txlens/config"
	"github.com/txlens/txlens/history"
	"github.com/txlens/txlens/logger"
	"github.com/txlens/txlens/networks"
	"github.com/txlens/txlens/txanalyzer"
	"github.com/txlens/txlens/ui"
	"github.com/txlens/txlens/util"
	"github.com/txlens/txlens/util/cache"
	"github.com/txlens/txlens/util/reader"
)

const colorPrefKey = "color_enabled"

// app is what every command shares once flags are parsed.
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	ui      ui.UI
	network networks.Network
	cache   *cache.Cache
}

var current *app

func setup() error {
	cfg := config.NewConfig()
	l, err := logger.NewLogger(&logger.LoggerConfig{Debug: cfg.Debug})
	if err != nil {
		return fmt.Errorf("couldn't init logger: %w", err)
	}
	if err := networks.LoadCustomNetworks(cfg.NetworksDir(), l); err != nil {
		l.Warn("couldn't load custom networks", zap.Error(err))
	}
	n, err := resolveNetwork(cfg.Network)
	if err != nil {
		return fmt.Errorf("%s: %w. Valid values: %s", cfg.Network, err, strings.Join(networks.GetSupportedNetworkNames(), ", "))
	}
	c := cache.New(cfg.CachePath())
	current = &app{
		cfg:     cfg,
		logger:  l,
		ui:      ui.NewTerminalUI(colorsEnabled(cfg, c)),
		network: n,
		cache:   c,
	}
	l.Debug("txlens started",
		zap.String("network", n.GetName()),
		zap.String("dataDir", cfg.DataDir),
		zap.Strings("rpcUrls", cfg.RpcUrls),
	)
	return nil
}

// resolveNetwork accepts a network name or a chain id.
func resolveNetwork(value string) (networks.Network, error) {
	n, err := networks.GetNetwork(value)
	if err == nil {
		return n, nil
	}
	if id, convErr := strconv.ParseUint(strings.TrimSpace(value), 10, 64); convErr == nil {
		return networks.GetNetworkByID(id)
	}
	return nil, err
}

func teardown() {
	if current != nil {
		current.logger.Sync() //nolint:errcheck
	}
}

// colorsEnabled: --no-color wins over the stored preference, which defaults
// to on.
func colorsEnabled(cfg *config.Config, c *cache.Cache) bool {
	if cfg.NoColor {
		return false
	}
	if on, found := c.GetBool(colorPrefKey); found {
		return on
	}
	return true
}

func (a *app) reader() *reader.EthReader {
	return reader.NewEthReader(
		util.GetNodes(a.network, a.cfg.RpcUrls),
		reader.WithTimeout(a.cfg.Timeout),
		reader.WithLogger(a.logger),
		reader.WithCache(a.cache, a.network.GetChainID()),
	)
}

func (a *app) analyzer() *txanalyzer.TxAnalyzer {
	return txanalyzer.NewGenericAnalyzer(txanalyzer.NewAnalysisContext(a.network, a.logger))
}

func (a *app) openHistory() (*history.Store, error) {
	return history.Open(a.cfg.HistoryPath(), a.logger)
}

// writeJSON writes v to the --json file when one was given.
func (a *app) writeJSON(v any) error {
	path := a.cfg.JSONOutputFile
	if path == "" {
		return nil
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("couldn't encode json: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("couldn't create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("couldn't write %s: %w", path, err)
	}
	a.ui.Success("Result written to %s", path)
	return nil
}

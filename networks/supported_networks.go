package networks

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"go.uber.org/zap"
)

// Insert more Network implementation here to support
// more chains
var builtinNetworks = []Network{
	EthereumMainnet,
	Sepolia,
}

var ErrNetworkNotFound = fmt.Errorf("network not found")

type registry struct {
	mu           sync.RWMutex
	networks     map[string]Network
	networksByID map[uint64]Network
}

var globalRegistry = newRegistry(builtinNetworks)

func newRegistry(ns []Network) *registry {
	r := &registry{
		networks:     map[string]Network{},
		networksByID: map[uint64]Network{},
	}
	for _, n := range ns {
		if err := r.add(n, false); err != nil {
			panic(err)
		}
	}
	return r
}

func (r *registry) add(n Network, override bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := append([]string{n.GetName()}, n.GetAlternativeNames()...)
	if !override {
		for _, name := range names {
			if _, found := r.networks[name]; found {
				return fmt.Errorf("network with name or alternative name of '%s' already exists", name)
			}
		}
	}
	for _, name := range names {
		r.networks[name] = n
	}
	r.networksByID[n.GetChainID()] = n
	return nil
}

func (r *registry) get(name string) (Network, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res, found := r.networks[name]
	if !found {
		return nil, fmt.Errorf("network name '%s': %w", name, ErrNetworkNotFound)
	}
	return res, nil
}

func (r *registry) getByID(id uint64) (Network, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res, found := r.networksByID[id]
	if !found {
		return nil, fmt.Errorf("network id %d: %w", id, ErrNetworkNotFound)
	}
	return res, nil
}

func (r *registry) names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := []string{}
	for _, n := range r.networksByID {
		res = append(res, n.GetName())
	}
	sort.Strings(res)
	return res
}

// LoadCustomNetworks registers every <dir>/*.json network config. A custom
// network with the same name or chain id as a built-in one replaces it.
// Broken files are logged and skipped.
func LoadCustomNetworks(dir string, l *zap.Logger) error {
	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return fmt.Errorf("failed to glob json files in %s: %w", dir, err)
	}
	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", file, err)
		}
		n, err := NewNetworkFromJSON(content)
		if err != nil {
			l.Sugar().Warnw("Skipping custom network", "file", file, "error", err)
			continue
		}
		if _, err := globalRegistry.get(n.GetName()); err == nil {
			l.Sugar().Infow("Custom network overrides built-in network", "name", n.GetName())
		}
		if err := globalRegistry.add(n, true); err != nil {
			return err
		}
	}
	return nil
}

func GetNetwork(name string) (Network, error) {
	return globalRegistry.get(name)
}

func GetNetworkByID(id uint64) (Network, error) {
	return globalRegistry.getByID(id)
}

func GetSupportedNetworkNames() []string {
	return globalRegistry.names()
}

package util

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/txlens/txlens/networks"
)

var (
	txHashRe     = regexp.MustCompile("^0x[0-9a-fA-F]{64}$")
	txHashScanRe = regexp.MustCompile("(0x)?[0-9a-fA-F]{64}")
)

// IsTxHash reports whether s is a 0x prefixed 32 byte hex string.
func IsTxHash(s string) bool {
	return txHashRe.MatchString(strings.TrimSpace(s))
}

// ValidateTxHash is the Ask validator for a transaction hash.
func ValidateTxHash(s string) error {
	if !IsTxHash(s) {
		return fmt.Errorf("Invalid transaction hash format, expected 0x followed by 64 hex characters")
	}
	return nil
}

// ScanForTxs finds every tx hash in para, adding the 0x prefix where it was
// left out. Duplicates are dropped, first occurrence wins.
func ScanForTxs(para string) []string {
	found := txHashScanRe.FindAllString(para, -1)
	result := []string{}
	seen := map[string]bool{}
	for _, h := range found {
		if !strings.HasPrefix(h, "0x") {
			h = "0x" + h
		}
		key := strings.ToLower(h)
		if seen[key] {
			continue
		}
		seen[key] = true
		result = append(result, h)
	}
	return result
}

// GetNodes returns the nodes to read network from. Explicit rpc urls replace
// the defaults entirely; the network's node env var only adds a node.
func GetNodes(network networks.Network, rpcUrls []string) map[string]string {
	if len(rpcUrls) > 0 {
		nodes := map[string]string{}
		for i, u := range rpcUrls {
			nodes[fmt.Sprintf("rpc-%d", i)] = u
		}
		return nodes
	}
	nodes := map[string]string{}
	for name, u := range network.GetDefaultNodes() {
		nodes[name] = u
	}
	if custom := strings.TrimSpace(os.Getenv(network.GetNodeVariableName())); custom != "" {
		nodes["custom-node"] = custom
	}
	return nodes
}

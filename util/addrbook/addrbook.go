// Package addrbook maps raw Ethereum hex addresses to the protocols and
// tokens txlens knows about.
//
// Production code uses [Default], backed by the static PROTOCOL_MAPPINGS and
// POPULAR_TOKENS tables. Tests inject [Map], a plain map that resolves to
// deterministic names.
package addrbook

import (
	txcommon "github.com/txlens/txlens/common"
)

// AddressResolver maps a raw Ethereum hex address to a txcommon.Address
// (hex + optional name + optional ERC20 decimal).
//
// Contract: if the address is not known, Desc must be set to "unknown".
type AddressResolver interface {
	Resolve(addr string) txcommon.Address
}

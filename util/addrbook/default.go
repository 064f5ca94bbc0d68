package addrbook

import (
	txcommon "github.com/txlens/txlens/common"
)

// Default resolves addresses against the static protocol and token tables.
// Protocol names win over token names since they are more descriptive
// ("DAI Stablecoin" over "Dai Stablecoin").
type Default struct{}

func NewDefault() AddressResolver {
	return Default{}
}

func (r Default) Resolve(addr string) txcommon.Address {
	a, ok := normalize(addr)
	if !ok {
		return txcommon.Address{Address: addr, Desc: "unknown"}
	}
	result := txcommon.Address{Address: a.Hex(), Desc: "unknown"}
	token, isToken := tokenIndex[a]
	if isToken {
		result.Desc = token.Name
		result.Decimal = int64(token.Decimals)
	}
	if p, found := protocolIndex[a]; found {
		result.Desc = p.Name
	}
	return result
}

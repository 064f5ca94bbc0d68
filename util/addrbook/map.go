package addrbook

import (
	"strings"

	txcommon "github.com/txlens/txlens/common"
)

// Map is a lightweight AddressResolver for tests. It maps lower-cased
// addresses to names; anything not in the map resolves to "unknown".
//
// Example:
//
//	r := addrbook.Map{
//	    "0xd8da6bf26964af9d7eed9e03e53415d37aa96045": "Vitalik Buterin",
//	}
type Map map[string]string

func (m Map) Resolve(addr string) txcommon.Address {
	if desc, ok := m[strings.ToLower(addr)]; ok {
		return txcommon.Address{Address: addr, Desc: desc}
	}
	return txcommon.Address{Address: addr, Desc: "unknown"}
}

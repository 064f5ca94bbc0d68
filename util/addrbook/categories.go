package addrbook

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

var categoryOrder = []string{
	CategoryDEX,
	CategoryLending,
	CategoryStaking,
	CategoryNFT,
	CategoryBridge,
	CategoryOtherDeFi,
}

// Categories groups PROTOCOL_MAPPINGS by category, keeping both the category
// order and the table order within each category.
func Categories() *orderedmap.OrderedMap[string, []ProtocolEntry] {
	result := orderedmap.New[string, []ProtocolEntry]()
	for _, c := range categoryOrder {
		result.Set(c, []ProtocolEntry{})
	}
	for _, p := range PROTOCOL_MAPPINGS {
		entries, _ := result.Get(p.Category)
		result.Set(p.Category, append(entries, p))
	}
	return result
}

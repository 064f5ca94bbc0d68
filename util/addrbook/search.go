package addrbook

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
)

const maxSearchResults = 10

type SearchResult struct {
	Address  string `json:"address"`
	Name     string `json:"name"`
	Kind     string `json:"kind"`
	Category string `json:"category,omitempty"`
	Symbol   string `json:"symbol,omitempty"`
	Score    int    `json:"score"`
}

type searchSource []SearchResult

func (s searchSource) Len() int {
	return len(s)
}

func (s searchSource) String(i int) string {
	name := strings.ReplaceAll(s[i].Name, " ", "_")
	if s[i].Symbol != "" {
		name = fmt.Sprintf("%s_%s", name, s[i].Symbol)
	}
	return fmt.Sprintf("%s_%s", name, s[i].Address)
}

func newSearchSource() searchSource {
	result := searchSource{}
	for _, p := range PROTOCOL_MAPPINGS {
		result = append(result, SearchResult{
			Address:  p.Address,
			Name:     p.Name,
			Kind:     "protocol",
			Category: p.Category,
		})
	}
	for _, t := range POPULAR_TOKENS {
		result = append(result, SearchResult{
			Address: t.Address,
			Name:    t.Name,
			Kind:    "token",
			Symbol:  t.Symbol,
		})
	}
	return result
}

// Search fuzzy matches query against names, symbols and addresses of every
// known protocol and token, best matches first.
func Search(query string) []SearchResult {
	query = strings.TrimSpace(query)
	if query == "" {
		return []SearchResult{}
	}
	source := newSearchSource()
	// an exact address hit is always the best answer
	if a, ok := normalize(query); ok {
		exact := []SearchResult{}
		for _, s := range source {
			if addr, _ := normalize(s.Address); addr == a {
				exact = append(exact, s)
			}
		}
		if len(exact) > 0 {
			return exact
		}
	}
	matches := fuzzy.FindFrom(strings.ReplaceAll(query, " ", "_"), source)
	result := []SearchResult{}
	for i := 0; i < len(matches) && i < maxSearchResults; i++ {
		r := source[matches[i].Index]
		r.Score = matches[i].Score
		result = append(result, r)
	}
	return result
}

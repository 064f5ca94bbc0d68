package history

import (
	"fmt"
	"strings"

	"github.com/blevesearch/bleve"
	"github.com/blevesearch/bleve/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/analysis/lang/en"
	"github.com/blevesearch/bleve/mapping"
	"github.com/blevesearch/bleve/search/query"
)

type searchDoc struct {
	Hash     string `json:"hash"`
	Summary  string `json:"summary"`
	Type     string `json:"type"`
	Protocol string `json:"protocol"`
}

func buildIndexMapping() mapping.IndexMapping {
	textFieldMapping := bleve.NewTextFieldMapping()
	textFieldMapping.Analyzer = en.AnalyzerName

	hashFieldMapping := bleve.NewTextFieldMapping()
	hashFieldMapping.Analyzer = keyword.Name

	docMapping := bleve.NewDocumentMapping()
	docMapping.AddFieldMappingsAt("summary", textFieldMapping)
	docMapping.AddFieldMappingsAt("type", textFieldMapping)
	docMapping.AddFieldMappingsAt("protocol", textFieldMapping)
	docMapping.AddFieldMappingsAt("hash", hashFieldMapping)

	indexMapping := bleve.NewIndexMapping()
	indexMapping.DefaultMapping = docMapping
	indexMapping.DefaultAnalyzer = en.AnalyzerName
	return indexMapping
}

func newSearchDoc(e Entry) searchDoc {
	return searchDoc{
		Hash:     strings.ToLower(e.Hash),
		Summary:  e.Explanation.Summary,
		Type:     strings.ToLower(strings.ReplaceAll(string(e.Explanation.TransactionType), "_", " ")),
		Protocol: e.Explanation.Protocol,
	}
}

func buildQuery(input string) query.Query {
	queries := []query.Query{}
	for _, field := range []string{"summary", "type", "protocol"} {
		match := bleve.NewMatchQuery(input)
		match.SetField(field)
		queries = append(queries, match)

		fuzzy := bleve.NewFuzzyQuery(strings.ToLower(input))
		fuzzy.SetField(field)
		fuzzy.Fuzziness = 1
		queries = append(queries, fuzzy)
	}
	prefix := bleve.NewPrefixQuery(strings.ToLower(input))
	prefix.SetField("hash")
	queries = append(queries, prefix)
	return bleve.NewDisjunctionQuery(queries...)
}

// Search runs a full-text query over the stored entries' summary, type,
// protocol and hash, best match first. The index lives in memory and is
// rebuilt per call since the history is tiny.
func (s *Store) Search(input string) ([]Entry, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return []Entry{}, nil
	}
	entries, err := s.List()
	if err != nil {
		return nil, err
	}
	index, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("creating search index: %w", err)
	}
	defer index.Close()

	byID := map[string]Entry{}
	batch := index.NewBatch()
	for _, e := range entries {
		byID[e.ID] = e
		if err := batch.Index(e.ID, newSearchDoc(e)); err != nil {
			return nil, fmt.Errorf("indexing %s: %w", e.Hash, err)
		}
	}
	if err := index.Batch(batch); err != nil {
		return nil, fmt.Errorf("indexing history: %w", err)
	}

	request := bleve.NewSearchRequestOptions(buildQuery(input), MaxEntries, 0, false)
	result, err := index.Search(request)
	if err != nil {
		return nil, fmt.Errorf("searching history: %w", err)
	}
	found := []Entry{}
	for _, hit := range result.Hits {
		if e, ok := byID[hit.ID]; ok {
			found = append(found, e)
		}
	}
	return found, nil
}

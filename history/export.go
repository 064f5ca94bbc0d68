package history

import (
	"fmt"
	"io"
	"time"

	"github.com/gocarina/gocsv"
)

type csvRow struct {
	AnalyzedAt  string  `csv:"analyzed_at"`
	Hash        string  `csv:"hash"`
	Network     string  `csv:"network"`
	Type        string  `csv:"type"`
	Protocol    string  `csv:"protocol"`
	Summary     string  `csv:"summary"`
	Success     bool    `csv:"success"`
	BlockNumber uint64  `csv:"block_number"`
	ValueInEth  float64 `csv:"value_eth"`
	GasFee      float64 `csv:"gas_fee_eth"`
	Timestamp   string  `csv:"timestamp"`
}

// ExportCSV writes every entry, newest first, with a header row.
func (s *Store) ExportCSV(w io.Writer) error {
	entries, err := s.List()
	if err != nil {
		return err
	}
	rows := make([]*csvRow, 0, len(entries))
	for _, e := range entries {
		x := e.Explanation
		rows = append(rows, &csvRow{
			AnalyzedAt:  e.AnalyzedAt.Format(time.RFC3339),
			Hash:        e.Hash,
			Network:     x.Network,
			Type:        string(x.TransactionType),
			Protocol:    x.Protocol,
			Summary:     x.Summary,
			Success:     x.Success,
			BlockNumber: x.BlockNumber,
			ValueInEth:  x.ValueInEth,
			GasFee:      x.GasFee,
			Timestamp:   x.Timestamp.Format(time.RFC3339),
		})
	}
	if err := gocsv.Marshal(rows, w); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}
	return nil
}

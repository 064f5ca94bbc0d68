package history

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	txcommon "github.com/txlens/txlens/common"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	return s
}

func hashN(n int) string {
	return fmt.Sprintf("0x%064x", n)
}

func explanation(n int, t txcommon.TxType, protocol, summary string) *txcommon.Explanation {
	return &txcommon.Explanation{
		Hash:            hashN(n),
		Network:         "mainnet",
		Success:         true,
		Summary:         summary,
		TransactionType: t,
		Protocol:        protocol,
		BlockNumber:     uint64(100 + n),
		Timestamp:       time.Unix(1700000000, 0).UTC(),
	}
}

func TestAddListNewestFirst(t *testing.T) {
	s := newTestStore(t)
	for i := 1; i <= 3; i++ {
		entry, err := s.Add(explanation(i, txcommon.TxTypeETHTransfer, "", "ETH transfer"))
		require.NoError(t, err)
		assert.NotEmpty(t, entry.ID)
	}

	entries, err := s.List()
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, hashN(3), entries[0].Hash)
	assert.Equal(t, hashN(1), entries[2].Hash)
	assert.Equal(t, uint64(103), entries[0].Explanation.BlockNumber)

	e, err := s.Get(1)
	require.NoError(t, err)
	assert.Equal(t, hashN(2), e.Hash)

	_, err = s.Get(3)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = s.Get(-1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestAddDedupesAndMovesToFront(t *testing.T) {
	s := newTestStore(t)
	first, err := s.Add(explanation(1, txcommon.TxTypeETHTransfer, "", "first"))
	require.NoError(t, err)
	_, err = s.Add(explanation(2, txcommon.TxTypeETHTransfer, "", "second"))
	require.NoError(t, err)
	again, err := s.Add(explanation(1, txcommon.TxTypeETHTransfer, "", "first again"))
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, again.ID)

	entries, err := s.List()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, hashN(1), entries[0].Hash)
	assert.Equal(t, "first again", entries[0].Explanation.Summary)

	// hashes differing only in case are the same transaction
	_, err = s.Add(explanation(2, txcommon.TxTypeETHTransfer, "", "upper"))
	require.NoError(t, err)
	upper := explanation(2, txcommon.TxTypeETHTransfer, "", "upper")
	upper.Hash = "0x" + strings.ToUpper(hashN(2)[2:])
	_, err = s.Add(upper)
	require.NoError(t, err)
	entries, err = s.List()
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestAddKeepsOnlyMaxEntries(t *testing.T) {
	s := newTestStore(t)
	for i := 1; i <= MaxEntries+5; i++ {
		_, err := s.Add(explanation(i, txcommon.TxTypeETHTransfer, "", "tx"))
		require.NoError(t, err)
	}
	entries, err := s.List()
	require.NoError(t, err)
	require.Len(t, entries, MaxEntries)
	assert.Equal(t, hashN(MaxEntries+5), entries[0].Hash)
	assert.Equal(t, hashN(6), entries[MaxEntries-1].Hash)
}

func TestCorruptEntryIsSkipped(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Add(explanation(1, txcommon.TxTypeETHTransfer, "", "good"))
	require.NoError(t, err)
	require.NoError(t, s.db.Put(entryKey(hashN(2)), []byte("{broken"), nil))

	entries, err := s.List()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, hashN(1), entries[0].Hash)
}

func TestClear(t *testing.T) {
	s := newTestStore(t)
	for i := 1; i <= 3; i++ {
		_, err := s.Add(explanation(i, txcommon.TxTypeETHTransfer, "", "tx"))
		require.NoError(t, err)
	}
	require.NoError(t, s.Clear())
	entries, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestHistorySurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")
	s, err := Open(path, nil)
	require.NoError(t, err)
	_, err = s.Add(explanation(1, txcommon.TxTypeETHTransfer, "", "persisted"))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	reopened, err := Open(path, nil)
	require.NoError(t, err)
	defer reopened.Close()
	entries, err := reopened.List()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "persisted", entries[0].Explanation.Summary)
}

func TestSearch(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Add(explanation(1, txcommon.TxTypeDEXSwap, "Uniswap V2 Router", "Token swap on DEX involving 3 token transfers"))
	require.NoError(t, err)
	_, err = s.Add(explanation(2, txcommon.TxTypeLending, "Aave V2 Lending Pool", "Lending protocol interaction with 1 function calls"))
	require.NoError(t, err)
	_, err = s.Add(explanation(3, txcommon.TxTypeETHTransfer, "Unknown Protocol", "ETH transfer of 1.0000 ETH"))
	require.NoError(t, err)

	found, err := s.Search("uniswap")
	require.NoError(t, err)
	require.NotEmpty(t, found)
	assert.Equal(t, hashN(1), found[0].Hash)

	found, err = s.Search("lending")
	require.NoError(t, err)
	require.NotEmpty(t, found)
	assert.Equal(t, hashN(2), found[0].Hash)

	found, err = s.Search(hashN(3))
	require.NoError(t, err)
	require.NotEmpty(t, found)
	assert.Equal(t, hashN(3), found[0].Hash)

	found, err = s.Search("  ")
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestExportCSV(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Add(explanation(1, txcommon.TxTypeETHTransfer, "", "ETH transfer of 1.0000 ETH"))
	require.NoError(t, err)
	_, err = s.Add(explanation(2, txcommon.TxTypeDEXSwap, "Uniswap V2 Router", "Token swap on DEX involving 3 token transfers"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, s.ExportCSV(&buf))

	rows := []*csvRow{}
	require.NoError(t, gocsv.Unmarshal(bytes.NewReader(buf.Bytes()), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, hashN(2), rows[0].Hash)
	assert.Equal(t, "DEX_SWAP", rows[0].Type)
	assert.Equal(t, "Uniswap V2 Router", rows[0].Protocol)
	assert.True(t, rows[1].Success)
	assert.True(t, strings.HasPrefix(buf.String(), "analyzed_at,hash,network,type"))
}

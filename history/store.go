// Package history keeps the most recently explained transactions on disk.
package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/util"
	"go.uber.org/zap"

	txcommon "github.com/txlens/txlens/common"
)

const (
	MaxEntries = 10

	entryPrefix = "entry/"
)

var ErrIndexOutOfRange = errors.New("history index out of range")

type Entry struct {
	ID          string                `json:"id"`
	Hash        string                `json:"hash"`
	AnalyzedAt  time.Time             `json:"analyzed_at"`
	Explanation *txcommon.Explanation `json:"explanation"`
}

// Store is a goleveldb backed list of at most MaxEntries explanations, one
// per transaction hash.
type Store struct {
	db     *leveldb.DB
	logger *zap.Logger
	now    func() time.Time
}

func Open(path string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("opening history at %s: %w", path, err)
	}
	return &Store{db: db, logger: logger, now: time.Now}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func entryKey(hash string) []byte {
	return []byte(entryPrefix + strings.ToLower(hash))
}

// List returns entries newest first. Entries that cannot be decoded are
// skipped.
func (s *Store) List() ([]Entry, error) {
	iter := s.db.NewIterator(util.BytesPrefix([]byte(entryPrefix)), nil)
	defer iter.Release()

	entries := []Entry{}
	for iter.Next() {
		var e Entry
		if err := json.Unmarshal(iter.Value(), &e); err != nil || e.Explanation == nil {
			s.logger.Warn("skipping corrupt history entry", zap.ByteString("key", iter.Key()), zap.Error(err))
			continue
		}
		entries = append(entries, e)
	}
	if err := iter.Error(); err != nil {
		return nil, fmt.Errorf("reading history: %w", err)
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].AnalyzedAt.After(entries[j].AnalyzedAt)
	})
	return entries, nil
}

// Get returns the entry at index, 0 being the newest.
func (s *Store) Get(index int) (Entry, error) {
	entries, err := s.List()
	if err != nil {
		return Entry{}, err
	}
	if index < 0 || index >= len(entries) {
		return Entry{}, fmt.Errorf("%w: %d (have %d)", ErrIndexOutOfRange, index, len(entries))
	}
	return entries[index], nil
}

// Add stores e as the newest entry. Re-adding a known hash replaces the old
// entry instead of duplicating it, and only the newest MaxEntries survive.
func (s *Store) Add(e *txcommon.Explanation) (Entry, error) {
	entry := Entry{
		ID:          uuid.NewString(),
		Hash:        e.Hash,
		AnalyzedAt:  s.now().UTC(),
		Explanation: e,
	}
	existing, err := s.List()
	if err != nil {
		return Entry{}, err
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return Entry{}, fmt.Errorf("encoding history entry: %w", err)
	}

	batch := new(leveldb.Batch)
	batch.Put(entryKey(entry.Hash), data)
	kept := 1
	for _, old := range existing {
		if strings.EqualFold(old.Hash, entry.Hash) {
			continue
		}
		if kept >= MaxEntries {
			batch.Delete(entryKey(old.Hash))
			continue
		}
		kept++
	}
	if err := s.db.Write(batch, nil); err != nil {
		return Entry{}, fmt.Errorf("writing history: %w", err)
	}
	return entry, nil
}

func (s *Store) Clear() error {
	iter := s.db.NewIterator(util.BytesPrefix([]byte(entryPrefix)), nil)
	batch := new(leveldb.Batch)
	for iter.Next() {
		batch.Delete(append([]byte{}, iter.Key()...))
	}
	iter.Release()
	if err := iter.Error(); err != nil {
		return fmt.Errorf("reading history: %w", err)
	}
	if err := s.db.Write(batch, nil); err != nil {
		return fmt.Errorf("clearing history: %w", err)
	}
	return nil
}

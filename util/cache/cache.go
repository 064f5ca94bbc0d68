package cache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// Cache is a small string key/value store persisted as one JSON file. Keys
// are case-insensitive. It holds user preferences and immutable chain data
// such as block timestamps.
type Cache struct {
	path string
	mu   sync.Mutex
	data *simpleCache
}

type simpleCache struct {
	Data map[string]string `json:"Data"`
}

func New(path string) *Cache {
	return &Cache{path: path}
}

func (c *Cache) persist() error {
	jsonData, err := json.MarshalIndent(c.data, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(c.path, jsonData, 0o644)
}

func (c *Cache) load() *simpleCache {
	if c.data != nil {
		return c.data
	}
	c.data = &simpleCache{
		Data: map[string]string{},
	}
	content, err := os.ReadFile(c.path)
	if err != nil {
		// a missing or unreadable cache starts empty
		return c.data
	}
	loaded := &simpleCache{}
	if err := json.Unmarshal(content, loaded); err != nil || loaded.Data == nil {
		return c.data
	}
	c.data = loaded
	return c.data
}

func (c *Cache) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	value, found := c.load().Data[strings.ToLower(key)]
	return value, found
}

func (c *Cache) Set(key, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.load().Data[strings.ToLower(key)] = value
	return c.persist()
}

// Keys returns the sorted keys starting with prefix.
func (c *Cache) Keys(prefix string) []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	prefix = strings.ToLower(prefix)
	keys := []string{}
	for k := range c.load().Data {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// Delete removes keys with a single write. Missing keys are ignored.
func (c *Cache) Delete(keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	data := c.load().Data
	removed := false
	for _, k := range keys {
		k = strings.ToLower(k)
		if _, found := data[k]; found {
			delete(data, k)
			removed = true
		}
	}
	if !removed {
		return nil
	}
	return c.persist()
}

func (c *Cache) GetBool(key string) (bool, bool) {
	value, found := c.Get(key)
	if !found {
		return false, false
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, false
	}
	return b, true
}

func (c *Cache) SetBool(key string, value bool) error {
	return c.Set(key, strconv.FormatBool(value))
}

func (c *Cache) GetUint64(key string) (uint64, bool) {
	value, found := c.Get(key)
	if !found {
		return 0, false
	}
	n, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (c *Cache) SetUint64(key string, value uint64) error {
	return c.Set(key, strconv.FormatUint(value, 10))
}

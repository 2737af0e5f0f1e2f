package storage

import (
	"sort"
	"sync"
)

// MemTable is the in-memory index from key to its most recent value. It is
// never persisted itself; the write-ahead log is the durable form and the
// table is rebuilt from it on startup.
type MemTable struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemTable creates a new empty MemTable
func NewMemTable() *MemTable {
	return &MemTable{data: make(map[string]string)}
}

// Set stores a value for the given key, overwriting any previous value.
func (m *MemTable) Set(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data[key] = value
}

// Get retrieves the value for a key. ok is false when the key was never
// set; an absent key is not an error and is never reported via a sentinel
// value.
func (m *MemTable) Get(key string) (value string, ok bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok = m.data[key]
	return value, ok
}

// Len returns the number of keys in the table
func (m *MemTable) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.data)
}

// Keys returns all keys in sorted order
func (m *MemTable) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

package store

import (
	"slices"
	"strings"
	"sync"

	"github.com/heysubinoy/notedb/pkg/kv"
)

// MemStore is an in-memory implementation of the kv.Store interface.
// It uses a map protected by a RWMutex; ordered views are produced by
// sorting the keys on demand.
type MemStore struct {
	mu   sync.RWMutex
	data map[string]string
}

// Compile-time check to ensure MemStore implements kv.Store.
var _ kv.Store = (*MemStore)(nil)

// NewMemStore creates and returns a new MemStore instance.
func NewMemStore() *MemStore {
	return &MemStore{
		data: make(map[string]string),
	}
}

// Insert stores a key-value pair, replacing any previous value.
func (s *MemStore) Insert(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = value
}

// Update replaces the value of an existing key.
func (s *MemStore) Update(key, value string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data[key]; !ok {
		return false
	}
	s.data[key] = value
	return true
}

// Remove deletes a key from the store.
func (s *MemStore) Remove(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data[key]; !ok {
		return false
	}
	delete(s.data, key)
	return true
}

// Find does a linear scan over all keys and returns the entries whose key
// contains substr. An empty substr matches every key.
func (s *MemStore) Find(substr string) []kv.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var res []kv.Entry
	for _, k := range s.sortedKeys() {
		if strings.Contains(k, substr) {
			res = append(res, kv.Entry{Key: k, Value: s.data[k]})
		}
	}
	return res
}

// List returns all entries sorted by key.
func (s *MemStore) List() []kv.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]kv.Entry, 0, len(s.data))
	for _, k := range s.sortedKeys() {
		res = append(res, kv.Entry{Key: k, Value: s.data[k]})
	}
	return res
}

// Len returns the number of keys.
func (s *MemStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.data)
}

// must be called with s.mu held
func (s *MemStore) sortedKeys() []string {
	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

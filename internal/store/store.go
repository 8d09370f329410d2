// Package store keeps the client's durable key-value state: the API base URL
// and the session fields, one string value per key.
package store

import (
	"sync"
)

// Store is a string-keyed, string-valued durable map.
type Store interface {
	// Get returns the value for key and whether it was present.
	Get(key string) (string, bool)
	// Set stores a single value.
	Set(key, value string) error
	// Update stores every entry of values in one commit.
	Update(values map[string]string) error
	// Delete removes keys. Missing keys are ignored.
	Delete(keys ...string) error
}

// MemStore is a Store that lives only in memory.
type MemStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{values: map[string]string{}}
}

func (m *MemStore) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok
}

func (m *MemStore) Set(key, value string) error {
	return m.Update(map[string]string{key: value})
}

func (m *MemStore) Update(values map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k, v := range values {
		m.values[k] = v
	}
	return nil
}

func (m *MemStore) Delete(keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.values, k)
	}
	return nil
}

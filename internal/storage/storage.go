// Package storage persists client state as whole JSON documents under
// fixed keys. Every save replaces the previous value; there are no partial
// updates and no cross-writer locking, so the last save wins.
package storage

import (
	"context"
	"sync"
)

// Fixed keys of the persisted client state.
const (
	KeyUser         = "wellnessConnectUser"
	KeyFavorites    = "favoriteDoctors"
	KeyAppointments = "appointments"
)

// Storage is a string key/value store.
type Storage interface {
	// Get returns the value at key; ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// MemoryStorage keeps values in process memory.
type MemoryStorage struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStorage creates an empty in-memory storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string]string)}
}

func (m *MemoryStorage) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryStorage) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MemoryStorage) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

// namespaced prefixes every key with a client id.
type namespaced struct {
	inner  Storage
	prefix string
}

// Namespace scopes s to one client: key k is stored as "clientID:k".
func Namespace(s Storage, clientID string) Storage {
	return &namespaced{inner: s, prefix: clientID + ":"}
}

func (n *namespaced) Get(ctx context.Context, key string) (string, bool, error) {
	return n.inner.Get(ctx, n.prefix+key)
}

func (n *namespaced) Set(ctx context.Context, key, value string) error {
	return n.inner.Set(ctx, n.prefix+key, value)
}

func (n *namespaced) Delete(ctx context.Context, key string) error {
	return n.inner.Delete(ctx, n.prefix+key)
}

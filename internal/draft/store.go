// Package draft provides the key/value port used to cache card drafts between
// editing sessions.
package draft

import (
	"context"
	"errors"
	"sync"
)

// ErrNotFound is returned by Get when no draft is stored under the key.
var ErrNotFound = errors.New("draft not found")

// DefaultKey is the key used when a session is not scoped to a user.
const DefaultKey = "cardData"

// UserKey returns the draft key of the given user.
func UserKey(uid string) string {
	return DefaultKey + ":" + uid
}

// Store reads and writes opaque draft documents by key.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Memory is an in-process Store.
type Memory struct {
	mu    sync.RWMutex
	items map[string][]byte
}

var _ Store = (*Memory)(nil)

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{items: make(map[string][]byte)}
}

// Get returns a copy of the value stored under key.
func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.items[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

// Set stores a copy of value under key.
func (m *Memory) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items[key] = append([]byte(nil), value...)
	return nil
}

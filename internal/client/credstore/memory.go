package credstore

import (
	"context"
	"sync"
)

type MemoryStore struct {
	mu    sync.Mutex
	token string
	set   bool
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore returns an empty store, or one pre-loaded with token when
// it is non-empty.
func NewMemoryStore(token string) *MemoryStore {
	return &MemoryStore{token: token, set: token != ""}
}

func (m *MemoryStore) Read(context.Context) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, m.set, nil
}

func (m *MemoryStore) Write(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token, m.set = token, token != ""
	return nil
}

func (m *MemoryStore) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token, m.set = "", false
	return nil
}

package storage

import (
	"context"
	"sync"
)

// MemoryProvider keeps records in process memory. It backs tests and the
// "memory" backend; SetError makes every call fail, which is how tests
// simulate an unavailable medium.
type MemoryProvider struct {
	mu   sync.Mutex
	data map[string][]byte
	err  error
}

func NewMemoryProvider() *MemoryProvider {
	return &MemoryProvider{data: make(map[string][]byte)}
}

func (m *MemoryProvider) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, false, m.err
	}
	v, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (m *MemoryProvider) Put(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *MemoryProvider) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Raw returns the stored bytes for key without going through the store.
func (m *MemoryProvider) Raw(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok
}

func (m *MemoryProvider) Close() error {
	return nil
}

package store

import (
	"context"
	"slices"
	"sync"
)

// memoryMap is the in-memory implementation of [Map]. It is not durable and
// is used when no database is configured and in tests.
type memoryMap[T any] struct {
	mu      sync.RWMutex
	records map[string]T
}

// NewMemoryMap returns an empty in-memory [Map].
func NewMemoryMap[T any]() Map[T] {
	return &memoryMap[T]{
		records: make(map[string]T),
	}
}

func (m *memoryMap[T]) Insert(_ context.Context, key string, value T) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.records[key] = value
	return nil
}

func (m *memoryMap[T]) Get(_ context.Context, key string) (T, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.records[key]
	return value, ok, nil
}

func (m *memoryMap[T]) Remove(_ context.Context, key string) (T, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	value, ok := m.records[key]
	if ok {
		delete(m.records, key)
	}
	return value, ok, nil
}

func (m *memoryMap[T]) Values(_ context.Context) ([]T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.records))
	for k := range m.records {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	values := make([]T, 0, len(keys))
	for _, k := range keys {
		values = append(values, m.records[k])
	}
	return values, nil
}

func (m *memoryMap[T]) Len(_ context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.records), nil
}

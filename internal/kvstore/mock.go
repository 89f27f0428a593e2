package kvstore

import (
	"sort"
	"strings"
	"sync"
)

// MockStore is an in-memory Store for tests. It is safe for concurrent use.
type MockStore struct {
	mu   sync.Mutex
	data map[string]string

	// Spies for method calls. When set they replace the in-memory behaviour.
	GetFunc    func(key string) (string, error)
	SetFunc    func(key, value string) error
	RemoveFunc func(key string) error

	// Call records
	SetCalls []struct {
		Key   string
		Value string
	}
	RemoveCalls []string
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{data: make(map[string]string)}
}

// Reset clears all call records.
func (m *MockStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SetCalls = nil
	m.RemoveCalls = nil
}

func (m *MockStore) Get(key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetFunc != nil {
		return m.GetFunc(key)
	}
	v, ok := m.data[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (m *MockStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SetCalls = append(m.SetCalls, struct {
		Key   string
		Value string
	}{key, value})
	if m.SetFunc != nil {
		return m.SetFunc(key, value)
	}
	m.data[key] = value
	return nil
}

func (m *MockStore) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RemoveCalls = append(m.RemoveCalls, key)
	if m.RemoveFunc != nil {
		return m.RemoveFunc(key)
	}
	delete(m.data, key)
	return nil
}

func (m *MockStore) Keys(prefix string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var keys []string
	for k := range m.data {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

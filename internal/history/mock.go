package history

import "sync"

// MockStore is an in-memory Store for tests. It is safe for concurrent use.
type MockStore struct {
	mu      sync.Mutex
	records map[Sport][]Record

	// Spies for method calls
	AppendFunc func(rec Record) error

	// Call records
	AppendCalls []Record
	ClearCalls  []Sport
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{records: make(map[Sport][]Record)}
}

// Reset clears all call records.
func (m *MockStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AppendCalls = nil
	m.ClearCalls = nil
}

func (m *MockStore) Append(rec Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AppendCalls = append(m.AppendCalls, rec)
	if m.AppendFunc != nil {
		return m.AppendFunc(rec)
	}
	m.records[rec.Sport] = append(m.records[rec.Sport], rec)
	return nil
}

func (m *MockStore) List(sport Sport) ([]Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Record{}, m.records[sport]...), nil
}

func (m *MockStore) Clear(sport Sport) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ClearCalls = append(m.ClearCalls, sport)
	delete(m.records, sport)
	return nil
}

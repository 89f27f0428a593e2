package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                   sync.Mutex
	eventsRecorded       map[string]int
	matchesCompleted     map[string]int
	tournamentsCompleted map[string]int
	actionDurations      []float64
	liveMatches          int
	slackNotifSent       int
	slackNotifFailed     int
	startupTime          float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		eventsRecorded:       make(map[string]int),
		matchesCompleted:     make(map[string]int),
		tournamentsCompleted: make(map[string]int),
	}
}

func (m *Mock) IncEventsRecorded(sport, kind string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.eventsRecorded[sport+"/"+kind]++
}

func (m *Mock) IncMatchesCompleted(sport string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.matchesCompleted[sport]++
}

func (m *Mock) IncTournamentsCompleted(sport string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tournamentsCompleted[sport]++
}

func (m *Mock) ObserveActionDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.actionDurations = append(m.actionDurations, duration)
}

func (m *Mock) SetLiveMatches(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.liveMatches = n
}

func (m *Mock) IncSlackNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifSent++
}

func (m *Mock) IncSlackNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifFailed++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// EventsRecorded returns how many events of kind were recorded for sport.
func (m *Mock) EventsRecorded(sport, kind string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.eventsRecorded[sport+"/"+kind]
}

// MatchesCompleted returns the number of IncMatchesCompleted calls for sport.
func (m *Mock) MatchesCompleted(sport string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.matchesCompleted[sport]
}

// TournamentsCompleted returns the number of IncTournamentsCompleted calls for sport.
func (m *Mock) TournamentsCompleted(sport string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tournamentsCompleted[sport]
}

// ActionsObserved returns the number of recorded action durations.
func (m *Mock) ActionsObserved() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.actionDurations)
}

// LiveMatches returns the last value passed to SetLiveMatches.
func (m *Mock) LiveMatches() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.liveMatches
}

// SlackNotifSent returns the number of times IncSlackNotifSent was called.
func (m *Mock) SlackNotifSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifSent
}

// SlackNotifFailed returns the number of times IncSlackNotifFailed was called.
func (m *Mock) SlackNotifFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifFailed
}

// MockStore is an in-memory MetricsStore.
type MockStore struct {
	mu     sync.Mutex
	values map[string]int
}

// NewMockStore creates a new MockStore.
func NewMockStore() *MockStore {
	return &MockStore{values: make(map[string]int)}
}

func (m *MockStore) Increment(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key]++
}

func (m *MockStore) GetAll() (map[string]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]int, len(m.values))
	for k, v := range m.values {
		out[k] = v
	}
	return out, nil
}

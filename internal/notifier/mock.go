package notifier

import (
	"sync"

	"github.com/mauv0809/scoreline/internal/bracket"
	"github.com/mauv0809/scoreline/internal/history"
	"github.com/mauv0809/scoreline/internal/pubsub"
)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Spies for send functions
	SendMatchResultFunc   func(event pubsub.MatchCompleted, dryRun bool) error
	SendRoundFixturesFunc func(event pubsub.RoundAdvanced, dryRun bool) error
	SendChampionFunc      func(event pubsub.ChampionCrowned, dryRun bool) error

	// Spies for format functions
	FormatStandingsResponseFunc func(sport history.Sport, standings []history.TeamRecord) (any, error)
	FormatBracketResponseFunc   func(sport history.Sport, b *bracket.Bracket) (any, error)

	// Call records
	SendMatchResultCalls   []pubsub.MatchCompleted
	SendRoundFixturesCalls []pubsub.RoundAdvanced
	SendChampionCalls      []pubsub.ChampionCrowned
	DryRunCalls            []bool
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendMatchResultCalls = nil
	m.SendRoundFixturesCalls = nil
	m.SendChampionCalls = nil
	m.DryRunCalls = nil
}

func (m *Mock) SendMatchResult(event pubsub.MatchCompleted, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendMatchResultCalls = append(m.SendMatchResultCalls, event)
	m.DryRunCalls = append(m.DryRunCalls, dryRun)
	if m.SendMatchResultFunc != nil {
		return m.SendMatchResultFunc(event, dryRun)
	}
	return nil
}

func (m *Mock) SendRoundFixtures(event pubsub.RoundAdvanced, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendRoundFixturesCalls = append(m.SendRoundFixturesCalls, event)
	m.DryRunCalls = append(m.DryRunCalls, dryRun)
	if m.SendRoundFixturesFunc != nil {
		return m.SendRoundFixturesFunc(event, dryRun)
	}
	return nil
}

func (m *Mock) SendChampion(event pubsub.ChampionCrowned, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendChampionCalls = append(m.SendChampionCalls, event)
	m.DryRunCalls = append(m.DryRunCalls, dryRun)
	if m.SendChampionFunc != nil {
		return m.SendChampionFunc(event, dryRun)
	}
	return nil
}

func (m *Mock) FormatStandingsResponse(sport history.Sport, standings []history.TeamRecord) (any, error) {
	if m.FormatStandingsResponseFunc != nil {
		return m.FormatStandingsResponseFunc(sport, standings)
	}
	return map[string]any{"sport": sport, "standings": standings}, nil
}

func (m *Mock) FormatBracketResponse(sport history.Sport, b *bracket.Bracket) (any, error) {
	if m.FormatBracketResponseFunc != nil {
		return m.FormatBracketResponseFunc(sport, b)
	}
	return map[string]any{"sport": sport, "bracket": b}, nil
}

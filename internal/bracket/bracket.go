package bracket

import (
	"fmt"
	"strings"

	"github.com/mauv0809/scoreline/internal/rules"
)

// New creates a bracket and draws its first round.
func New(id string, teams []string, rng Shuffler) (Bracket, error) {
	fixtures, err := GenerateFixtures(teams, rng)
	if err != nil {
		return Bracket{}, err
	}
	names := make([]string, len(teams))
	for i, t := range teams {
		names[i] = strings.TrimSpace(t)
	}
	return Bracket{
		ID:       id,
		Round:    1,
		Fixtures: fixtures,
		Teams:    names,
	}, nil
}

// Name returns the display name of the current round.
func (b Bracket) Name() string {
	if b.Champion != "" {
		return "Champion"
	}
	return RoundName(b.Round, len(b.Teams))
}

// Fixture returns the fixture with the given ID.
func (b Bracket) Fixture(id string) (Fixture, bool) {
	i := b.indexOf(id)
	if i < 0 {
		return Fixture{}, false
	}
	return b.Fixtures[i], true
}

// RoundComplete reports whether every fixture of the current round has a winner.
func (b Bracket) RoundComplete() bool {
	for _, f := range b.Fixtures {
		if f.Status != FixtureCompleted {
			return false
		}
	}
	return true
}

// StartFixture marks a fixture as being played.
func StartFixture(b Bracket, fixtureID string) (Bracket, error) {
	i := b.indexOf(fixtureID)
	if i < 0 {
		return b, fmt.Errorf("%w: fixture %q not in round %d", rules.ErrValidation, fixtureID, b.Round)
	}
	if b.Fixtures[i].Status != FixtureUpcoming {
		return b, fmt.Errorf("%w: fixture is %s", rules.ErrIllegalTransition, b.Fixtures[i].Status)
	}
	b.Fixtures = cloneFixtures(b.Fixtures)
	b.Fixtures[i].Status = FixtureInProgress
	return b, nil
}

// RecordResult completes a fixture with its winner and score.
func RecordResult(b Bracket, fixtureID, winner string, scoreA, scoreB int) (Bracket, error) {
	if b.Champion != "" {
		return b, fmt.Errorf("%w: tournament already won by %s", rules.ErrIllegalTransition, b.Champion)
	}
	i := b.indexOf(fixtureID)
	if i < 0 {
		return b, fmt.Errorf("%w: fixture %q not in round %d", rules.ErrValidation, fixtureID, b.Round)
	}
	f := b.Fixtures[i]
	if f.Status == FixtureCompleted {
		return b, fmt.Errorf("%w: %s vs %s is already completed", rules.ErrIllegalTransition, f.TeamA, f.TeamB)
	}
	if winner != f.TeamA && winner != f.TeamB {
		return b, fmt.Errorf("%w: %q did not play in %s vs %s", rules.ErrValidation, winner, f.TeamA, f.TeamB)
	}
	if scoreA < 0 || scoreB < 0 {
		return b, fmt.Errorf("%w: scores cannot be negative", rules.ErrValidation)
	}
	f.Status = FixtureCompleted
	f.Winner = winner
	f.ScoreA, f.ScoreB = scoreA, scoreB
	f.Score = fmt.Sprintf("%d-%d", scoreA, scoreB)

	b.Fixtures = cloneFixtures(b.Fixtures)
	b.Fixtures[i] = f
	return b, nil
}

// Next closes the current round and either crowns the champion or draws the next round.
func Next(b Bracket, rng Shuffler) (Bracket, error) {
	if b.Champion != "" {
		return b, fmt.Errorf("%w: tournament already won by %s", rules.ErrIllegalTransition, b.Champion)
	}
	adv, err := AdvanceRound(b.Fixtures, nil)
	if err != nil {
		return b, err
	}
	if adv.Champion != "" {
		b.Champion = adv.Champion
		return b, nil
	}
	fixtures, err := GenerateFixtures(adv.Teams, rng)
	if err != nil {
		return b, err
	}
	b.Round++
	b.Teams = adv.Teams
	b.Fixtures = fixtures
	return b, nil
}

func (b Bracket) indexOf(fixtureID string) int {
	for i, f := range b.Fixtures {
		if f.ID == fixtureID {
			return i
		}
	}
	return -1
}

func cloneFixtures(in []Fixture) []Fixture {
	return append([]Fixture(nil), in...)
}

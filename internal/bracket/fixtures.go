package bracket

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/google/uuid"
	"github.com/mauv0809/scoreline/internal/rules"
)

// GenerateFixtures draws a round. With an odd number of teams one team, drawn
// uniformly, gets a bye; its fixture is created completed and comes last.
func GenerateFixtures(teams []string, rng Shuffler) ([]Fixture, error) {
	if len(teams) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 teams, got %d", rules.ErrInsufficientTeams, len(teams))
	}
	pool := make([]string, 0, len(teams))
	seen := make(map[string]bool, len(teams))
	for _, t := range teams {
		name := strings.TrimSpace(t)
		if name == "" {
			return nil, fmt.Errorf("%w: team names cannot be empty", rules.ErrValidation)
		}
		if name == Bye || seen[strings.ToLower(name)] {
			return nil, fmt.Errorf("%w: duplicate or reserved team name %q", rules.ErrValidation, name)
		}
		seen[strings.ToLower(name)] = true
		pool = append(pool, name)
	}

	var byeTeam string
	if len(pool)%2 == 1 {
		i := rng.IntN(len(pool))
		byeTeam = pool[i]
		pool = append(pool[:i], pool[i+1:]...)
	}
	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	fixtures := make([]Fixture, 0, len(pool)/2+1)
	for i := 0; i+1 < len(pool); i += 2 {
		fixtures = append(fixtures, Fixture{
			ID:     uuid.NewString(),
			TeamA:  pool[i],
			TeamB:  pool[i+1],
			Status: FixtureUpcoming,
		})
	}
	if byeTeam != "" {
		fixtures = append(fixtures, Fixture{
			ID:     uuid.NewString(),
			TeamA:  byeTeam,
			TeamB:  Bye,
			Status: FixtureCompleted,
			Winner: byeTeam,
		})
	}
	return fixtures, nil
}

// AdvanceRound closes a round. Winners are taken from results, keyed by fixture
// ID, falling back to the winner already recorded on the fixture. Byes advance
// automatically.
func AdvanceRound(fixtures []Fixture, results map[string]string) (Advance, error) {
	winners := make([]string, 0, len(fixtures))
	for _, f := range fixtures {
		if f.IsBye() {
			winners = append(winners, f.TeamA)
			continue
		}
		winner := results[f.ID]
		if winner == "" {
			winner = f.Winner
		}
		if winner == "" {
			return Advance{}, fmt.Errorf("%w: %s vs %s has no winner", rules.ErrIncompleteRound, f.TeamA, f.TeamB)
		}
		if winner != f.TeamA && winner != f.TeamB {
			return Advance{}, fmt.Errorf("%w: %q did not play in %s vs %s", rules.ErrValidation, winner, f.TeamA, f.TeamB)
		}
		winners = append(winners, winner)
	}
	if len(winners) == 1 {
		return Advance{Champion: winners[0]}, nil
	}
	return Advance{Teams: winners}, nil
}

// RoundName names a round by how many rounds are left to play.
func RoundName(round, remaining int) string {
	if remaining <= 1 {
		return "Champion"
	}
	switch bits.Len(uint(remaining - 1)) {
	case 1:
		return "Finals"
	case 2:
		return "Semi Finals"
	case 3:
		return "Quarter Finals"
	default:
		return fmt.Sprintf("Round %d", round)
	}
}

// RoundsToChampion returns the number of rounds needed to decide a bracket of n teams.
func RoundsToChampion(n int) int {
	if n <= 1 {
		return 0
	}
	return bits.Len(uint(n - 1))
}

// ValidateTeamCount checks a roster against the configured number of teams.
func ValidateTeamCount(expected int, teams []string) error {
	if expected < 2 {
		return fmt.Errorf("%w: a tournament needs at least 2 teams, configured %d", rules.ErrInvalidTeamCount, expected)
	}
	if len(teams) != expected {
		return fmt.Errorf("%w: configured %d teams but %d are set up", rules.ErrInvalidTeamCount, expected, len(teams))
	}
	return nil
}

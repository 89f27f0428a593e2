package roster

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/mauv0809/scoreline/internal/rules"
)

// similarityThreshold is the minimum normalized Levenshtein similarity for a fuzzy player match.
const similarityThreshold = 0.7

// ValidateTeam checks that a team has a key, a name and a full squad of distinct players.
func ValidateTeam(t Team) error {
	if strings.TrimSpace(t.Key) == "" || strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("%w: team key and name are required", rules.ErrValidation)
	}
	if len(t.Players) != SquadSize {
		return fmt.Errorf("%w: %s needs %d players, got %d", rules.ErrValidation, t.Name, SquadSize, len(t.Players))
	}
	seen := make(map[string]bool, len(t.Players))
	for i, p := range t.Players {
		name := strings.ToLower(strings.TrimSpace(p))
		if name == "" {
			return fmt.Errorf("%w: %s player %d has no name", rules.ErrValidation, t.Name, i+1)
		}
		if seen[name] {
			return fmt.Errorf("%w: %s lists %q twice", rules.ErrValidation, t.Name, p)
		}
		seen[name] = true
	}
	return nil
}

// DisplayName returns the entered name for key, falling back to the key itself.
func (r Roster) DisplayName(key string) string {
	if name := r.Names[key]; name != "" {
		return name
	}
	return key
}

// Teams lists the roster ordered by team key.
func (r Roster) Teams() []Team {
	keys := make([]string, 0, len(r.Players))
	for k := range r.Players {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	teams := make([]Team, 0, len(keys))
	for _, k := range keys {
		teams = append(teams, Team{Key: k, Name: r.DisplayName(k), Players: r.Players[k]})
	}
	return teams
}

// TeamNames lists the display names ordered by team key.
func (r Roster) TeamNames() []string {
	teams := r.Teams()
	names := make([]string, len(teams))
	for i, t := range teams {
		names[i] = t.Name
	}
	return names
}

// PlayersOf returns the squad of the team displayed as name.
func (r Roster) PlayersOf(name string) []string {
	for k, players := range r.Players {
		if r.DisplayName(k) == name {
			return players
		}
	}
	return nil
}

// FindPlayer resolves a typed name against a squad. An exact, case-insensitive
// match wins; otherwise the most similar name above the threshold is returned.
func FindPlayer(players []string, query string) (string, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return "", false
	}
	best, bestScore := "", 0.0
	for _, p := range players {
		name := strings.ToLower(p)
		if name == q {
			return p, true
		}
		distance := fuzzy.LevenshteinDistance(q, name)
		maxLen := float64(max(len(q), len(name)))
		similarity := 1 - float64(distance)/maxLen
		if similarity > similarityThreshold && similarity > bestScore {
			best, bestScore = p, similarity
		}
	}
	if best == "" {
		// fall back to a subsequence match, e.g. "kohli" for "Virat Kohli"
		ranks := fuzzy.RankFindNormalizedFold(q, players)
		if len(ranks) == 0 {
			return "", false
		}
		sort.Sort(ranks)
		return ranks[0].Target, true
	}
	return best, true
}

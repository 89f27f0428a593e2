package roster

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/mauv0809/scoreline/internal/history"
	"github.com/mauv0809/scoreline/internal/kvstore"
	"github.com/mauv0809/scoreline/internal/rules"
)

type keys struct {
	players string
	names   string
	setup   string
}

var sportKeys = map[history.Sport]keys{
	history.SportCricket:  {players: "teamPlayers", names: "teamNamesInput", setup: "tournamentSetup"},
	history.SportFootball: {players: "footballTeamPlayers", names: "footballTeamNames", setup: "footballTournamentSetup"},
}

type store struct {
	kv kvstore.Store
	mu sync.Mutex
}

// New creates a new roster Store on kv.
func New(kv kvstore.Store) Store {
	return &store{kv: kv}
}

func keysFor(sport history.Sport) (keys, error) {
	k, ok := sportKeys[sport]
	if !ok {
		return keys{}, fmt.Errorf("%w: unknown sport %q", rules.ErrValidation, sport)
	}
	return k, nil
}

func (s *store) Get(sport history.Sport) (Roster, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	k, err := keysFor(sport)
	if err != nil {
		return Roster{}, err
	}
	return s.load(k)
}

// SaveTeam validates and stores one team, replacing any team with the same key.
func (s *store) SaveTeam(sport history.Sport, team Team) error {
	if err := ValidateTeam(team); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	k, err := keysFor(sport)
	if err != nil {
		return err
	}
	r, err := s.load(k)
	if err != nil {
		return err
	}
	players := make([]string, len(team.Players))
	for i, p := range team.Players {
		players[i] = strings.TrimSpace(p)
	}
	r.Players[team.Key] = players
	r.Names[team.Key] = strings.TrimSpace(team.Name)
	if err := kvstore.SetJSON(s.kv, k.players, r.Players); err != nil {
		return err
	}
	return kvstore.SetJSON(s.kv, k.names, r.Names)
}

func (s *store) GetSetup(sport history.Sport) (Setup, error) {
	k, err := keysFor(sport)
	if err != nil {
		return Setup{}, err
	}
	var setup Setup
	if err := kvstore.GetJSON(s.kv, k.setup, &setup); err != nil {
		return Setup{}, err
	}
	return setup, nil
}

func (s *store) SaveSetup(sport history.Sport, setup Setup) error {
	k, err := keysFor(sport)
	if err != nil {
		return err
	}
	return kvstore.SetJSON(s.kv, k.setup, setup)
}

func (s *store) load(k keys) (Roster, error) {
	r := Roster{Players: map[string][]string{}, Names: map[string]string{}}
	if err := kvstore.GetJSON(s.kv, k.players, &r.Players); err != nil && !errors.Is(err, kvstore.ErrNotFound) {
		return Roster{}, err
	}
	if err := kvstore.GetJSON(s.kv, k.names, &r.Names); err != nil && !errors.Is(err, kvstore.ErrNotFound) {
		return Roster{}, err
	}
	return r, nil
}

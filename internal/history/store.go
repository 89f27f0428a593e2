package history

import (
	"errors"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/scoreline/internal/kvstore"
	"github.com/mauv0809/scoreline/internal/rules"
)

const (
	cricketKey  = "matchHistory"
	footballKey = "footballMatchHistory"
)

type store struct {
	kv kvstore.Store
	mu sync.Mutex
}

// New creates a new history Store on kv.
func New(kv kvstore.Store) Store {
	return &store{kv: kv}
}

func keyFor(sport Sport) (string, error) {
	switch sport {
	case SportCricket:
		return cricketKey, nil
	case SportFootball:
		return footballKey, nil
	}
	return "", fmt.Errorf("%w: unknown sport %q", rules.ErrValidation, sport)
}

// Append adds rec to the end of its sport's history.
func (s *store) Append(rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key, err := keyFor(rec.Sport)
	if err != nil {
		return err
	}
	records, err := s.load(key)
	if err != nil {
		return err
	}
	records = append(records, rec)
	if err := kvstore.SetJSON(s.kv, key, records); err != nil {
		return err
	}
	log.Debug("Appended match to history", "sport", rec.Sport, "match", rec.MatchID, "total", len(records))
	return nil
}

// List returns the history oldest first.
func (s *store) List(sport Sport) ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key, err := keyFor(sport)
	if err != nil {
		return nil, err
	}
	return s.load(key)
}

// Clear drops the whole history of sport.
func (s *store) Clear(sport Sport) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key, err := keyFor(sport)
	if err != nil {
		return err
	}
	log.Info("Clearing match history", "sport", sport)
	return s.kv.Remove(key)
}

func (s *store) load(key string) ([]Record, error) {
	var records []Record
	err := kvstore.GetJSON(s.kv, key, &records)
	if errors.Is(err, kvstore.ErrNotFound) {
		return []Record{}, nil
	}
	return records, err
}

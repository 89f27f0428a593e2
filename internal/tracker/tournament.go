package tracker

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mauv0809/scoreline/internal/bracket"
	"github.com/mauv0809/scoreline/internal/history"
	"github.com/mauv0809/scoreline/internal/metrics"
	"github.com/mauv0809/scoreline/internal/pubsub"
	"github.com/mauv0809/scoreline/internal/rules"
)

func bracketKey(sport history.Sport, id string) string {
	return bracketPrefix(sport) + id
}

func validSport(sport history.Sport) error {
	if !sport.Valid() {
		return fmt.Errorf("%w: unknown sport %q", rules.ErrValidation, sport)
	}
	return nil
}

// CreateTournament draws the first round of a knockout. Without explicit teams
// the sport's roster is entered, checked against the configured team count.
func (t *Tracker) CreateTournament(sport history.Sport, req CreateTournamentRequest, dryRun bool) (bracket.Bracket, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	defer t.observe(time.Now())
	if err := validSport(sport); err != nil {
		return bracket.Bracket{}, err
	}
	return t.createTournament(sport, req.Teams, dryRun)
}

func (t *Tracker) createTournament(sport history.Sport, teams []string, dryRun bool) (bracket.Bracket, error) {
	if len(teams) == 0 {
		r, err := t.rosters.Get(sport)
		if err != nil {
			return bracket.Bracket{}, err
		}
		teams = r.TeamNames()
		setup, err := t.setup(sport)
		if err != nil {
			return bracket.Bracket{}, err
		}
		if setup.Teams > 0 {
			if err := bracket.ValidateTeamCount(setup.Teams, teams); err != nil {
				return bracket.Bracket{}, err
			}
		}
	}

	b, err := bracket.New(uuid.New().String(), teams, t.rng)
	if err != nil {
		return bracket.Bracket{}, err
	}
	if dryRun {
		log.Info("[Dry Run] Would create tournament", "sport", sport, "teams", len(b.Teams), "round", b.Name())
		return b, nil
	}
	if err := t.saveBracket(sport, b); err != nil {
		return bracket.Bracket{}, err
	}
	log.Info("Created tournament", "sport", sport, "bracketID", b.ID, "teams", len(b.Teams), "fixtures", len(b.Fixtures))
	t.publish(pubsub.EventRoundAdvanced, roundAdvanced(sport, b))
	t.broadcast(sport, KindBracket, b.ID, b)
	return b, nil
}

// RecordTournamentResult completes a fixture played outside the tracker.
func (t *Tracker) RecordTournamentResult(sport history.Sport, bracketID, fixtureID, winner string, scoreA, scoreB int, dryRun bool) (bracket.Bracket, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	defer t.observe(time.Now())
	if err := validSport(sport); err != nil {
		return bracket.Bracket{}, err
	}
	b, err := t.loadBracket(sport, bracketID)
	if err != nil {
		return b, err
	}
	b, err = bracket.RecordResult(b, fixtureID, winner, scoreA, scoreB)
	if err != nil {
		return b, err
	}
	if dryRun {
		log.Info("[Dry Run] Would record fixture result", "bracketID", bracketID, "fixtureID", fixtureID, "winner", winner)
		return b, nil
	}
	if err := t.saveBracket(sport, b); err != nil {
		return b, err
	}
	t.broadcast(sport, KindBracket, b.ID, b)
	return b, nil
}

// recordFixture stores the result of a tracked knockout match. It is called
// with t.mu held and only logs failures.
func (t *Tracker) recordFixture(sport history.Sport, bracketID, fixtureID, winner string, scoreA, scoreB int) {
	b, err := t.loadBracket(sport, bracketID)
	if err != nil {
		log.Error("Failed to load bracket for result", "error", err, "bracketID", bracketID)
		return
	}
	b, err = bracket.RecordResult(b, fixtureID, winner, scoreA, scoreB)
	if err != nil {
		log.Error("Failed to record fixture result", "error", err, "bracketID", bracketID, "fixtureID", fixtureID)
		return
	}
	if err := t.saveBracket(sport, b); err != nil {
		log.Error("Failed to save bracket", "error", err, "bracketID", bracketID)
		return
	}
	log.Info("Recorded fixture result", "bracketID", bracketID, "fixtureID", fixtureID, "winner", winner, "roundComplete", b.RoundComplete())
	t.broadcast(sport, KindBracket, b.ID, b)
}

// AdvanceTournament closes the current round, crowning the champion or
// drawing the next round.
func (t *Tracker) AdvanceTournament(sport history.Sport, bracketID string, dryRun bool) (bracket.Bracket, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	defer t.observe(time.Now())
	if err := validSport(sport); err != nil {
		return bracket.Bracket{}, err
	}
	b, err := t.loadBracket(sport, bracketID)
	if err != nil {
		return b, err
	}
	b, err = bracket.Next(b, t.rng)
	if err != nil {
		return b, err
	}
	if dryRun {
		log.Info("[Dry Run] Would advance tournament", "bracketID", bracketID, "round", b.Name())
		return b, nil
	}
	if err := t.saveBracket(sport, b); err != nil {
		return b, err
	}
	t.broadcast(sport, KindBracket, b.ID, b)

	if b.Champion != "" {
		log.Info("Tournament won", "sport", sport, "bracketID", b.ID, "champion", b.Champion, "rounds", b.Round)
		t.counters.Increment(metrics.KeyTournamentsCompleted)
		t.metrics.IncTournamentsCompleted(string(sport))
		t.publish(pubsub.EventChampionCrowned, pubsub.ChampionCrowned{
			Sport:     string(sport),
			BracketID: b.ID,
			Champion:  b.Champion,
			Rounds:    b.Round,
		})
		return b, nil
	}
	log.Info("Tournament advanced", "sport", sport, "bracketID", b.ID, "round", b.Name())
	t.publish(pubsub.EventRoundAdvanced, roundAdvanced(sport, b))
	return b, nil
}

// RestartTournament discards a bracket and draws a new one from the roster.
func (t *Tracker) RestartTournament(sport history.Sport, bracketID string, dryRun bool) (bracket.Bracket, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	defer t.observe(time.Now())
	if err := validSport(sport); err != nil {
		return bracket.Bracket{}, err
	}
	if _, err := t.loadBracket(sport, bracketID); err != nil {
		return bracket.Bracket{}, err
	}
	b, err := t.createTournament(sport, nil, dryRun)
	if err != nil || dryRun {
		return b, err
	}
	if err := t.kv.Remove(bracketKey(sport, bracketID)); err != nil {
		return b, fmt.Errorf("failed to remove bracket %s: %w", bracketID, err)
	}
	log.Info("Restarted tournament", "sport", sport, "oldBracketID", bracketID, "bracketID", b.ID)
	return b, nil
}

// Tournament returns a stored bracket.
func (t *Tracker) Tournament(sport history.Sport, bracketID string) (bracket.Bracket, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := validSport(sport); err != nil {
		return bracket.Bracket{}, err
	}
	return t.loadBracket(sport, bracketID)
}

// Tournaments lists the stored brackets of sport in key order.
func (t *Tracker) Tournaments(sport history.Sport) ([]bracket.Bracket, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := validSport(sport); err != nil {
		return nil, err
	}
	keys, err := t.kv.Keys(bracketPrefix(sport))
	if err != nil {
		return nil, err
	}
	out := make([]bracket.Bracket, 0, len(keys))
	for _, key := range keys {
		var b bracket.Bracket
		if err := t.load(key, &b); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

// ActiveTournament returns the first bracket that has no champion yet.
func (t *Tracker) ActiveTournament(sport history.Sport) (bracket.Bracket, error) {
	all, err := t.Tournaments(sport)
	if err != nil {
		return bracket.Bracket{}, err
	}
	for _, b := range all {
		if b.Champion == "" {
			return b, nil
		}
	}
	return bracket.Bracket{}, fmt.Errorf("%w: no %s tournament in progress", ErrNotFound, sport)
}

func (t *Tracker) loadBracket(sport history.Sport, id string) (bracket.Bracket, error) {
	var b bracket.Bracket
	err := t.load(bracketKey(sport, id), &b)
	return b, err
}

func (t *Tracker) saveBracket(sport history.Sport, b bracket.Bracket) error {
	return t.save(bracketKey(sport, b.ID), b)
}

// IsNotFound reports whether err means a missing snapshot.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func roundAdvanced(sport history.Sport, b bracket.Bracket) pubsub.RoundAdvanced {
	lines := make([]string, len(b.Fixtures))
	for i, f := range b.Fixtures {
		if f.IsBye() {
			lines[i] = fmt.Sprintf("%s (bye)", f.TeamA)
			continue
		}
		lines[i] = fmt.Sprintf("%s vs %s", f.TeamA, f.TeamB)
	}
	return pubsub.RoundAdvanced{
		Sport:     string(sport),
		BracketID: b.ID,
		Round:     b.Round,
		RoundName: b.Name(),
		Fixtures:  lines,
	}
}

package tracker

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/scoreline/internal/history"
	"github.com/mauv0809/scoreline/internal/roster"
	"github.com/mauv0809/scoreline/internal/rules"
)

// History lists the finalized matches of sport, oldest first.
func (t *Tracker) History(sport history.Sport) ([]history.Record, error) {
	return t.history.List(sport)
}

// Summary aggregates the history of sport into a standings table and the
// durable completion counters.
func (t *Tracker) Summary(sport history.Sport) (Summary, error) {
	records, err := t.history.List(sport)
	if err != nil {
		return Summary{}, err
	}
	totals, err := t.counters.GetAll()
	if err != nil {
		return Summary{}, err
	}
	return Summary{Standings: history.Summarize(records), Totals: totals}, nil
}

// ClearHistory removes every finalized match of sport.
func (t *Tracker) ClearHistory(sport history.Sport, dryRun bool) error {
	if dryRun {
		log.Info("[Dry Run] Would clear match history", "sport", sport)
		return nil
	}
	if err := t.history.Clear(sport); err != nil {
		return err
	}
	log.Info("Cleared match history", "sport", sport)
	return nil
}

// Roster returns the teams entered for sport.
func (t *Tracker) Roster(sport history.Sport) ([]roster.Team, error) {
	r, err := t.rosters.Get(sport)
	if err != nil {
		return nil, err
	}
	return r.Teams(), nil
}

// SaveTeam validates and stores a team of sport.
func (t *Tracker) SaveTeam(sport history.Sport, team roster.Team, dryRun bool) error {
	if dryRun {
		if err := roster.ValidateTeam(team); err != nil {
			return err
		}
		log.Info("[Dry Run] Would save team", "sport", sport, "team", team.Name)
		return nil
	}
	return t.rosters.SaveTeam(sport, team)
}

// Setup returns the tournament setup of sport; zero values when none is stored.
func (t *Tracker) Setup(sport history.Sport) (roster.Setup, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := validSport(sport); err != nil {
		return roster.Setup{}, err
	}
	return t.setup(sport)
}

// SaveSetup stores the tournament setup of sport.
func (t *Tracker) SaveSetup(sport history.Sport, setup roster.Setup, dryRun bool) error {
	if err := validSport(sport); err != nil {
		return err
	}
	if setup.Overs < 0 || setup.MatchDuration < 0 {
		return fmt.Errorf("%w: overs and match duration cannot be negative", rules.ErrValidation)
	}
	if setup.Teams != 0 && setup.Teams < 2 {
		return fmt.Errorf("%w: a tournament needs at least 2 teams, got %d", rules.ErrValidation, setup.Teams)
	}
	if dryRun {
		log.Info("[Dry Run] Would save setup", "sport", sport, "teams", setup.Teams)
		return nil
	}
	return t.rosters.SaveSetup(sport, setup)
}

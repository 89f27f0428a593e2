package tracker

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mauv0809/scoreline/internal/bracket"
	"github.com/mauv0809/scoreline/internal/cricket"
	"github.com/mauv0809/scoreline/internal/history"
	"github.com/mauv0809/scoreline/internal/kvstore"
	"github.com/mauv0809/scoreline/internal/metrics"
	"github.com/mauv0809/scoreline/internal/pubsub"
	"github.com/mauv0809/scoreline/internal/roster"
	"github.com/mauv0809/scoreline/internal/rules"
)

func cricketKey(id string) string { return cricketMatchPrefix + id }

// StartCricket creates a match awaiting the toss. A match started for a
// knockout fixture takes its teams from the fixture.
func (t *Tracker) StartCricket(req StartCricketRequest, dryRun bool) (CricketSnapshot, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	defer t.observe(time.Now())

	if req.OversLimit == 0 {
		setup, err := t.setup(history.SportCricket)
		if err != nil {
			return CricketSnapshot{}, err
		}
		req.OversLimit = setup.Overs
	}
	var b *bracket.Bracket
	if req.BracketID != "" {
		started, f, err := t.startFixture(history.SportCricket, req.BracketID, req.FixtureID)
		if err != nil {
			return CricketSnapshot{}, err
		}
		b = &started
		req.TeamA, req.TeamB = f.TeamA, f.TeamB
	}

	m, err := cricket.NewMatch(cricket.Config{
		ID:         uuid.New().String(),
		TeamA:      req.TeamA,
		TeamB:      req.TeamB,
		OversLimit: req.OversLimit,
	})
	if err != nil {
		return CricketSnapshot{}, err
	}
	snap := CricketSnapshot{Match: m, BracketID: req.BracketID, FixtureID: req.FixtureID}
	if dryRun {
		log.Info("[Dry Run] Would start cricket match", "teamA", m.TeamA, "teamB", m.TeamB, "overs", m.OversLimit)
		return snap, nil
	}
	if b != nil {
		if err := t.saveBracket(history.SportCricket, *b); err != nil {
			return CricketSnapshot{}, err
		}
	}
	if err := t.save(cricketKey(m.ID), snap); err != nil {
		return CricketSnapshot{}, err
	}
	log.Info("Started cricket match", "matchID", m.ID, "teamA", m.TeamA, "teamB", m.TeamB, "overs", m.OversLimit)
	t.broadcast(history.SportCricket, KindMatch, m.ID, snap)
	return snap, nil
}

// Toss records the toss winner. An empty team flips the coin.
func (t *Tracker) Toss(id, team string, dryRun bool) (CricketSnapshot, error) {
	return t.mutateCricket(id, "toss", dryRun, func(m cricket.Match) (cricket.Match, error) {
		if team == "" {
			return cricket.Toss(m, t.rng)
		}
		return cricket.SetTossWinner(m, team)
	})
}

// Decide applies the toss winner's choice to bat or bowl.
func (t *Tracker) Decide(id string, decision cricket.Decision, dryRun bool) (CricketSnapshot, error) {
	return t.mutateCricket(id, "decision", dryRun, func(m cricket.Match) (cricket.Match, error) {
		return cricket.Decide(m, decision)
	})
}

// RecordBall applies one delivery.
func (t *Tracker) RecordBall(id string, d cricket.Delivery, dryRun bool) (CricketSnapshot, error) {
	kind := string(cricket.KindRun)
	switch {
	case d.Wicket:
		kind = string(cricket.KindWicket)
	case d.Extra != cricket.ExtraNone:
		kind = string(cricket.KindExtra)
	}
	return t.mutateCricket(id, kind, dryRun, func(m cricket.Match) (cricket.Match, error) {
		return cricket.RecordBall(m, d)
	})
}

// UndoBall reverts the last delivery of the innings in play.
func (t *Tracker) UndoBall(id string, dryRun bool) (CricketSnapshot, error) {
	return t.mutateCricket(id, "undo", dryRun, cricket.UndoLastBall)
}

// CricketMatch returns the stored snapshot of a match.
func (t *Tracker) CricketMatch(id string) (CricketSnapshot, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	var snap CricketSnapshot
	err := t.load(cricketKey(id), &snap)
	return snap, err
}

func (t *Tracker) mutateCricket(id, kind string, dryRun bool, fn func(cricket.Match) (cricket.Match, error)) (CricketSnapshot, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	defer t.observe(time.Now())

	var snap CricketSnapshot
	if err := t.load(cricketKey(id), &snap); err != nil {
		return snap, err
	}
	wasCompleted := snap.Status == cricket.StatusCompleted
	m, err := fn(snap.Match)
	if err != nil {
		log.Debug("Cricket action rejected", "matchID", id, "action", kind, "error", err)
		return snap, err
	}
	snap.Match = m
	if m.Status == cricket.StatusCompleted {
		snap.Result = cricket.ResultText(m)
	}
	if dryRun {
		log.Info("[Dry Run] Would save cricket match", "matchID", id, "action", kind, "status", m.Status)
		return snap, nil
	}
	if err := t.save(cricketKey(id), snap); err != nil {
		return snap, err
	}
	t.metrics.IncEventsRecorded(string(history.SportCricket), kind)
	log.Debug("Cricket action applied", "matchID", id, "action", kind, "status", m.Status)
	t.broadcast(history.SportCricket, KindMatch, id, snap)

	if !wasCompleted && m.Status == cricket.StatusCompleted {
		t.completeCricket(snap)
	}
	return snap, nil
}

// completeCricket records a finished match and fans out its result. Failures
// are logged; the match snapshot is already saved.
func (t *Tracker) completeCricket(snap CricketSnapshot) {
	m := snap.Match
	summary := cricket.Summary(m)
	log.Info("Cricket match completed", "matchID", m.ID, "result", snap.Result)

	rec := history.Record{
		ID:        uuid.New().String(),
		Sport:     history.SportCricket,
		MatchID:   m.ID,
		TeamA:     m.TeamA,
		TeamB:     m.TeamB,
		Winner:    m.Winner,
		Result:    snap.Result,
		Summary:   summary,
		BracketID: snap.BracketID,
		FixtureID: snap.FixtureID,
		PlayedAt:  t.now(),
		Cricket:   &m,
	}
	if err := t.history.Append(rec); err != nil {
		log.Error("Failed to append match history", "error", err, "matchID", m.ID)
	}
	t.counters.Increment(metrics.KeyCricketMatchesCompleted)
	t.metrics.IncMatchesCompleted(string(history.SportCricket))

	t.publish(pubsub.EventMatchCompleted, pubsub.MatchCompleted{
		Sport:     string(history.SportCricket),
		MatchID:   m.ID,
		BracketID: snap.BracketID,
		FixtureID: snap.FixtureID,
		TeamA:     m.TeamA,
		TeamB:     m.TeamB,
		Winner:    m.Winner,
		Result:    snap.Result,
		Summary:   summary,
	})

	if snap.BracketID != "" {
		scoreA, scoreB := cricketScores(m)
		t.recordFixture(history.SportCricket, snap.BracketID, snap.FixtureID, m.Winner, scoreA, scoreB)
	}
}

// cricketScores returns the main-match totals of TeamA and TeamB.
func cricketScores(m cricket.Match) (int, int) {
	firstBatting := m.BowlingTeam
	if m.CurrentInning < 2 {
		firstBatting = m.BattingTeam
	}
	if firstBatting == m.TeamA {
		return m.Innings[0].Score, m.Innings[1].Score
	}
	return m.Innings[1].Score, m.Innings[0].Score
}

func (t *Tracker) setup(sport history.Sport) (roster.Setup, error) {
	s, err := t.rosters.GetSetup(sport)
	if errors.Is(err, kvstore.ErrNotFound) {
		return roster.Setup{}, nil
	}
	if err != nil {
		return roster.Setup{}, fmt.Errorf("failed to load %s setup: %w", sport, err)
	}
	return s, nil
}

// startFixture marks a knockout fixture as in progress without saving the bracket.
func (t *Tracker) startFixture(sport history.Sport, bracketID, fixtureID string) (bracket.Bracket, bracket.Fixture, error) {
	b, err := t.loadBracket(sport, bracketID)
	if err != nil {
		return b, bracket.Fixture{}, err
	}
	f, ok := b.Fixture(fixtureID)
	if !ok {
		return b, f, fmt.Errorf("%w: fixture %q not in %s", rules.ErrValidation, fixtureID, b.Name())
	}
	if f.IsBye() {
		return b, f, fmt.Errorf("%w: %s has a bye", rules.ErrIllegalTransition, f.TeamA)
	}
	b, err = bracket.StartFixture(b, fixtureID)
	return b, f, err
}

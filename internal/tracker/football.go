package tracker

import (
	"fmt"
	"sort"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mauv0809/scoreline/internal/bracket"
	"github.com/mauv0809/scoreline/internal/football"
	"github.com/mauv0809/scoreline/internal/history"
	"github.com/mauv0809/scoreline/internal/metrics"
	"github.com/mauv0809/scoreline/internal/pubsub"
	"github.com/mauv0809/scoreline/internal/roster"
	"github.com/mauv0809/scoreline/internal/rules"
)

func footballKey(id string) string { return footballMatchPrefix + id }

// StartFootball kicks off a match. Knockout matches cannot end in a draw.
func (t *Tracker) StartFootball(req StartFootballRequest, dryRun bool) (FootballSnapshot, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	defer t.observe(time.Now())

	if req.DurationSeconds == 0 {
		setup, err := t.setup(history.SportFootball)
		if err != nil {
			return FootballSnapshot{}, err
		}
		req.DurationSeconds = setup.MatchDuration
	}
	var b *bracket.Bracket
	if req.BracketID != "" {
		started, f, err := t.startFixture(history.SportFootball, req.BracketID, req.FixtureID)
		if err != nil {
			return FootballSnapshot{}, err
		}
		b = &started
		req.TeamA, req.TeamB = f.TeamA, f.TeamB
		req.AllowDraw = false
	}
	r, err := t.rosters.Get(history.SportFootball)
	if err != nil {
		return FootballSnapshot{}, err
	}

	m, err := football.NewMatch(football.Config{
		ID:              uuid.New().String(),
		TeamA:           req.TeamA,
		TeamB:           req.TeamB,
		PlayersA:        r.PlayersOf(req.TeamA),
		PlayersB:        r.PlayersOf(req.TeamB),
		DurationSeconds: req.DurationSeconds,
		AllowDraw:       req.AllowDraw,
	})
	if err != nil {
		return FootballSnapshot{}, err
	}
	snap := FootballSnapshot{Match: m, BracketID: req.BracketID, FixtureID: req.FixtureID}
	if dryRun {
		log.Info("[Dry Run] Would start football match", "teamA", m.TeamA, "teamB", m.TeamB, "duration", m.DurationSeconds)
		return snap, nil
	}
	if b != nil {
		if err := t.saveBracket(history.SportFootball, *b); err != nil {
			return FootballSnapshot{}, err
		}
	}
	if err := t.save(footballKey(m.ID), snap); err != nil {
		return FootballSnapshot{}, err
	}
	log.Info("Started football match", "matchID", m.ID, "teamA", m.TeamA, "teamB", m.TeamB, "duration", m.DurationSeconds)
	t.setRunning(m.ID, m.Phase.Running())
	t.broadcast(history.SportFootball, KindMatch, m.ID, snap)
	return snap, nil
}

// ConfirmAddedTime sets stoppage minutes for the half that just paused.
func (t *Tracker) ConfirmAddedTime(id string, minutes int, dryRun bool) (FootballSnapshot, error) {
	return t.mutateFootball(id, "added_time", dryRun, func(m football.Match) (football.Match, error) {
		return football.ConfirmAddedTime(m, minutes)
	})
}

// StartSecondHalf restarts the clock after the break.
func (t *Tracker) StartSecondHalf(id string, dryRun bool) (FootballSnapshot, error) {
	return t.mutateFootball(id, "second_half", dryRun, football.StartSecondHalf)
}

// RecordGoal credits a goal to side. The scorer is matched against the squad
// when one is known and kept as typed otherwise.
func (t *Tracker) RecordGoal(id string, side football.Side, scorer string, dryRun bool) (FootballSnapshot, error) {
	return t.mutateFootball(id, "goal", dryRun, func(m football.Match) (football.Match, error) {
		if name, ok := roster.FindPlayer(m.Players(side), scorer); ok {
			scorer = name
		}
		return football.RecordGoal(m, side, scorer)
	})
}

// UndoGoal removes the latest goal.
func (t *Tracker) UndoGoal(id string, dryRun bool) (FootballSnapshot, error) {
	return t.mutateFootball(id, "undo_goal", dryRun, football.UndoGoal)
}

// DrawDecision answers a level match: penalties, or a draw.
func (t *Tracker) DrawDecision(id string, penalties bool, dryRun bool) (FootballSnapshot, error) {
	return t.mutateFootball(id, "draw_decision", dryRun, func(m football.Match) (football.Match, error) {
		if penalties {
			return football.StartShootout(m)
		}
		return football.ConcludeDraw(m)
	})
}

// RecordPenalty applies one shootout attempt.
func (t *Tracker) RecordPenalty(id string, side football.Side, result football.PenaltyResult, dryRun bool) (FootballSnapshot, error) {
	return t.mutateFootball(id, "penalty", dryRun, func(m football.Match) (football.Match, error) {
		return football.RecordPenalty(m, side, result)
	})
}

// UndoPenalty removes the latest shootout attempt of a match still in play.
func (t *Tracker) UndoPenalty(id string, dryRun bool) (FootballSnapshot, error) {
	return t.mutateFootball(id, "undo_penalty", dryRun, football.UndoPenalty)
}

// FootballMatch returns the stored snapshot of a match.
func (t *Tracker) FootballMatch(id string) (FootballSnapshot, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	var snap FootballSnapshot
	err := t.load(footballKey(id), &snap)
	return snap, err
}

// TickRunning advances every running clock by one second.
func (t *Tracker) TickRunning() {
	t.mu.Lock()
	ids := make([]string, 0, len(t.running))
	for id := range t.running {
		ids = append(ids, id)
	}
	t.mu.Unlock()
	sort.Strings(ids)

	for _, id := range ids {
		if _, err := t.mutateFootball(id, "", false, func(m football.Match) (football.Match, error) {
			return football.Tick(m), nil
		}); err != nil {
			log.Error("Failed to tick match clock", "error", err, "matchID", id)
			t.mu.Lock()
			t.setRunning(id, false)
			t.mu.Unlock()
		}
	}
}

// Running lists the matches whose clock is running.
func (t *Tracker) Running() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	ids := make([]string, 0, len(t.running))
	for id := range t.running {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Resume registers the clocks of stored matches that were running when the
// process stopped.
func (t *Tracker) Resume() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	keys, err := t.kv.Keys(footballMatchPrefix)
	if err != nil {
		return fmt.Errorf("failed to list football matches: %w", err)
	}
	for _, key := range keys {
		var snap FootballSnapshot
		if err := t.load(key, &snap); err != nil {
			log.Warn("Skipping unreadable football match", "key", key, "error", err)
			continue
		}
		t.setRunning(snap.ID, snap.Phase.Running())
	}
	log.Info("Resumed match clocks", "running", len(t.running))
	return nil
}

// setRunning must be called with t.mu held.
func (t *Tracker) setRunning(id string, running bool) {
	if running {
		t.running[id] = true
	} else {
		delete(t.running, id)
	}
	t.metrics.SetLiveMatches(len(t.running))
}

// mutateFootball applies fn to a stored match. An empty kind marks a clock
// tick, which is neither logged nor counted as an event.
func (t *Tracker) mutateFootball(id, kind string, dryRun bool, fn func(football.Match) (football.Match, error)) (FootballSnapshot, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if kind != "" {
		defer t.observe(time.Now())
	}

	var snap FootballSnapshot
	if err := t.load(footballKey(id), &snap); err != nil {
		return snap, err
	}
	wasCompleted := snap.Completed()
	if wasCompleted && kind == "undo_penalty" {
		return snap, fmt.Errorf("%w: result of %s vs %s is final", rules.ErrIllegalTransition, snap.TeamA, snap.TeamB)
	}
	m, err := fn(snap.Match)
	if err != nil {
		log.Debug("Football action rejected", "matchID", id, "action", kind, "error", err)
		return snap, err
	}
	if kind == "" && m.Phase == snap.Phase && m.Timer == snap.Timer {
		t.setRunning(id, m.Phase.Running())
		return snap, nil
	}
	snap.Match = m
	if m.Completed() {
		snap.Result = football.ResultText(m)
	}
	if dryRun {
		log.Info("[Dry Run] Would save football match", "matchID", id, "action", kind, "phase", m.Phase)
		return snap, nil
	}
	if err := t.save(footballKey(id), snap); err != nil {
		return snap, err
	}
	if kind != "" {
		t.metrics.IncEventsRecorded(string(history.SportFootball), kind)
		log.Debug("Football action applied", "matchID", id, "action", kind, "phase", m.Phase)
	}
	t.setRunning(id, m.Phase.Running())
	t.broadcast(history.SportFootball, KindMatch, id, snap)

	if !wasCompleted && m.Completed() {
		t.completeFootball(snap)
	}
	return snap, nil
}

func (t *Tracker) completeFootball(snap FootballSnapshot) {
	m := snap.Match
	summary := football.Summary(m)
	log.Info("Football match completed", "matchID", m.ID, "result", snap.Result)

	rec := history.Record{
		ID:        uuid.New().String(),
		Sport:     history.SportFootball,
		MatchID:   m.ID,
		TeamA:     m.TeamA,
		TeamB:     m.TeamB,
		Winner:    m.Winner,
		Result:    snap.Result,
		Summary:   summary,
		BracketID: snap.BracketID,
		FixtureID: snap.FixtureID,
		PlayedAt:  t.now(),
		Football:  &m,
	}
	if err := t.history.Append(rec); err != nil {
		log.Error("Failed to append match history", "error", err, "matchID", m.ID)
	}
	t.counters.Increment(metrics.KeyFootballMatchesCompleted)
	t.metrics.IncMatchesCompleted(string(history.SportFootball))

	t.publish(pubsub.EventMatchCompleted, pubsub.MatchCompleted{
		Sport:     string(history.SportFootball),
		MatchID:   m.ID,
		BracketID: snap.BracketID,
		FixtureID: snap.FixtureID,
		TeamA:     m.TeamA,
		TeamB:     m.TeamB,
		Winner:    m.Winner,
		Result:    snap.Result,
		Summary:   summary,
	})

	if snap.BracketID != "" && m.Winner != "" {
		t.recordFixture(history.SportFootball, snap.BracketID, snap.FixtureID, m.Winner, m.GoalsA, m.GoalsB)
	}
}

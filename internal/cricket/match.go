package cricket

import (
	"fmt"
	"strings"

	"github.com/mauv0809/scoreline/internal/rules"
)

// NewMatch validates cfg and returns a match awaiting the toss.
func NewMatch(cfg Config) (Match, error) {
	teamA := strings.TrimSpace(cfg.TeamA)
	teamB := strings.TrimSpace(cfg.TeamB)
	if teamA == "" || teamB == "" {
		return Match{}, fmt.Errorf("%w: both team names are required", rules.ErrValidation)
	}
	if strings.EqualFold(teamA, teamB) {
		return Match{}, fmt.Errorf("%w: teams must be different, got %q twice", rules.ErrValidation, teamA)
	}
	if cfg.OversLimit < 1 {
		return Match{}, fmt.Errorf("%w: overs must be at least 1, got %d", rules.ErrValidation, cfg.OversLimit)
	}
	return Match{
		ID:         cfg.ID,
		TeamA:      teamA,
		TeamB:      teamB,
		OversLimit: cfg.OversLimit,
		Status:     StatusAwaitingToss,
	}, nil
}

// Toss flips coin to pick the toss winner.
func Toss(m Match, coin Coin) (Match, error) {
	winner := m.TeamA
	if coin.IntN(2) == 1 {
		winner = m.TeamB
	}
	return SetTossWinner(m, winner)
}

// SetTossWinner records the result of a toss performed outside the engine.
func SetTossWinner(m Match, team string) (Match, error) {
	if m.Status != StatusAwaitingToss {
		return m, fmt.Errorf("%w: toss already taken (status %s)", rules.ErrIllegalTransition, m.Status)
	}
	if team != m.TeamA && team != m.TeamB {
		return m, fmt.Errorf("%w: %q is not playing this match", rules.ErrValidation, team)
	}
	m.TossWinner = team
	m.Status = StatusAwaitingDecision
	return m, nil
}

// Decide applies the toss winner's choice and starts the first innings.
func Decide(m Match, decision Decision) (Match, error) {
	if m.Status != StatusAwaitingDecision {
		return m, fmt.Errorf("%w: no toss decision pending (status %s)", rules.ErrIllegalTransition, m.Status)
	}
	other := m.opponent(m.TossWinner)
	switch decision {
	case DecisionBat:
		m.BattingTeam, m.BowlingTeam = m.TossWinner, other
	case DecisionBowl:
		m.BattingTeam, m.BowlingTeam = other, m.TossWinner
	default:
		return m, fmt.Errorf("%w: decision must be bat or bowl, got %q", rules.ErrValidation, decision)
	}
	m.TossDecision = decision
	m.CurrentInning = 1
	m.Status = StatusInProgress
	return m, nil
}

// RecordBall applies one delivery. While a super over is being played the
// delivery is routed into it.
func RecordBall(m Match, d Delivery) (Match, error) {
	if err := validateDelivery(d); err != nil {
		return m, err
	}
	switch m.Status {
	case StatusInProgress:
		m.setCurrent(m.Current().apply(d))
		return m.advance(), nil
	case StatusSuperOver:
		so, err := RecordBall(*m.SuperOver, d)
		if err != nil {
			return m, err
		}
		m.SuperOver = &so
		if so.Status == StatusCompleted {
			if so.Winner == "" {
				return m.startSuperOver(so.BattingTeam), nil
			}
			m.Winner = so.Winner
			m.Status = StatusCompleted
		}
		return m, nil
	case StatusCompleted:
		return m, fmt.Errorf("%w: match is over", rules.ErrIllegalTransition)
	default:
		return m, fmt.Errorf("%w: match has not started (status %s)", rules.ErrIllegalTransition, m.Status)
	}
}

// UndoLastBall reverts the last delivery of the innings in play. Deliveries
// from a previous innings cannot be undone.
func UndoLastBall(m Match) (Match, error) {
	switch m.Status {
	case StatusInProgress:
		inn, err := m.Current().undo()
		if err != nil {
			return m, err
		}
		m.setCurrent(inn)
		return m, nil
	case StatusSuperOver:
		so, err := UndoLastBall(*m.SuperOver)
		if err != nil {
			return m, err
		}
		m.SuperOver = &so
		return m, nil
	case StatusCompleted:
		return m, fmt.Errorf("%w: match is over", rules.ErrIllegalTransition)
	default:
		return m, fmt.Errorf("%w: match has not started (status %s)", rules.ErrIllegalTransition, m.Status)
	}
}

// Current returns the innings in play, or the last one played.
func (m Match) Current() Innings {
	if m.CurrentInning == 2 {
		return m.Innings[1]
	}
	return m.Innings[0]
}

// Active returns the match that receives the next delivery: the running
// super over if there is one, otherwise m itself.
func (m Match) Active() Match {
	if m.Status == StatusSuperOver && m.SuperOver != nil {
		return m.SuperOver.Active()
	}
	return m
}

// RunsRequired returns the runs still needed by the chasing side, or -1 in the first innings.
func (m Match) RunsRequired() int {
	if m.CurrentInning != 2 || m.Target == nil {
		return -1
	}
	need := *m.Target - m.Innings[1].Score
	if need < 0 {
		return 0
	}
	return need
}

func (m *Match) setCurrent(inn Innings) {
	if m.CurrentInning == 2 {
		m.Innings[1] = inn
		return
	}
	m.Innings[0] = inn
}

func (m Match) opponent(team string) string {
	if team == m.TeamA {
		return m.TeamB
	}
	return m.TeamA
}

// advance applies the innings and match transitions after a delivery.
// A successful chase is checked before the innings-exhausted condition.
func (m Match) advance() Match {
	inn := m.Current()
	if m.CurrentInning == 2 && inn.Score >= *m.Target {
		m.Winner = m.BattingTeam
		m.Status = StatusCompleted
		return m
	}
	if !inn.Terminal(m.OversLimit) {
		return m
	}
	if m.CurrentInning == 1 {
		target := inn.Score + 1
		m.Target = &target
		m.BattingTeam, m.BowlingTeam = m.BowlingTeam, m.BattingTeam
		m.CurrentInning = 2
		return m
	}

	first, second := m.Innings[0].Score, inn.Score
	switch {
	case second < first:
		m.Winner = m.BowlingTeam
		m.Status = StatusCompleted
	case m.IsSuperOver:
		m.Winner = ""
		m.Status = StatusCompleted
	default:
		return m.startSuperOver(m.BattingTeam)
	}
	return m
}

// startSuperOver replaces any finished super over with a fresh one-over
// match in which battingFirst bats first.
func (m Match) startSuperOver(battingFirst string) Match {
	m.SuperOverCount++
	so := Match{
		ID:            fmt.Sprintf("%s-super-over-%d", m.ID, m.SuperOverCount),
		TeamA:         m.TeamA,
		TeamB:         m.TeamB,
		OversLimit:    1,
		BattingTeam:   battingFirst,
		BowlingTeam:   m.opponent(battingFirst),
		CurrentInning: 1,
		IsSuperOver:   true,
		Status:        StatusInProgress,
	}
	m.SuperOver = &so
	m.Status = StatusSuperOver
	return m
}

package football

import (
	"fmt"
	"strings"

	"github.com/mauv0809/scoreline/internal/rules"
)

// NewMatch validates cfg and returns a match at kick-off.
func NewMatch(cfg Config) (Match, error) {
	teamA := strings.TrimSpace(cfg.TeamA)
	teamB := strings.TrimSpace(cfg.TeamB)
	if teamA == "" || teamB == "" {
		return Match{}, fmt.Errorf("%w: both team names are required", rules.ErrValidation)
	}
	if strings.EqualFold(teamA, teamB) {
		return Match{}, fmt.Errorf("%w: teams must be different, got %q twice", rules.ErrValidation, teamA)
	}
	if cfg.DurationSeconds < 2 {
		return Match{}, fmt.Errorf("%w: duration must be at least 2 seconds, got %d", rules.ErrValidation, cfg.DurationSeconds)
	}
	return Match{
		ID:              cfg.ID,
		TeamA:           teamA,
		TeamB:           teamB,
		PlayersA:        cfg.PlayersA,
		PlayersB:        cfg.PlayersB,
		DurationSeconds: cfg.DurationSeconds,
		Phase:           PhaseFirstHalf,
		AllowDraw:       cfg.AllowDraw,
		Resolution:      ResolutionPending,
	}, nil
}

// Halftime returns the timer value at which the first half ends.
func (m Match) Halftime() int {
	return m.DurationSeconds / 2
}

// TeamName returns the display name for side.
func (m Match) TeamName(side Side) string {
	if side == SideB {
		return m.TeamB
	}
	return m.TeamA
}

// Players returns the roster of side.
func (m Match) Players(side Side) []string {
	if side == SideB {
		return m.PlayersB
	}
	return m.PlayersA
}

// Tick advances the clock by one second. Ticks outside running phases are ignored.
func Tick(m Match) Match {
	if !m.Phase.Running() {
		return m
	}
	m.Timer++
	return m.moveTo(NextPhase(m.Phase, m.Timer, m.AddedTime, m.Halftime(), m.DurationSeconds))
}

// ConfirmAddedTime sets stoppage time for the half that has just paused and
// resumes play. Zero minutes ends the half immediately.
func ConfirmAddedTime(m Match, minutes int) (Match, error) {
	if minutes < 0 {
		return m, fmt.Errorf("%w: added time cannot be negative", rules.ErrValidation)
	}
	switch m.Phase {
	case PhaseFirstHalfPause:
		m.Phase = PhaseFirstHalfAdded
	case PhaseSecondHalfPause:
		m.Phase = PhaseSecondHalfAdded
	default:
		return m, fmt.Errorf("%w: added time can only be set at the end of a half (phase %s)", rules.ErrIllegalTransition, m.Phase)
	}
	m.AddedTime = minutes * 60
	return m.moveTo(NextPhase(m.Phase, m.Timer, m.AddedTime, m.Halftime(), m.DurationSeconds)), nil
}

// StartSecondHalf kicks off the second half after the break.
func StartSecondHalf(m Match) (Match, error) {
	if m.Phase != PhaseHalftimeBreak {
		return m, fmt.Errorf("%w: second half can only start after the break (phase %s)", rules.ErrIllegalTransition, m.Phase)
	}
	m.Phase = PhaseSecondHalf
	m.Timer = m.Halftime()
	m.AddedTime = 0
	return m, nil
}

// RecordGoal credits a goal to side at the current clock time.
func RecordGoal(m Match, side Side, scorer string) (Match, error) {
	if !side.Valid() {
		return m, fmt.Errorf("%w: unknown side %q", rules.ErrValidation, side)
	}
	if !m.Phase.Running() {
		return m, fmt.Errorf("%w: goals can only be scored while the clock runs (phase %s)", rules.ErrIllegalTransition, m.Phase)
	}
	m.Goals = m.Goals.Append(GoalEvent{
		Team:   side,
		Second: m.Timer,
		Minute: m.Timer/60 + 1,
		Scorer: strings.TrimSpace(scorer),
	})
	if side == SideA {
		m.GoalsA++
	} else {
		m.GoalsB++
	}
	return m, nil
}

// UndoGoal removes the most recent goal. Once the match has ended the score is final.
func UndoGoal(m Match) (Match, error) {
	if m.Phase == PhaseEnded {
		return m, fmt.Errorf("%w: match has ended", rules.ErrIllegalTransition)
	}
	goals, ev, err := m.Goals.Pop()
	if err != nil {
		return m, err
	}
	m.Goals = goals
	if ev.Team == SideA {
		m.GoalsA--
	} else {
		m.GoalsB--
	}
	return m, nil
}

// StartShootout answers a pending draw decision with penalties.
func StartShootout(m Match) (Match, error) {
	if m.Resolution != ResolutionAwaitingDraw {
		return m, fmt.Errorf("%w: no draw decision pending (resolution %s)", rules.ErrIllegalTransition, m.Resolution)
	}
	return m.startShootout(), nil
}

// ConcludeDraw answers a pending draw decision by ending the match level.
func ConcludeDraw(m Match) (Match, error) {
	if m.Resolution != ResolutionAwaitingDraw {
		return m, fmt.Errorf("%w: no draw decision pending (resolution %s)", rules.ErrIllegalTransition, m.Resolution)
	}
	m.Resolution = ResolutionDraw
	m.Winner = ""
	return m, nil
}

// Completed reports whether the match has a final result.
func (m Match) Completed() bool {
	switch m.Resolution {
	case ResolutionRegulation, ResolutionPenalties, ResolutionDraw:
		return true
	}
	return false
}

func (m Match) moveTo(next Phase) Match {
	if next == m.Phase {
		return m
	}
	m.Phase = next
	if next == PhaseEnded {
		return m.finish()
	}
	return m
}

// finish resolves the match at the final whistle.
func (m Match) finish() Match {
	switch {
	case m.GoalsA > m.GoalsB:
		m.Resolution = ResolutionRegulation
		m.Winner = m.TeamA
	case m.GoalsB > m.GoalsA:
		m.Resolution = ResolutionRegulation
		m.Winner = m.TeamB
	case m.AllowDraw:
		m.Resolution = ResolutionAwaitingDraw
	default:
		return m.startShootout()
	}
	return m
}

func (m Match) startShootout() Match {
	m.Shootout = &Shootout{Round: 1, CurrentTeam: SideA}
	m.Resolution = ResolutionPending
	return m
}

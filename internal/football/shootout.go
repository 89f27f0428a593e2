package football

import (
	"fmt"

	"github.com/mauv0809/scoreline/internal/rules"
)

// RecordPenalty records an attempt by side, which must be the team to shoot.
// After team B's attempt in round five or later the shootout ends if the
// totals differ, otherwise play moves to the next round.
func RecordPenalty(m Match, side Side, result PenaltyResult) (Match, error) {
	if m.Shootout == nil {
		return m, fmt.Errorf("%w: no penalty shootout in progress", rules.ErrIllegalTransition)
	}
	if m.Shootout.Winner != "" {
		return m, fmt.Errorf("%w: shootout already decided", rules.ErrIllegalTransition)
	}
	if result != PenaltyScored && result != PenaltyMissed {
		return m, fmt.Errorf("%w: penalty result must be scored or missed, got %q", rules.ErrValidation, result)
	}
	if !side.Valid() {
		return m, fmt.Errorf("%w: unknown side %q", rules.ErrValidation, side)
	}
	s := *m.Shootout
	if side != s.CurrentTeam {
		return m, fmt.Errorf("%w: it is team %s's turn to shoot", rules.ErrIllegalTransition, s.CurrentTeam)
	}

	s.History = s.History.Append(PenaltyEvent{Team: side, Round: s.Round, Result: result})
	s.tally(side, result, 1)
	s.CurrentTeam = side.Other()

	if side == SideB {
		if s.Round >= RegulationRounds && s.ScoreA != s.ScoreB {
			s.Winner = SideA
			if s.ScoreB > s.ScoreA {
				s.Winner = SideB
			}
			m.Resolution = ResolutionPenalties
			m.Winner = m.TeamName(s.Winner)
		} else {
			s.Round++
		}
	}
	m.Shootout = &s
	return m, nil
}

// UndoPenalty reverses the last attempt, reopening the shootout if that attempt decided it.
func UndoPenalty(m Match) (Match, error) {
	if m.Shootout == nil {
		return m, fmt.Errorf("%w: no penalty shootout in progress", rules.ErrIllegalTransition)
	}
	s := *m.Shootout
	history, ev, err := s.History.Pop()
	if err != nil {
		return m, fmt.Errorf("undo penalty: %w", err)
	}
	s.History = history
	s.tally(ev.Team, ev.Result, -1)
	s.CurrentTeam = ev.Team
	if ev.Team == SideB {
		if s.Winner != "" {
			s.Winner = ""
			m.Resolution = ResolutionPending
			m.Winner = ""
		} else {
			s.Round--
		}
	}
	m.Shootout = &s
	return m, nil
}

func (s *Shootout) tally(side Side, result PenaltyResult, delta int) {
	switch {
	case side == SideA && result == PenaltyScored:
		s.ScoreA += delta
	case side == SideA:
		s.MissesA += delta
	case result == PenaltyScored:
		s.ScoreB += delta
	default:
		s.MissesB += delta
	}
}

// Attempts returns the penalties taken by side.
func (s Shootout) Attempts(side Side) int {
	if side == SideA {
		return s.ScoreA + s.MissesA
	}
	return s.ScoreB + s.MissesB
}

// SuddenDeath reports whether the shootout has gone past the regulation rounds.
func (s Shootout) SuddenDeath() bool {
	return s.Round > RegulationRounds
}

// ShootoutLabel describes the round being played.
func ShootoutLabel(s Shootout) string {
	if s.SuddenDeath() {
		return fmt.Sprintf("Sudden Death - Round %d", s.Round)
	}
	return fmt.Sprintf("Penalty Round %d of %d", s.Round, RegulationRounds)
}

// PenaltySummary renders side's shootout record as "scored/attempts".
func PenaltySummary(s Shootout, side Side) string {
	scored := s.ScoreA
	if side == SideB {
		scored = s.ScoreB
	}
	return fmt.Sprintf("%d/%d", scored, s.Attempts(side))
}

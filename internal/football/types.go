package football

import "github.com/mauv0809/scoreline/internal/ledger"

// Side identifies one of the two teams in a match.
type Side string

const (
	SideA Side = "A"
	SideB Side = "B"
)

// Other returns the opposing side.
func (s Side) Other() Side {
	if s == SideA {
		return SideB
	}
	return SideA
}

// Valid reports whether s is A or B.
func (s Side) Valid() bool {
	return s == SideA || s == SideB
}

// Phase is the period of play. Phases are strictly ordered and never skipped.
type Phase string

const (
	PhaseFirstHalf       Phase = "first_half"
	PhaseFirstHalfPause  Phase = "first_half_pause"
	PhaseFirstHalfAdded  Phase = "first_half_added"
	PhaseHalftimeBreak   Phase = "halftime_break"
	PhaseSecondHalf      Phase = "second_half"
	PhaseSecondHalfPause Phase = "second_half_pause"
	PhaseSecondHalfAdded Phase = "second_half_added"
	PhaseEnded           Phase = "ended"
)

// Running reports whether the clock advances during p.
func (p Phase) Running() bool {
	switch p {
	case PhaseFirstHalf, PhaseFirstHalfAdded, PhaseSecondHalf, PhaseSecondHalfAdded:
		return true
	}
	return false
}

// Resolution records how a match was, or is to be, decided.
type Resolution string

const (
	ResolutionPending      Resolution = "pending"
	ResolutionRegulation   Resolution = "regulation"
	ResolutionPenalties    Resolution = "penalties"
	ResolutionDraw         Resolution = "draw"
	ResolutionAwaitingDraw Resolution = "awaiting_draw_decision"
)

// PenaltyResult is the outcome of one penalty attempt.
type PenaltyResult string

const (
	PenaltyScored PenaltyResult = "scored"
	PenaltyMissed PenaltyResult = "missed"
)

// RegulationRounds is the number of shootout rounds before sudden death.
const RegulationRounds = 5

// GoalEvent is a goal scored in open play.
type GoalEvent struct {
	Team   Side   `json:"team"`
	Second int    `json:"second"`
	Minute int    `json:"minute"`
	Scorer string `json:"scorer,omitempty"`
}

// PenaltyEvent is one shootout attempt.
type PenaltyEvent struct {
	Team   Side          `json:"team"`
	Round  int           `json:"round"`
	Result PenaltyResult `json:"result"`
}

// Shootout is the state of a penalty shootout. Team A always shoots first in a round.
type Shootout struct {
	Round       int                         `json:"round"`
	ScoreA      int                         `json:"scoreA"`
	ScoreB      int                         `json:"scoreB"`
	MissesA     int                         `json:"missesA"`
	MissesB     int                         `json:"missesB"`
	CurrentTeam Side                        `json:"currentTeam"`
	History     ledger.Ledger[PenaltyEvent] `json:"history"`
	Winner      Side                        `json:"winner,omitempty"`
}

// Match is the full snapshot of a football match.
type Match struct {
	ID              string                   `json:"id"`
	TeamA           string                   `json:"teamA"`
	TeamB           string                   `json:"teamB"`
	PlayersA        []string                 `json:"playersA,omitempty"`
	PlayersB        []string                 `json:"playersB,omitempty"`
	DurationSeconds int                      `json:"durationSeconds"`
	Phase           Phase                    `json:"phase"`
	Timer           int                      `json:"timer"`
	AddedTime       int                      `json:"addedTime"`
	GoalsA          int                      `json:"goalsA"`
	GoalsB          int                      `json:"goalsB"`
	Goals           ledger.Ledger[GoalEvent] `json:"goals"`
	Shootout        *Shootout                `json:"shootout,omitempty"`
	AllowDraw       bool                     `json:"allowDraw,omitempty"`
	Resolution      Resolution               `json:"resolution"`
	Winner          string                   `json:"winner,omitempty"`
}

// Config holds the parameters for a new match.
type Config struct {
	ID              string   `json:"id"`
	TeamA           string   `json:"teamA"`
	TeamB           string   `json:"teamB"`
	PlayersA        []string `json:"playersA,omitempty"`
	PlayersB        []string `json:"playersB,omitempty"`
	DurationSeconds int      `json:"durationSeconds"`
	// AllowDraw lets a level match end as a draw instead of going straight to penalties.
	// Knockout matches leave it false.
	AllowDraw bool `json:"allowDraw,omitempty"`
}

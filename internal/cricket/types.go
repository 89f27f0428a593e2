package cricket

import "github.com/mauv0809/scoreline/internal/ledger"

// Status is the lifecycle state of a cricket match.
type Status string

const (
	StatusAwaitingToss     Status = "awaiting_toss"
	StatusAwaitingDecision Status = "awaiting_decision"
	StatusInProgress       Status = "in_progress"
	StatusSuperOver        Status = "super_over"
	StatusCompleted        Status = "completed"
)

// Decision is what the toss winner elects to do.
type Decision string

const (
	DecisionBat  Decision = "bat"
	DecisionBowl Decision = "bowl"
)

// Kind classifies a recorded delivery.
type Kind string

const (
	KindRun    Kind = "run"
	KindExtra  Kind = "extra"
	KindWicket Kind = "wicket"
)

// Extra is the type of extra awarded on a delivery, empty for a fair ball.
type Extra string

const (
	ExtraNone   Extra = ""
	ExtraWide   Extra = "wide"
	ExtraNoBall Extra = "no_ball"
	ExtraLegBye Extra = "leg_bye"
)

// MaxRunsPerBall bounds the runs accepted on a single delivery.
const MaxRunsPerBall = 7

// MaxWickets ends an innings when reached.
const MaxWickets = 10

// Delivery is the input describing one ball as it was bowled.
type Delivery struct {
	Runs   int   `json:"runs"`
	Extra  Extra `json:"extra,omitempty"`
	Wicket bool  `json:"wicket,omitempty"`
}

// BallEvent is the ledger entry for a recorded delivery. It holds exactly the
// deltas applied to the innings so the delivery can be undone.
type BallEvent struct {
	Kind          Kind  `json:"kind"`
	Extra         Extra `json:"extra,omitempty"`
	Runs          int   `json:"runs"`
	LegalBall     bool  `json:"legalBall"`
	StrikerBefore int   `json:"strikerBefore"`
}

// Innings is one side's batting turn.
type Innings struct {
	Score      int                      `json:"score"`
	Wickets    int                      `json:"wickets"`
	LegalBalls int                      `json:"legalBalls"`
	Striker    int                      `json:"striker"`
	History    ledger.Ledger[BallEvent] `json:"history"`
}

// Match is the full snapshot of a limited-overs match.
type Match struct {
	ID             string     `json:"id"`
	TeamA          string     `json:"teamA"`
	TeamB          string     `json:"teamB"`
	OversLimit     int        `json:"oversLimit"`
	TossWinner     string     `json:"tossWinner,omitempty"`
	TossDecision   Decision   `json:"tossDecision,omitempty"`
	BattingTeam    string     `json:"battingTeam,omitempty"`
	BowlingTeam    string     `json:"bowlingTeam,omitempty"`
	CurrentInning  int        `json:"currentInning"`
	Innings        [2]Innings `json:"innings"`
	Target         *int       `json:"target,omitempty"`
	IsSuperOver    bool       `json:"isSuperOver,omitempty"`
	Status         Status     `json:"status"`
	Winner         string     `json:"winner,omitempty"`
	SuperOver      *Match     `json:"superOver,omitempty"`
	SuperOverCount int        `json:"superOverCount,omitempty"`
}

// Config holds the parameters for a new match.
type Config struct {
	ID         string `json:"id"`
	TeamA      string `json:"teamA"`
	TeamB      string `json:"teamB"`
	OversLimit int    `json:"oversLimit"`
}

// Coin decides a toss. *rand.Rand satisfies it.
type Coin interface {
	IntN(n int) int
}

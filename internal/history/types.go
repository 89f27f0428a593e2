package history

import (
	"time"

	"github.com/mauv0809/scoreline/internal/cricket"
	"github.com/mauv0809/scoreline/internal/football"
)

// Sport selects which history list a record belongs to.
type Sport string

const (
	SportCricket  Sport = "cricket"
	SportFootball Sport = "football"
)

// Valid reports whether s is a supported sport.
func (s Sport) Valid() bool {
	return s == SportCricket || s == SportFootball
}

// Record is a finalized match. Exactly one of Cricket and Football is set.
type Record struct {
	ID        string          `json:"id"`
	Sport     Sport           `json:"sport"`
	MatchID   string          `json:"matchId"`
	TeamA     string          `json:"teamA"`
	TeamB     string          `json:"teamB"`
	Winner    string          `json:"winner,omitempty"`
	Result    string          `json:"result"`
	Summary   []string        `json:"summary,omitempty"`
	BracketID string          `json:"bracketId,omitempty"`
	FixtureID string          `json:"fixtureId,omitempty"`
	PlayedAt  time.Time       `json:"playedAt"`
	Cricket   *cricket.Match  `json:"cricket,omitempty"`
	Football  *football.Match `json:"football,omitempty"`
}

// TeamRecord aggregates one team's results.
type TeamRecord struct {
	Team   string `json:"team"`
	Played int    `json:"played"`
	Won    int    `json:"won"`
	Lost   int    `json:"lost"`
	Tied   int    `json:"tied"`
}

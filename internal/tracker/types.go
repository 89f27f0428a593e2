package tracker

import (
	"errors"
	"sync"
	"time"

	"github.com/mauv0809/scoreline/internal/cricket"
	"github.com/mauv0809/scoreline/internal/football"
	"github.com/mauv0809/scoreline/internal/history"
	"github.com/mauv0809/scoreline/internal/kvstore"
	"github.com/mauv0809/scoreline/internal/metrics"
	"github.com/mauv0809/scoreline/internal/notifier"
	"github.com/mauv0809/scoreline/internal/pubsub"
	"github.com/mauv0809/scoreline/internal/roster"
)

// ErrNotFound is returned when no snapshot exists for an ID.
var ErrNotFound = errors.New("not found")

// Tracker loads a snapshot, applies an engine transform, saves the result and
// fans out the side effects of completed matches. All actions are serialized.
type Tracker struct {
	mu       sync.Mutex
	kv       kvstore.Store
	history  history.Store
	rosters  roster.Store
	pubsub   pubsub.PubSubClient
	notifier notifier.Notifier
	metrics  metrics.Metrics
	counters metrics.MetricsStore
	rng      Random
	live     Broadcaster
	now      func() time.Time

	// football matches whose clock is running
	running map[string]bool
}

// Deps bundles the collaborators of a Tracker.
type Deps struct {
	KV       kvstore.Store
	History  history.Store
	Rosters  roster.Store
	PubSub   pubsub.PubSubClient
	Notifier notifier.Notifier
	Metrics  metrics.Metrics
	Counters metrics.MetricsStore
	Random   Random
	Live     Broadcaster
}

// Update is a snapshot pushed to live subscribers.
type Update struct {
	Sport history.Sport `json:"sport"`
	Kind  string        `json:"kind"`
	ID    string        `json:"id"`
	Data  any           `json:"data"`
}

// Update kinds.
const (
	KindMatch   = "match"
	KindBracket = "bracket"
)

// CricketSnapshot is a stored cricket match and the knockout fixture it decides, if any.
type CricketSnapshot struct {
	cricket.Match
	BracketID string `json:"bracketId,omitempty"`
	FixtureID string `json:"fixtureId,omitempty"`
	Result    string `json:"result,omitempty"`
}

// FootballSnapshot is a stored football match and the knockout fixture it decides, if any.
type FootballSnapshot struct {
	football.Match
	BracketID string `json:"bracketId,omitempty"`
	FixtureID string `json:"fixtureId,omitempty"`
	Result    string `json:"result,omitempty"`
}

// StartCricketRequest describes a cricket match to start. A zero OversLimit
// falls back to the tournament setup.
type StartCricketRequest struct {
	TeamA      string `json:"teamA"`
	TeamB      string `json:"teamB"`
	OversLimit int    `json:"oversLimit,omitempty"`
	BracketID  string `json:"bracketId,omitempty"`
	FixtureID  string `json:"fixtureId,omitempty"`
}

// StartFootballRequest describes a football match to start. A zero
// DurationSeconds falls back to the tournament setup.
type StartFootballRequest struct {
	TeamA           string `json:"teamA"`
	TeamB           string `json:"teamB"`
	DurationSeconds int    `json:"durationSeconds,omitempty"`
	AllowDraw       bool   `json:"allowDraw,omitempty"`
	BracketID       string `json:"bracketId,omitempty"`
	FixtureID       string `json:"fixtureId,omitempty"`
}

// CreateTournamentRequest starts a knockout. Without Teams the roster's teams are used.
type CreateTournamentRequest struct {
	Teams []string `json:"teams,omitempty"`
}

// Summary is the aggregate view of a sport's history.
type Summary struct {
	Standings []history.TeamRecord `json:"standings"`
	Totals    map[string]int       `json:"totals"`
}

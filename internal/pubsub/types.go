package pubsub

import "cloud.google.com/go/pubsub"

type client struct {
	client   *pubsub.Client
	teardown func()
}

// EventType represents the type of event/message sent via pubsub.
// It doubles as the topic name.
type EventType string

const (
	EventMatchCompleted  EventType = "match-completed"
	EventRoundAdvanced   EventType = "round-advanced"
	EventChampionCrowned EventType = "champion-crowned"
)

// MatchCompleted is published when a match reaches a final result.
type MatchCompleted struct {
	Sport     string   `msgpack:"sport"`
	MatchID   string   `msgpack:"matchId"`
	BracketID string   `msgpack:"bracketId,omitempty"`
	FixtureID string   `msgpack:"fixtureId,omitempty"`
	TeamA     string   `msgpack:"teamA"`
	TeamB     string   `msgpack:"teamB"`
	Winner    string   `msgpack:"winner,omitempty"`
	Result    string   `msgpack:"result"`
	Summary   []string `msgpack:"summary,omitempty"`
}

// RoundAdvanced is published when a bracket draws its next round.
type RoundAdvanced struct {
	Sport     string   `msgpack:"sport"`
	BracketID string   `msgpack:"bracketId"`
	Round     int      `msgpack:"round"`
	RoundName string   `msgpack:"roundName"`
	Fixtures  []string `msgpack:"fixtures"`
}

// ChampionCrowned is published when a bracket has a winner.
type ChampionCrowned struct {
	Sport     string `msgpack:"sport"`
	BracketID string `msgpack:"bracketId"`
	Champion  string `msgpack:"champion"`
	Rounds    int    `msgpack:"rounds"`
}

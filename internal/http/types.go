package http

import (
	"net/http"

	"github.com/mauv0809/scoreline/internal/config"
	"github.com/mauv0809/scoreline/internal/cricket"
	"github.com/mauv0809/scoreline/internal/football"
	"github.com/mauv0809/scoreline/internal/notifier"
	"github.com/mauv0809/scoreline/internal/pubsub"
	"github.com/mauv0809/scoreline/internal/tracker"
)

type Server struct {
	Tracker        *tracker.Tracker
	Notifier       notifier.Notifier
	MetricsHandler http.Handler
	Live           http.Handler
	Cfg            config.Config
	Router         *http.ServeMux
	pubsub         pubsub.PubSubClient
}

// matchRequest identifies the match an action applies to.
type matchRequest struct {
	MatchID string `json:"matchId"`
}

type tossRequest struct {
	MatchID string `json:"matchId"`
	// Team is the toss winner; empty flips the coin.
	Team string `json:"team,omitempty"`
}

type decisionRequest struct {
	MatchID  string           `json:"matchId"`
	Decision cricket.Decision `json:"decision"`
}

type ballRequest struct {
	MatchID string `json:"matchId"`
	cricket.Delivery
}

type addedTimeRequest struct {
	MatchID string `json:"matchId"`
	Minutes int    `json:"minutes"`
}

type goalRequest struct {
	MatchID string        `json:"matchId"`
	Side    football.Side `json:"side"`
	Scorer  string        `json:"scorer,omitempty"`
}

type drawRequest struct {
	MatchID string `json:"matchId"`
	// Decision is "penalties" or "draw".
	Decision string `json:"decision"`
}

type penaltyRequest struct {
	MatchID string                 `json:"matchId"`
	Side    football.Side          `json:"side"`
	Result  football.PenaltyResult `json:"result"`
}

type bracketRequest struct {
	BracketID string `json:"bracketId"`
}

type resultRequest struct {
	BracketID string `json:"bracketId"`
	FixtureID string `json:"fixtureId"`
	Winner    string `json:"winner"`
	ScoreA    int    `json:"scoreA"`
	ScoreB    int    `json:"scoreB"`
}

// pushRequest is the envelope of a Pub/Sub push delivery.
type pushRequest struct {
	Subscription string `json:"subscription"`
	Message      struct {
		Data string `json:"data"` // base64-encoded msgpack payload
	} `json:"message"`
}

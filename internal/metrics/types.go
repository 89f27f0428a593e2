package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
type Service struct {
	EventsRecorded       *prometheus.CounterVec
	MatchesCompleted     *prometheus.CounterVec
	TournamentsCompleted *prometheus.CounterVec
	ActionDuration       prometheus.Histogram
	LiveMatches          prometheus.Gauge
	SlackNotifSent       prometheus.Counter
	SlackNotifFailed     prometheus.Counter
	StartupTimeSeconds   prometheus.Gauge
}

// Durable counter keys.
const (
	KeyCricketMatchesCompleted  = "cricket_matches_completed"
	KeyFootballMatchesCompleted = "football_matches_completed"
	KeyTournamentsCompleted     = "tournaments_completed"
)

package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		EventsRecorded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "scoreline_events_recorded_total",
			Help: "Scoring events recorded, by sport and kind.",
		}, []string{"sport", "kind"}),
		MatchesCompleted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "scoreline_matches_completed_total",
			Help: "Matches that reached a final result.",
		}, []string{"sport"}),
		TournamentsCompleted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "scoreline_tournaments_completed_total",
			Help: "Knockout tournaments that crowned a champion.",
		}, []string{"sport"}),
		ActionDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "scoreline_action_duration_seconds",
			Help:    "Time taken to load, apply and persist one match action.",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
		LiveMatches: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "scoreline_live_matches",
			Help: "Football matches whose clock is currently running.",
		}),
		SlackNotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "scoreline_slack_notifications_sent_total",
			Help: "The total number of Slack notifications successfully sent.",
		}),
		SlackNotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "scoreline_slack_notifications_failed_total",
			Help: "The total number of Slack notifications that failed to send.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "scoreline_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.EventsRecorded,
		s.MatchesCompleted,
		s.TournamentsCompleted,
		s.ActionDuration,
		s.LiveMatches,
		s.SlackNotifSent,
		s.SlackNotifFailed,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncEventsRecorded(sport, kind string) {
	s.EventsRecorded.WithLabelValues(sport, kind).Inc()
}

func (s *Service) IncMatchesCompleted(sport string) {
	s.MatchesCompleted.WithLabelValues(sport).Inc()
}

func (s *Service) IncTournamentsCompleted(sport string) {
	s.TournamentsCompleted.WithLabelValues(sport).Inc()
}

func (s *Service) ObserveActionDuration(duration float64) {
	s.ActionDuration.Observe(duration)
}

func (s *Service) SetLiveMatches(n int) {
	s.LiveMatches.Set(float64(n))
}

func (s *Service) IncSlackNotifSent() {
	s.SlackNotifSent.Inc()
}

func (s *Service) IncSlackNotifFailed() {
	s.SlackNotifFailed.Inc()
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}

package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncEventsRecorded(sport, kind string)
	IncMatchesCompleted(sport string)
	IncTournamentsCompleted(sport string)
	ObserveActionDuration(duration float64)
	SetLiveMatches(n int)
	IncSlackNotifSent()
	IncSlackNotifFailed()
	SetStartupTime(duration float64)
}

// MetricsStore keeps running totals that survive restarts.
type MetricsStore interface {
	Increment(key string)
	GetAll() (map[string]int, error)
}

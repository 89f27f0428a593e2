package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	s := NewService(reg)

	s.IncEventsRecorded("cricket", "ball")
	s.IncEventsRecorded("cricket", "ball")
	s.IncMatchesCompleted("football")
	s.SetLiveMatches(3)

	assert.Equal(t, 2.0, testutil.ToFloat64(s.EventsRecorded.WithLabelValues("cricket", "ball")))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.MatchesCompleted.WithLabelValues("football")))
	assert.Equal(t, 3.0, testutil.ToFloat64(s.LiveMatches))
}

func TestMetricsHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	s := NewService(reg)
	s.IncSlackNotifSent()

	rr := httptest.NewRecorder()
	NewMetricsHandler(reg).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "scoreline_slack_notifications_sent_total 1")
}

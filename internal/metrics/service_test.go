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
	svc := NewService(reg)

	svc.IncSubmissions()
	svc.IncSubmissions()
	svc.IncAccepted()
	svc.IncRejected("duplicate_submission")
	svc.IncRejected("duplicate_submission")
	svc.IncRejected("too_early")
	svc.IncUnassigned()
	svc.SetActiveTournaments(3)

	assert.Equal(t, 2.0, testutil.ToFloat64(svc.Submissions))
	assert.Equal(t, 1.0, testutil.ToFloat64(svc.Accepted))
	assert.Equal(t, 2.0, testutil.ToFloat64(svc.Rejected.WithLabelValues("duplicate_submission")))
	assert.Equal(t, 1.0, testutil.ToFloat64(svc.Rejected.WithLabelValues("too_early")))
	assert.Equal(t, 1.0, testutil.ToFloat64(svc.Unassigned))
	assert.Equal(t, 3.0, testutil.ToFloat64(svc.ActiveTournaments))
}

func TestMetricsHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	svc := NewService(reg)
	svc.IncAccepted()

	rr := httptest.NewRecorder()
	req, err := http.NewRequest("GET", "/metrics", nil)
	require.NoError(t, err)
	NewMetricsHandler(reg).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "dsj_jumps_accepted_total 1")
}

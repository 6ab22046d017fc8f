package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"student-dashboard/pkg/metrics"
)

func TestMetricsRecordAndExpose(t *testing.T) {
	m := metrics.New()

	m.ObserveHTTPRequest(http.MethodGet, "/api/v1/tasks", http.StatusOK, 20*time.Millisecond)
	m.ObserveAdvisorCall("summarize", "success", time.Second)
	m.ObserveAdvisorCall("summarize", "failed", time.Second)
	m.IncStaleSummary()

	count, err := testutil.GatherAndCount(m.Registry(), "advisor_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `http_requests_total{method="GET",path="/api/v1/tasks",status="200"} 1`))
	assert.True(t, strings.Contains(body, "note_summaries_discarded_total 1"))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *metrics.Metrics

	assert.NotPanics(t, func() {
		m.ObserveHTTPRequest(http.MethodGet, "/", http.StatusOK, time.Millisecond)
		m.ObserveAdvisorCall("advise", "empty", time.Millisecond)
		m.IncStaleSummary()
	})
	assert.Nil(t, m.Registry())
}

package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"student-dashboard/internal/advisor"
	"student-dashboard/internal/dashboard"
	"student-dashboard/internal/dashboard/repository/memory"
	"student-dashboard/internal/dashboard/usecase"
	"student-dashboard/internal/middleware"
	"student-dashboard/pkg/log"
	"student-dashboard/pkg/metrics"
)

type stubAdvisor struct{}

func (stubAdvisor) Summarize(ctx context.Context, content string) advisor.Result {
	return advisor.SummaryResult(advisor.StatusSuccess, "summary", nil)
}

func (stubAdvisor) Advise(ctx context.Context, snapshot advisor.Snapshot) advisor.Result {
	return advisor.AdviceResult(advisor.StatusSuccess, "advice", nil)
}

func newTestServer(t *testing.T, cfg Config) *HTTPServer {
	t.Helper()
	l := log.NewNop()
	cfg.Logger = l
	cfg.Mode = gin.TestMode
	cfg.Port = 8080
	if cfg.DashboardUC == nil {
		cfg.DashboardUC = usecase.New(l, memory.New(l, dashboard.SampleState()), stubAdvisor{}, nil)
	}

	srv, err := New(l, cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return srv
}

func TestNew_Validation(t *testing.T) {
	l := log.NewNop()
	if _, err := New(l, Config{Logger: l, Mode: gin.TestMode, Port: 8080}); err == nil {
		t.Error("expected error without dashboard usecase")
	}
}

func TestSystemRoutes(t *testing.T) {
	srv := newTestServer(t, Config{Metrics: metrics.New()})

	for _, path := range []string{"/health", "/ready", "/live", "/metrics"} {
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusOK {
			t.Errorf("GET %s = %d, want 200", path, w.Code)
		}
		if w.Header().Get(middleware.HeaderRequestID) == "" {
			t.Errorf("GET %s: missing request id header", path)
		}
	}
}

func TestReady_ReportsAdvice(t *testing.T) {
	srv := newTestServer(t, Config{})

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))

	var body struct {
		Data healthResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Data.AdviceReady == nil || *body.Data.AdviceReady {
		t.Errorf("advice_ready = %v, want false before the first refresh", body.Data.AdviceReady)
	}
}

func TestMetricsRouteAbsentWithoutMetrics(t *testing.T) {
	srv := newTestServer(t, Config{})

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("GET /metrics = %d, want 404", w.Code)
	}
}

func TestDomainRoutesMounted(t *testing.T) {
	srv := newTestServer(t, Config{})

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/views/dashboard", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"view":"dashboard"`) {
		t.Errorf("unexpected body %s", w.Body.String())
	}
}

func TestRun_StopsOnCancel(t *testing.T) {
	srv := newTestServer(t, Config{})
	srv.port = 0

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := srv.Run(ctx); err != nil {
		t.Errorf("Run: %v", err)
	}
}

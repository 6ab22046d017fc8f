package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"student-dashboard/internal/advisor"
	"student-dashboard/internal/dashboard"
	"student-dashboard/internal/dashboard/repository/memory"
	"student-dashboard/internal/dashboard/usecase"
	"student-dashboard/internal/middleware"
	"student-dashboard/pkg/log"
)

type fakeAdvisor struct{}

func (fakeAdvisor) Summarize(ctx context.Context, content string) advisor.Result {
	return advisor.SummaryResult(advisor.StatusSuccess, "• inflation", nil)
}

func (fakeAdvisor) Advise(ctx context.Context, snapshot advisor.Snapshot) advisor.Result {
	return advisor.AdviceResult(advisor.StatusEmpty, "", nil)
}

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func setup(t *testing.T) (*gin.Engine, dashboard.UseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	l := log.NewNop()
	uc := usecase.New(l, memory.New(l, dashboard.SampleState()), fakeAdvisor{}, nil)

	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), New(l, uc), middleware.New(l, nil, middleware.Config{}))
	return r, uc
}

func do(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("%s %s: invalid JSON body %q: %v", method, path, w.Body.String(), err)
	}
	return w, env
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		t.Fatalf("decode %s: %v", raw, err)
	}
	return v
}

func TestToggleTask(t *testing.T) {
	r, _ := setup(t)

	w, env := do(t, r, http.MethodPost, "/api/v1/tasks/t1/toggle", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if task := decode[taskResp](t, env.Data); !task.Completed || task.DueDate.String() != "2024-05-20" {
		t.Errorf("unexpected task %+v", task)
	}

	w, env = do(t, r, http.MethodPost, "/api/v1/tasks/unknown/toggle", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown task status = %d, want 404", w.Code)
	}
	if env.Message != "task not found" {
		t.Errorf("message = %q", env.Message)
	}
}

func TestListTasks(t *testing.T) {
	r, _ := setup(t)

	tests := []struct {
		query      string
		wantStatus int
		wantTotal  int
	}{
		{"", http.StatusOK, 3},
		{"?filter=pending", http.StatusOK, 2},
		{"?filter=completed", http.StatusOK, 1},
		{"?course=Macroeconomics", http.StatusOK, 1},
		{"?priority=high", http.StatusOK, 1},
		{"?filter=pending&priority=low", http.StatusOK, 0},
		{"?filter=someday", http.StatusBadRequest, 0},
		{"?priority=urgent", http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			w, env := do(t, r, http.MethodGet, "/api/v1/tasks"+tt.query, "")
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.wantStatus != http.StatusOK {
				return
			}
			if got := decode[listTasksResp](t, env.Data); got.Total != tt.wantTotal {
				t.Errorf("total = %d, want %d", got.Total, tt.wantTotal)
			}
		})
	}
}

func TestSummarizeNote(t *testing.T) {
	r, uc := setup(t)

	w, env := do(t, r, http.MethodPost, "/api/v1/notes/n1/summary", "")
	if w.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want 202", w.Code)
	}
	ticket := decode[summaryTicketResp](t, env.Data)
	if ticket.NoteID != "n1" || ticket.Sequence != 1 {
		t.Errorf("unexpected ticket %+v", ticket)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := uc.Drain(ctx); err != nil {
		t.Fatalf("drain: %v", err)
	}

	_, env = do(t, r, http.MethodGet, "/api/v1/notes/n1", "")
	note := decode[noteResp](t, env.Data)
	if note.Summary != "• inflation" || note.Summarizing {
		t.Errorf("unexpected note %+v", note)
	}

	w, _ = do(t, r, http.MethodPost, "/api/v1/notes/missing/summary", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown note status = %d, want 404", w.Code)
	}
}

func TestAdvice(t *testing.T) {
	r, uc := setup(t)

	_, env := do(t, r, http.MethodGet, "/api/v1/advice", "")
	if got := decode[adviceResp](t, env.Data); got.Ready || got.Text != dashboard.AdviceLoadingText {
		t.Errorf("before refresh: %+v", got)
	}

	w, _ := do(t, r, http.MethodPost, "/api/v1/advice/refresh", "")
	if w.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want 202", w.Code)
	}
	if err := uc.Drain(context.Background()); err != nil {
		t.Fatalf("drain: %v", err)
	}

	_, env = do(t, r, http.MethodGet, "/api/v1/advice", "")
	if got := decode[adviceResp](t, env.Data); !got.Ready || got.Text != advisor.AdviceEmptyFallback {
		t.Errorf("after refresh: %+v", got)
	}
}

func TestViews(t *testing.T) {
	r, _ := setup(t)

	w, env := do(t, r, http.MethodGet, "/api/v1/views/attendance", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	view := decode[viewResp](t, env.Data)
	if view.View != "attendance" {
		t.Errorf("view = %q", view.View)
	}
	raw, _ := json.Marshal(view.Data)
	rows := decode[[]attendanceResp](t, raw)
	if len(rows) != 4 || rows[0].Percentage != 80 || rows[0].AtRisk || !rows[3].AtRisk {
		t.Errorf("unexpected attendance %+v", rows)
	}

	w, _ = do(t, r, http.MethodGet, "/api/v1/views/settings", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("unknown view status = %d, want 400", w.Code)
	}
}

func TestSelectView(t *testing.T) {
	r, _ := setup(t)

	w, env := do(t, r, http.MethodPut, "/api/v1/view", `{"view":"notes"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if got := decode[currentViewResp](t, env.Data); got.View != "notes" || len(got.Views) != 6 {
		t.Errorf("unexpected %+v", got)
	}

	w, _ = do(t, r, http.MethodPut, "/api/v1/view", `{"view":"settings"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("invalid view status = %d, want 400", w.Code)
	}

	_, env = do(t, r, http.MethodGet, "/api/v1/view", "")
	if got := decode[currentViewResp](t, env.Data); got.View != "notes" {
		t.Errorf("selection changed to %q", got.View)
	}
}

func TestListInternships_InvalidStatus(t *testing.T) {
	r, _ := setup(t)

	w, env := do(t, r, http.MethodGet, "/api/v1/internships?status=hired", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if env.ErrorCode != http.StatusBadRequest || env.Message != "bad request" {
		t.Errorf("unexpected envelope %+v", env)
	}
}

package advisor_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"student-dashboard/internal/advisor"
)

func TestResultDisplay(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name   string
		result advisor.Result
		want   string
	}{
		{name: "summary success", result: advisor.SummaryResult(advisor.StatusSuccess, "• point one", nil), want: "• point one"},
		{name: "summary empty", result: advisor.SummaryResult(advisor.StatusEmpty, "", nil), want: advisor.SummaryEmptyFallback},
		{name: "summary failed", result: advisor.SummaryResult(advisor.StatusFailed, "", boom), want: advisor.SummaryFailedFallback},
		{name: "advice success", result: advisor.AdviceResult(advisor.StatusSuccess, "1. Plan", nil), want: "1. Plan"},
		{name: "advice empty", result: advisor.AdviceResult(advisor.StatusEmpty, "", nil), want: advisor.AdviceEmptyFallback},
		{name: "advice failed", result: advisor.AdviceResult(advisor.StatusFailed, "", boom), want: advisor.AdviceFailedFallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.result.Display())
		})
	}
}

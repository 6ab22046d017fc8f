package usecase

import (
	"context"
	"strings"

	"student-dashboard/internal/advisor"
	"student-dashboard/pkg/gemini"
)

// Summarize asks the model for a bulleted summary of content.
func (uc *implUseCase) Summarize(ctx context.Context, content string) advisor.Result {
	if strings.TrimSpace(content) == "" {
		uc.l.Warnf(ctx, "advisor.Summarize: %v", advisor.ErrEmptyContent)
		return advisor.SummaryResult(advisor.StatusFailed, "", advisor.ErrEmptyContent)
	}

	status, text, err := uc.generate(ctx, advisor.OperationSummarize, gemini.BuildSummaryPrompt(content))
	return advisor.SummaryResult(status, text, err)
}

package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"student-dashboard/internal/advisor"
	"student-dashboard/pkg/gemini"
)

// Advise asks the model for productivity tips based on the snapshot.
// Successful answers are cached per distinct snapshot.
func (uc *implUseCase) Advise(ctx context.Context, snapshot advisor.Snapshot) advisor.Result {
	raw, err := json.Marshal(snapshot)
	if err != nil {
		err = fmt.Errorf("marshal snapshot: %w", err)
		uc.l.Errorf(ctx, "advisor.Advise: %v", err)
		return advisor.AdviceResult(advisor.StatusFailed, "", err)
	}

	key := cacheKey(raw)
	if uc.cache != nil {
		if text, ok := uc.cache.Get(key); ok {
			uc.l.Debugf(ctx, "advisor.Advise: cache hit %s", key[:12])
			return advisor.AdviceResult(advisor.StatusSuccess, text, nil)
		}
	}

	status, text, err := uc.generate(ctx, advisor.OperationAdvise, gemini.BuildAdvicePrompt(string(raw)))
	if status == advisor.StatusSuccess && uc.cache != nil {
		uc.cache.Add(key, text)
	}
	return advisor.AdviceResult(status, text, err)
}

package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"student-dashboard/internal/advisor"
	"student-dashboard/pkg/gemini"
)

const tracerName = "student-dashboard/internal/advisor"

// generate issues exactly one request. Errors are logged here and returned only inside the status.
func (uc *implUseCase) generate(ctx context.Context, operation, prompt string) (advisor.Status, string, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "advisor."+operation)
	defer span.End()

	start := uc.now()
	resp, err := uc.llm.GenerateContent(ctx, gemini.UserText(prompt))
	elapsed := uc.now().Sub(start)

	var (
		status advisor.Status
		text   string
	)
	switch {
	case err != nil:
		status = advisor.StatusFailed
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		uc.l.Errorf(ctx, "advisor.%s: model=%s: %v", operation, uc.llm.Model(), err)
	case resp.Text() == "":
		status = advisor.StatusEmpty
		uc.l.Warnf(ctx, "advisor.%s: model=%s returned no text", operation, uc.llm.Model())
	default:
		status = advisor.StatusSuccess
		text = resp.Text()
	}

	span.SetAttributes(attribute.String("advisor.status", string(status)))
	uc.metrics.ObserveAdvisorCall(operation, string(status), elapsed)
	return status, text, err
}

func cacheKey(raw []byte) string {
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}

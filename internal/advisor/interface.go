package advisor

import "context"

// UseCase requests generated text from the language model.
// Neither method returns a Go error: failures are carried in Result and logged.
type UseCase interface {
	// Summarize produces a bulleted summary of note content.
	Summarize(ctx context.Context, content string) Result

	// Advise produces productivity tips for a workload snapshot.
	Advise(ctx context.Context, snapshot Snapshot) Result
}

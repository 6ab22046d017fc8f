package repository

// BeginNoteSummaryResult is returned when a summary request is registered.
type BeginNoteSummaryResult struct {
	Sequence uint64
	Content  string
}

// CompleteNoteSummaryOptions holds the resolved summary for a note.
type CompleteNoteSummaryOptions struct {
	ID       string
	Sequence uint64
	Summary  string
}

// CompleteAdviceOptions holds the resolved advice text.
type CompleteAdviceOptions struct {
	Sequence uint64
	Text     string
}

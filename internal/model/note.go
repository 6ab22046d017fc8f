package model

// SummaryPlaceholder is shown while a summary request is in flight.
const SummaryPlaceholder = "Summarizing with Gemini..."

// Note is a block of lecture notes with an optional generated summary.
type Note struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Summary string `json:"summary,omitempty"`
	Date    Date   `json:"date"`
}

// Summarizing reports whether a summary is currently pending.
func (n Note) Summarizing() bool {
	return n.Summary == SummaryPlaceholder
}

package advisor

import "student-dashboard/internal/model"

// Operation names, used for logs and metrics.
const (
	OperationSummarize = "summarize"
	OperationAdvise    = "advise"
)

// Fallback strings rendered in place of missing text.
const (
	SummaryEmptyFallback  = "Could not generate summary."
	SummaryFailedFallback = "An error occurred while summarizing."
	AdviceEmptyFallback   = "Stay focused and keep going!"
	AdviceFailedFallback  = "Consistency is key to academic success!"
)

// Status is the outcome of one request.
type Status string

const (
	StatusSuccess Status = "success"
	StatusEmpty   Status = "empty"
	StatusFailed  Status = "failed"
)

// Result is the typed outcome of a generation request.
type Result struct {
	Status Status
	Text   string
	Err    error

	emptyFallback  string
	failedFallback string
}

// Display returns the text to show: the generated text on success, otherwise the fallback.
func (r Result) Display() string {
	switch r.Status {
	case StatusSuccess:
		return r.Text
	case StatusEmpty:
		return r.emptyFallback
	default:
		return r.failedFallback
	}
}

// Snapshot is a read-only copy of the workload sent for advice.
type Snapshot struct {
	Tasks      []model.Task             `json:"tasks"`
	Attendance []model.AttendanceRecord `json:"attendance"`
}

// SummaryResult builds a Result with the summary fallbacks.
func SummaryResult(status Status, text string, err error) Result {
	return Result{
		Status:         status,
		Text:           text,
		Err:            err,
		emptyFallback:  SummaryEmptyFallback,
		failedFallback: SummaryFailedFallback,
	}
}

// AdviceResult builds a Result with the advice fallbacks.
func AdviceResult(status Status, text string, err error) Result {
	return Result{
		Status:         status,
		Text:           text,
		Err:            err,
		emptyFallback:  AdviceEmptyFallback,
		failedFallback: AdviceFailedFallback,
	}
}

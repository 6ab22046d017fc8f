package gemini

import "time"

const (
	// DefaultModel is the default Gemini model
	DefaultModel = "gemini-3-flash-preview"

	// DefaultAPIURL is the default Gemini API endpoint
	DefaultAPIURL = "https://generativelanguage.googleapis.com/v1beta"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second

	// RoleUser is the role for end-user turns
	RoleUser = "user"

	apiKeyHeader = "x-goog-api-key"
	tracerName   = "student-dashboard/pkg/gemini"
)

package gemini

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingAPIKey is returned by every call when no API key is configured.
	ErrMissingAPIKey = errors.New("gemini: API key is not configured")

	// ErrEmptyPrompt is returned when a request carries no text.
	ErrEmptyPrompt = errors.New("gemini: prompt is empty")
)

// APIError is a non-200 reply from the Generative Language API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gemini: API error %d: %s", e.StatusCode, e.Body)
}

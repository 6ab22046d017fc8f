package errors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	pkgErrors "student-dashboard/pkg/errors"
)

func TestAsHTTPError(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		if pkgErrors.AsHTTPError(nil) != nil {
			t.Errorf("expected nil")
		}
	})

	t.Run("wrapped http error", func(t *testing.T) {
		err := fmt.Errorf("handler: %w", pkgErrors.NewHTTPError(http.StatusConflict, "conflict"))
		got := pkgErrors.AsHTTPError(err)
		if got.Code != http.StatusConflict || got.Message != "conflict" {
			t.Errorf("unexpected error: %+v", got)
		}
	})

	t.Run("unknown error", func(t *testing.T) {
		got := pkgErrors.AsHTTPError(errors.New("db crash"))
		if got.Code != http.StatusInternalServerError {
			t.Errorf("expected 500, got %d", got.Code)
		}
	})
}

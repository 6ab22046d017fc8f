package http

import (
	"errors"
	"net/http"

	"student-dashboard/internal/dashboard"
	pkgErrors "student-dashboard/pkg/errors"
)

var (
	errTaskNotFound = pkgErrors.NewHTTPError(http.StatusNotFound, "task not found")
	errNoteNotFound = pkgErrors.NewHTTPError(http.StatusNotFound, "note not found")
	errInvalidView  = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid view")
	errInvalidParam = pkgErrors.ErrBadRequest
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
// Unknown errors are returned as-is and rendered as 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, dashboard.ErrTaskNotFound):
		return errTaskNotFound
	case errors.Is(err, dashboard.ErrNoteNotFound):
		return errNoteNotFound
	case errors.Is(err, dashboard.ErrInvalidView):
		return errInvalidView
	default:
		return err
	}
}

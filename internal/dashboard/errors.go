package dashboard

import "errors"

var (
	ErrTaskNotFound = errors.New("task not found")
	ErrNoteNotFound = errors.New("note not found")
	ErrInvalidView  = errors.New("invalid view")
)

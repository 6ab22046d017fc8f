package advisor

import "errors"

var (
	ErrEmptyContent = errors.New("note content is empty")
)

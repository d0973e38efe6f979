package entry

import "errors"

var (
	ErrNotFound   = errors.New("entry not found")
	ErrValidation = errors.New("invalid entry")
)

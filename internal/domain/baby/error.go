package baby

import "errors"

var (
	ErrNotFound     = errors.New("baby not found")
	ErrInvalidInput = errors.New("invalid baby profile")
)

package user

import "errors"

var (
	ErrNotFound      = errors.New("user not found")
	ErrInvalidAuth   = errors.New("invalid credentials")
	ErrInvalidInput  = errors.New("invalid input")
	ErrUsernameTaken = errors.New("username already exists")
	ErrWrongAnswers  = errors.New("security answers do not match")
)

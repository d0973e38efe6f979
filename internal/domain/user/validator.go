package user

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	MinUsernameLen = 3
	MaxUsernameLen = 32
	MinPasswordLen = 6
)

// Validator checks registration and reset input before any hashing happens.
type Validator interface {
	ValidateRegister(username, password string, answers [AnswerCount]string) error
	ValidateUsername(username string) error
	ValidatePassword(password string) error
}

type InputValidator struct{}

func NewValidator() *InputValidator {
	return &InputValidator{}
}

func (v *InputValidator) ValidateRegister(username, password string, answers [AnswerCount]string) error {
	if err := v.ValidateUsername(username); err != nil {
		return fmt.Errorf("username validation failed: %w", err)
	}

	if err := v.ValidatePassword(password); err != nil {
		return fmt.Errorf("password validation failed: %w", err)
	}

	for i, a := range answers {
		if strings.TrimSpace(a) == "" {
			return fmt.Errorf("security answer %d must not be empty", i+1)
		}
	}

	return nil
}

func (v *InputValidator) ValidateUsername(username string) error {
	if len(username) < MinUsernameLen {
		return fmt.Errorf("username must be at least %d characters", MinUsernameLen)
	}

	if len(username) > MaxUsernameLen {
		return fmt.Errorf("username must be at most %d characters", MaxUsernameLen)
	}

	for _, r := range username {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '-' && r != '.' {
			return fmt.Errorf("username can only contain letters, digits, '_', '-', '.'")
		}
	}

	return nil
}

func (v *InputValidator) ValidatePassword(password string) error {
	if len(password) < MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters", MinPasswordLen)
	}
	return nil
}

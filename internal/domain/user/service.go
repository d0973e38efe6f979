package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

type Servicer interface {
	Register(ctx context.Context, username, password string, answers [AnswerCount]string) (int, error)
	Authenticate(ctx context.Context, username, password string) (User, error)
	ResetPassword(ctx context.Context, username string, answers [AnswerCount]string, newPassword string) error
}

type Service struct {
	repo      Repository
	validator Validator
	log       *slog.Logger
}

func NewService(repo Repository, validator Validator, log *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		validator: validator,
		log:       log.With("component", "user_service"),
	}
}

func (s *Service) Register(ctx context.Context, username, password string, answers [AnswerCount]string) (int, error) {
	if err := s.validator.ValidateRegister(username, password, answers); err != nil {
		s.log.Debug("registration rejected", "username", username, "error", err)
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if _, err := s.repo.FindByUsername(ctx, username); err == nil {
		return 0, ErrUsernameTaken
	} else if !errors.Is(err, ErrNotFound) {
		return 0, fmt.Errorf("check username: %w", err)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	var answerHashes [AnswerCount]string
	for i, a := range answers {
		hash, err := bcrypt.GenerateFromPassword([]byte(normalizeAnswer(a)), bcrypt.DefaultCost)
		if err != nil {
			return 0, fmt.Errorf("hash answer: %w", err)
		}
		answerHashes[i] = string(hash)
	}

	return s.repo.Create(ctx, username, string(passwordHash), answerHashes)
}

func (s *Service) Authenticate(ctx context.Context, username, password string) (User, error) {
	if err := s.validator.ValidateUsername(username); err != nil {
		return User{}, ErrInvalidAuth
	}

	u, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return User{}, ErrInvalidAuth
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return User{}, ErrInvalidAuth
	}

	return u, nil
}

// ResetPassword replaces the password after all three security answers
// match. Answers are compared through their bcrypt hashes, never in
// plaintext.
func (s *Service) ResetPassword(ctx context.Context, username string, answers [AnswerCount]string, newPassword string) error {
	if err := s.validator.ValidatePassword(newPassword); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	u, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return err
	}

	for i, a := range answers {
		if err := bcrypt.CompareHashAndPassword([]byte(u.AnswerHashes[i]), []byte(normalizeAnswer(a))); err != nil {
			s.log.Debug("password reset rejected", "username", username, "answer", i+1)
			return ErrWrongAnswers
		}
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	return s.repo.UpdatePassword(ctx, u.ID, string(passwordHash))
}

// normalizeAnswer makes answer matching forgiving about case and
// surrounding whitespace.
func normalizeAnswer(a string) string {
	return strings.ToLower(strings.TrimSpace(a))
}

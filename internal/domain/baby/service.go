package baby

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/exp/slog"

	"nestlog/internal/utils/timeutil"
)

const defaultName = "Baby"

type Servicer interface {
	Create(ctx context.Context, userID int, name, birthDate string) (Baby, error)
	List(ctx context.Context, userID int) ([]Baby, error)
	Get(ctx context.Context, userID, babyID int) (Baby, error)
	GetOrCreateDefault(ctx context.Context, userID int) (Baby, error)
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "baby_service"),
	}
}

func (s *Service) Create(ctx context.Context, userID int, name, birthDate string) (Baby, error) {
	if strings.TrimSpace(name) == "" {
		return Baby{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if birthDate != "" {
		if _, err := timeutil.DateToEpoch(birthDate); err != nil {
			return Baby{}, fmt.Errorf("%w: birth date must be YYYY-MM-DD", ErrInvalidInput)
		}
	}
	return s.repo.Create(ctx, userID, strings.TrimSpace(name), birthDate)
}

func (s *Service) List(ctx context.Context, userID int) ([]Baby, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) Get(ctx context.Context, userID, babyID int) (Baby, error) {
	return s.repo.Get(ctx, userID, babyID)
}

// GetOrCreateDefault returns the user's first baby, creating an unnamed
// profile on first use so a fresh account can log entries right away.
func (s *Service) GetOrCreateDefault(ctx context.Context, userID int) (Baby, error) {
	babies, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return Baby{}, err
	}
	if len(babies) > 0 {
		return babies[0], nil
	}

	s.log.Info("creating default baby profile", "user_id", userID)
	return s.repo.Create(ctx, userID, defaultName, "")
}

package entry

import (
	"context"
	"time"

	"golang.org/x/exp/slog"
)

// Servicer defines the business logic for care entry operations.
type Servicer interface {
	ListFeedings(ctx context.Context, babyID int) ([]Feeding, error)
	SaveFeeding(ctx context.Context, babyID int, f Feeding, isNew bool) (Feeding, error)
	DeleteFeeding(ctx context.Context, babyID int, id int64) error

	ListDiapers(ctx context.Context, babyID int) ([]Diaper, error)
	SaveDiaper(ctx context.Context, babyID int, d Diaper, isNew bool) (Diaper, error)
	DeleteDiaper(ctx context.Context, babyID int, id int64) error

	ListSleeps(ctx context.Context, babyID int) ([]Sleep, error)
	SaveSleep(ctx context.Context, babyID int, s Sleep, isNew bool) (Sleep, error)
	DeleteSleep(ctx context.Context, babyID int, id int64) error

	ListGrowth(ctx context.Context, babyID int) ([]Growth, error)
	SaveGrowth(ctx context.Context, babyID int, g Growth, isNew bool) (Growth, error)
	DeleteGrowth(ctx context.Context, babyID int, id int64) error
}

type Service struct {
	repo Repository
	log  *slog.Logger
	now  func() int64
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "entry_service"),
		now:  func() int64 { return time.Now().UnixMilli() },
	}
}

func (s *Service) ListFeedings(ctx context.Context, babyID int) ([]Feeding, error) {
	return s.repo.ListFeedings(ctx, babyID)
}

// SaveFeeding validates, normalizes and persists a feeding. isNew selects
// create vs update so the caller can distinguish a missing id (ErrNotFound)
// from a fresh record.
func (s *Service) SaveFeeding(ctx context.Context, babyID int, f Feeding, isNew bool) (Feeding, error) {
	if err := f.Validate(); err != nil {
		s.log.Debug("feeding rejected", "baby_id", babyID, "error", err)
		return Feeding{}, err
	}
	f = f.Normalize(s.now())

	if isNew {
		return s.repo.CreateFeeding(ctx, babyID, f)
	}
	return s.repo.UpdateFeeding(ctx, babyID, f)
}

func (s *Service) DeleteFeeding(ctx context.Context, babyID int, id int64) error {
	return s.repo.DeleteFeeding(ctx, babyID, id)
}

func (s *Service) ListDiapers(ctx context.Context, babyID int) ([]Diaper, error) {
	return s.repo.ListDiapers(ctx, babyID)
}

func (s *Service) SaveDiaper(ctx context.Context, babyID int, d Diaper, isNew bool) (Diaper, error) {
	if err := d.Validate(); err != nil {
		s.log.Debug("diaper rejected", "baby_id", babyID, "error", err)
		return Diaper{}, err
	}
	d = d.Normalize(s.now())

	if isNew {
		return s.repo.CreateDiaper(ctx, babyID, d)
	}
	return s.repo.UpdateDiaper(ctx, babyID, d)
}

func (s *Service) DeleteDiaper(ctx context.Context, babyID int, id int64) error {
	return s.repo.DeleteDiaper(ctx, babyID, id)
}

func (s *Service) ListSleeps(ctx context.Context, babyID int) ([]Sleep, error) {
	return s.repo.ListSleeps(ctx, babyID)
}

func (s *Service) SaveSleep(ctx context.Context, babyID int, sl Sleep, isNew bool) (Sleep, error) {
	if err := sl.Validate(); err != nil {
		s.log.Debug("sleep rejected", "baby_id", babyID, "error", err)
		return Sleep{}, err
	}
	sl, err := sl.Normalize(s.now())
	if err != nil {
		return Sleep{}, err
	}

	if isNew {
		return s.repo.CreateSleep(ctx, babyID, sl)
	}
	return s.repo.UpdateSleep(ctx, babyID, sl)
}

func (s *Service) DeleteSleep(ctx context.Context, babyID int, id int64) error {
	return s.repo.DeleteSleep(ctx, babyID, id)
}

func (s *Service) ListGrowth(ctx context.Context, babyID int) ([]Growth, error) {
	return s.repo.ListGrowth(ctx, babyID)
}

func (s *Service) SaveGrowth(ctx context.Context, babyID int, g Growth, isNew bool) (Growth, error) {
	if err := g.Validate(); err != nil {
		s.log.Debug("growth rejected", "baby_id", babyID, "error", err)
		return Growth{}, err
	}
	g, err := g.Normalize()
	if err != nil {
		return Growth{}, err
	}

	if isNew {
		return s.repo.CreateGrowth(ctx, babyID, g)
	}
	return s.repo.UpdateGrowth(ctx, babyID, g)
}

func (s *Service) DeleteGrowth(ctx context.Context, babyID int, id int64) error {
	return s.repo.DeleteGrowth(ctx, babyID, id)
}

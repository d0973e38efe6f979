package entry

import "context"

// Repository persists care entries per baby. Implementations must return
// lists ordered descending by timestamp; callers that keep an in-memory
// Store re-sort on upsert anyway, so a misbehaving backend cannot break the
// ordering invariant.
type Repository interface {
	ListFeedings(ctx context.Context, babyID int) ([]Feeding, error)
	CreateFeeding(ctx context.Context, babyID int, f Feeding) (Feeding, error)
	UpdateFeeding(ctx context.Context, babyID int, f Feeding) (Feeding, error)
	DeleteFeeding(ctx context.Context, babyID int, id int64) error

	ListDiapers(ctx context.Context, babyID int) ([]Diaper, error)
	CreateDiaper(ctx context.Context, babyID int, d Diaper) (Diaper, error)
	UpdateDiaper(ctx context.Context, babyID int, d Diaper) (Diaper, error)
	DeleteDiaper(ctx context.Context, babyID int, id int64) error

	ListSleeps(ctx context.Context, babyID int) ([]Sleep, error)
	CreateSleep(ctx context.Context, babyID int, s Sleep) (Sleep, error)
	UpdateSleep(ctx context.Context, babyID int, s Sleep) (Sleep, error)
	DeleteSleep(ctx context.Context, babyID int, id int64) error

	ListGrowth(ctx context.Context, babyID int) ([]Growth, error)
	CreateGrowth(ctx context.Context, babyID int, g Growth) (Growth, error)
	UpdateGrowth(ctx context.Context, babyID int, g Growth) (Growth, error)
	DeleteGrowth(ctx context.Context, babyID int, id int64) error
}

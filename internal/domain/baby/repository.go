package baby

import "context"

type Repository interface {
	Create(ctx context.Context, userID int, name, birthDate string) (Baby, error)
	ListByUser(ctx context.Context, userID int) ([]Baby, error)
	Get(ctx context.Context, userID, babyID int) (Baby, error)
}

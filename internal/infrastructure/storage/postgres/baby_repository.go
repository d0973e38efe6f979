package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"golang.org/x/exp/slog"

	"nestlog/internal/domain/baby"
)

type BabyRepository struct {
	db  *Storage
	log *slog.Logger
}

func NewBabyRepository(db *Storage, log *slog.Logger) *BabyRepository {
	return &BabyRepository{
		db:  db,
		log: log.With("component", "baby_repository"),
	}
}

func (r *BabyRepository) Create(ctx context.Context, userID int, name, birthDate string) (baby.Baby, error) {
	const query = `
		INSERT INTO babies (user_id, name, birth_date)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, name, birth_date, created_at`

	var b baby.Baby
	err := r.db.Pool().QueryRow(ctx, query, userID, name, birthDate).
		Scan(&b.ID, &b.UserID, &b.Name, &b.BirthDate, &b.CreatedAt)
	if err != nil {
		r.log.Error("failed to create baby", "user_id", userID, "error", err)
		return baby.Baby{}, fmt.Errorf("create baby: %w", err)
	}

	return b, nil
}

func (r *BabyRepository) ListByUser(ctx context.Context, userID int) ([]baby.Baby, error) {
	const query = `
		SELECT id, user_id, name, birth_date, created_at
		FROM babies
		WHERE user_id = $1
		ORDER BY created_at`

	rows, err := r.db.Pool().Query(ctx, query, userID)
	if err != nil {
		r.log.Error("failed to list babies", "user_id", userID, "error", err)
		return nil, fmt.Errorf("list babies: %w", err)
	}
	defer rows.Close()

	babies := make([]baby.Baby, 0)
	for rows.Next() {
		var b baby.Baby
		if err := rows.Scan(&b.ID, &b.UserID, &b.Name, &b.BirthDate, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan baby: %w", err)
		}
		babies = append(babies, b)
	}

	return babies, rows.Err()
}

func (r *BabyRepository) Get(ctx context.Context, userID, babyID int) (baby.Baby, error) {
	const query = `
		SELECT id, user_id, name, birth_date, created_at
		FROM babies
		WHERE id = $1 AND user_id = $2`

	var b baby.Baby
	err := r.db.Pool().QueryRow(ctx, query, babyID, userID).
		Scan(&b.ID, &b.UserID, &b.Name, &b.BirthDate, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return baby.Baby{}, baby.ErrNotFound
		}
		r.log.Error("failed to get baby", "baby_id", babyID, "user_id", userID, "error", err)
		return baby.Baby{}, fmt.Errorf("get baby: %w", err)
	}

	return b, nil
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"golang.org/x/exp/slog"

	"nestlog/internal/domain/user"
)

type UserRepository struct {
	db  *Storage
	log *slog.Logger
}

func NewUserRepository(db *Storage, log *slog.Logger) *UserRepository {
	return &UserRepository{
		db:  db,
		log: log.With("component", "user_repository"),
	}
}

func (r *UserRepository) Create(ctx context.Context, username, passwordHash string, answerHashes [user.AnswerCount]string) (int, error) {
	const query = `
		INSERT INTO users (username, password_hash, answer_hash_1, answer_hash_2, answer_hash_3)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id int
	err := r.db.Pool().QueryRow(ctx, query,
		username, passwordHash, answerHashes[0], answerHashes[1], answerHashes[2],
	).Scan(&id)
	if err != nil {
		r.log.Error("failed to create user", "username", username, "error", err)
		return 0, fmt.Errorf("create user: %w", err)
	}

	return id, nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (user.User, error) {
	const query = `
		SELECT id, username, password_hash, answer_hash_1, answer_hash_2, answer_hash_3, created_at
		FROM users
		WHERE username = $1`

	var u user.User
	err := r.db.Pool().QueryRow(ctx, query, username).Scan(
		&u.ID, &u.Username, &u.PasswordHash,
		&u.AnswerHashes[0], &u.AnswerHashes[1], &u.AnswerHashes[2],
		&u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}
		r.log.Error("failed to find user", "username", username, "error", err)
		return user.User{}, fmt.Errorf("find user: %w", err)
	}

	return u, nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, userID int, passwordHash string) error {
	const query = `UPDATE users SET password_hash = $1 WHERE id = $2`

	result, err := r.db.Pool().Exec(ctx, query, passwordHash, userID)
	if err != nil {
		r.log.Error("failed to update password", "user_id", userID, "error", err)
		return fmt.Errorf("update password: %w", err)
	}

	if result.RowsAffected() == 0 {
		return user.ErrNotFound
	}

	return nil
}

package user

import "context"

type Repository interface {
	Create(ctx context.Context, username, passwordHash string, answerHashes [AnswerCount]string) (int, error)
	FindByUsername(ctx context.Context, username string) (User, error)
	UpdatePassword(ctx context.Context, userID int, passwordHash string) error
}

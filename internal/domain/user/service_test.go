package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

// MockRepository is a mock implementation of the Repository interface for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, username, passwordHash string, answerHashes [AnswerCount]string) (int, error) {
	args := m.Called(ctx, username, passwordHash, answerHashes)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) FindByUsername(ctx context.Context, username string) (User, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(User), args.Error(1)
}

func (m *MockRepository) UpdatePassword(ctx context.Context, userID int, passwordHash string) error {
	args := m.Called(ctx, userID, passwordHash)
	return args.Error(0)
}

func hashOf(t *testing.T, s string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(s), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func storedUser(t *testing.T) User {
	t.Helper()
	return User{
		ID:           1,
		Username:     "alice",
		PasswordHash: hashOf(t, "secret123"),
		AnswerHashes: [AnswerCount]string{
			hashOf(t, "smith"),
			hashOf(t, "oak street"),
			hashOf(t, "rex"),
		},
	}
}

func TestRegister(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := NewService(mockRepo, NewValidator(), slog.Default())

	mockRepo.On("FindByUsername", mock.Anything, "alice").Return(User{}, ErrNotFound)
	mockRepo.On("Create", mock.Anything, "alice", mock.AnythingOfType("string"),
		mock.AnythingOfType("[3]string")).Return(1, nil)

	id, err := svc.Register(context.Background(), "alice", "secret123", validAnswers())
	require.NoError(t, err)
	assert.Equal(t, 1, id)

	// The stored hashes must verify against the plaintext inputs.
	call := mockRepo.Calls[len(mockRepo.Calls)-1]
	passwordHash := call.Arguments.String(2)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte("secret123")))

	answerHashes := call.Arguments.Get(3).([AnswerCount]string)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(answerHashes[0]), []byte("smith")))
}

func TestRegisterUsernameTaken(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := NewService(mockRepo, NewValidator(), slog.Default())

	mockRepo.On("FindByUsername", mock.Anything, "alice").Return(storedUser(t), nil)

	_, err := svc.Register(context.Background(), "alice", "secret123", validAnswers())
	assert.ErrorIs(t, err, ErrUsernameTaken)
	mockRepo.AssertNotCalled(t, "Create")
}

func TestRegisterInvalidInput(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := NewService(mockRepo, NewValidator(), slog.Default())

	_, err := svc.Register(context.Background(), "a", "secret123", validAnswers())
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAuthenticate(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := NewService(mockRepo, NewValidator(), slog.Default())

	mockRepo.On("FindByUsername", mock.Anything, "alice").Return(storedUser(t), nil)

	u, err := svc.Authenticate(context.Background(), "alice", "secret123")
	require.NoError(t, err)
	assert.Equal(t, 1, u.ID)

	_, err = svc.Authenticate(context.Background(), "alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidAuth)
}

func TestAuthenticateUnknownUser(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := NewService(mockRepo, NewValidator(), slog.Default())

	mockRepo.On("FindByUsername", mock.Anything, "nobody").Return(User{}, ErrNotFound)

	_, err := svc.Authenticate(context.Background(), "nobody", "secret123")
	assert.ErrorIs(t, err, ErrInvalidAuth)
}

func TestResetPassword(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := NewService(mockRepo, NewValidator(), slog.Default())

	mockRepo.On("FindByUsername", mock.Anything, "alice").Return(storedUser(t), nil)
	mockRepo.On("UpdatePassword", mock.Anything, 1, mock.AnythingOfType("string")).Return(nil)

	// Answer matching ignores case and surrounding whitespace.
	answers := [AnswerCount]string{" Smith ", "OAK STREET", "rex"}
	err := svc.ResetPassword(context.Background(), "alice", answers, "newsecret")
	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestResetPasswordWrongAnswers(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := NewService(mockRepo, NewValidator(), slog.Default())

	mockRepo.On("FindByUsername", mock.Anything, "alice").Return(storedUser(t), nil)

	answers := [AnswerCount]string{"smith", "oak street", "fido"}
	err := svc.ResetPassword(context.Background(), "alice", answers, "newsecret")
	assert.ErrorIs(t, err, ErrWrongAnswers)
	mockRepo.AssertNotCalled(t, "UpdatePassword")
}

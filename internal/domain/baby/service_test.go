package baby

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, userID int, name, birthDate string) (Baby, error) {
	args := m.Called(ctx, userID, name, birthDate)
	return args.Get(0).(Baby), args.Error(1)
}

func (m *MockRepository) ListByUser(ctx context.Context, userID int) ([]Baby, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Baby), args.Error(1)
}

func (m *MockRepository) Get(ctx context.Context, userID, babyID int) (Baby, error) {
	args := m.Called(ctx, userID, babyID)
	return args.Get(0).(Baby), args.Error(1)
}

func TestCreateValidation(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := NewService(mockRepo, slog.Default())
	ctx := context.Background()

	_, err := svc.Create(ctx, 1, "   ", "")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(ctx, 1, "Emma", "next tuesday")
	assert.ErrorIs(t, err, ErrInvalidInput)

	mockRepo.On("Create", mock.Anything, 1, "Emma", "2024-01-10").
		Return(Baby{ID: 3, UserID: 1, Name: "Emma", BirthDate: "2024-01-10"}, nil)

	b, err := svc.Create(ctx, 1, " Emma ", "2024-01-10")
	require.NoError(t, err)
	assert.Equal(t, "Emma", b.Name)
}

func TestGetOrCreateDefaultExisting(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := NewService(mockRepo, slog.Default())

	mockRepo.On("ListByUser", mock.Anything, 1).
		Return([]Baby{{ID: 3, UserID: 1, Name: "Emma"}}, nil)

	b, err := svc.GetOrCreateDefault(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 3, b.ID)
	mockRepo.AssertNotCalled(t, "Create")
}

func TestGetOrCreateDefaultFresh(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := NewService(mockRepo, slog.Default())

	mockRepo.On("ListByUser", mock.Anything, 1).Return([]Baby{}, nil)
	mockRepo.On("Create", mock.Anything, 1, defaultName, "").
		Return(Baby{ID: 9, UserID: 1, Name: defaultName}, nil)

	b, err := svc.GetOrCreateDefault(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 9, b.ID)
	mockRepo.AssertExpectations(t)
}

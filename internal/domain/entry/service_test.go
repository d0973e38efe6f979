package entry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

// MockRepository is a mock implementation of the Repository interface for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ListFeedings(ctx context.Context, babyID int) ([]Feeding, error) {
	args := m.Called(ctx, babyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Feeding), args.Error(1)
}

func (m *MockRepository) CreateFeeding(ctx context.Context, babyID int, f Feeding) (Feeding, error) {
	args := m.Called(ctx, babyID, f)
	return args.Get(0).(Feeding), args.Error(1)
}

func (m *MockRepository) UpdateFeeding(ctx context.Context, babyID int, f Feeding) (Feeding, error) {
	args := m.Called(ctx, babyID, f)
	return args.Get(0).(Feeding), args.Error(1)
}

func (m *MockRepository) DeleteFeeding(ctx context.Context, babyID int, id int64) error {
	args := m.Called(ctx, babyID, id)
	return args.Error(0)
}

func (m *MockRepository) ListDiapers(ctx context.Context, babyID int) ([]Diaper, error) {
	args := m.Called(ctx, babyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Diaper), args.Error(1)
}

func (m *MockRepository) CreateDiaper(ctx context.Context, babyID int, d Diaper) (Diaper, error) {
	args := m.Called(ctx, babyID, d)
	return args.Get(0).(Diaper), args.Error(1)
}

func (m *MockRepository) UpdateDiaper(ctx context.Context, babyID int, d Diaper) (Diaper, error) {
	args := m.Called(ctx, babyID, d)
	return args.Get(0).(Diaper), args.Error(1)
}

func (m *MockRepository) DeleteDiaper(ctx context.Context, babyID int, id int64) error {
	args := m.Called(ctx, babyID, id)
	return args.Error(0)
}

func (m *MockRepository) ListSleeps(ctx context.Context, babyID int) ([]Sleep, error) {
	args := m.Called(ctx, babyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Sleep), args.Error(1)
}

func (m *MockRepository) CreateSleep(ctx context.Context, babyID int, s Sleep) (Sleep, error) {
	args := m.Called(ctx, babyID, s)
	return args.Get(0).(Sleep), args.Error(1)
}

func (m *MockRepository) UpdateSleep(ctx context.Context, babyID int, s Sleep) (Sleep, error) {
	args := m.Called(ctx, babyID, s)
	return args.Get(0).(Sleep), args.Error(1)
}

func (m *MockRepository) DeleteSleep(ctx context.Context, babyID int, id int64) error {
	args := m.Called(ctx, babyID, id)
	return args.Error(0)
}

func (m *MockRepository) ListGrowth(ctx context.Context, babyID int) ([]Growth, error) {
	args := m.Called(ctx, babyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Growth), args.Error(1)
}

func (m *MockRepository) CreateGrowth(ctx context.Context, babyID int, g Growth) (Growth, error) {
	args := m.Called(ctx, babyID, g)
	return args.Get(0).(Growth), args.Error(1)
}

func (m *MockRepository) UpdateGrowth(ctx context.Context, babyID int, g Growth) (Growth, error) {
	args := m.Called(ctx, babyID, g)
	return args.Get(0).(Growth), args.Error(1)
}

func (m *MockRepository) DeleteGrowth(ctx context.Context, babyID int, id int64) error {
	args := m.Called(ctx, babyID, id)
	return args.Error(0)
}

func newTestService(repo Repository) *Service {
	svc := NewService(repo, slog.Default())
	svc.now = func() int64 { return 1700000000000 }
	return svc
}

func TestServiceSaveFeedingCreate(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := newTestService(mockRepo)

	in := Feeding{ID: 1, Type: FeedingFormula, Volume: 110, Time: "10:15 AM"}
	normalized := in
	normalized.Timestamp = 1700000000000

	mockRepo.On("CreateFeeding", mock.Anything, 7, normalized).Return(normalized, nil)

	out, err := svc.SaveFeeding(context.Background(), 7, in, true)
	require.NoError(t, err)
	assert.Equal(t, int64(1700000000000), out.Timestamp)
	mockRepo.AssertExpectations(t)
}

func TestServiceSaveFeedingRejectsInvalid(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := newTestService(mockRepo)

	_, err := svc.SaveFeeding(context.Background(), 7, Feeding{Type: "juice", Volume: 50, Time: "10:15 AM"}, true)
	assert.ErrorIs(t, err, ErrValidation)
	mockRepo.AssertNotCalled(t, "CreateFeeding")
}

func TestServiceSaveFeedingUpdateNotFound(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := newTestService(mockRepo)

	in := Feeding{ID: 99, Type: FeedingBreast, Volume: 90, Time: "07:00 AM", Timestamp: 42}
	mockRepo.On("UpdateFeeding", mock.Anything, 7, in).Return(Feeding{}, ErrNotFound)

	_, err := svc.SaveFeeding(context.Background(), 7, in, false)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestServiceSaveDiaperEnforcesColorInvariant(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := newTestService(mockRepo)

	mockRepo.On("CreateDiaper", mock.Anything, 7, mock.MatchedBy(func(d Diaper) bool {
		return d.Color == ""
	})).Return(Diaper{}, nil)

	_, err := svc.SaveDiaper(context.Background(), 7,
		Diaper{ID: 1, Type: DiaperPee, Sub: "Normal", Time: "11:15 AM", Color: "#eab308"}, true)
	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestServiceSaveSleepRecomputesDuration(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := newTestService(mockRepo)

	mockRepo.On("CreateSleep", mock.Anything, 7, mock.MatchedBy(func(s Sleep) bool {
		return s.Duration == "10h 0m"
	})).Return(Sleep{}, nil)

	_, err := svc.SaveSleep(context.Background(), 7,
		Sleep{ID: 1, Start: "20:00", End: "06:00", Duration: "tampered"}, true)
	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestServiceSaveGrowthFormatsDecimals(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := newTestService(mockRepo)

	mockRepo.On("CreateGrowth", mock.Anything, 7, mock.MatchedBy(func(g Growth) bool {
		return g.Weight == "6.50" && g.Height == "62.00" && g.Timestamp != 0
	})).Return(Growth{}, nil)

	_, err := svc.SaveGrowth(context.Background(), 7,
		Growth{ID: 1, Weight: "6.5", Height: "62", Date: "2024-03-15"}, true)
	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestServiceDeleteDelegates(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := newTestService(mockRepo)

	mockRepo.On("DeleteGrowth", mock.Anything, 7, int64(5)).Return(nil)

	err := svc.DeleteGrowth(context.Background(), 7, 5)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

package service

import (
	"context"
	"errors"
	"testing"

	"aniview/internal/api/dto"
	"aniview/internal/api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// MockWatchlistRepository mocks the WatchlistRepository interface
type MockWatchlistRepository struct {
	mock.Mock
}

func (m *MockWatchlistRepository) Create(ctx context.Context, entry *models.WatchlistEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockWatchlistRepository) Get(ctx context.Context, userID int64, animeID string) (*models.WatchlistEntry, error) {
	args := m.Called(ctx, userID, animeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WatchlistEntry), args.Error(1)
}

func (m *MockWatchlistRepository) Update(ctx context.Context, entry *models.WatchlistEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockWatchlistRepository) ListByUser(ctx context.Context, userID int64, status string, page, limit int) ([]models.WatchlistEntry, int64, error) {
	args := m.Called(ctx, userID, status, page, limit)
	return args.Get(0).([]models.WatchlistEntry), args.Get(1).(int64), args.Error(2)
}

func (m *MockWatchlistRepository) Delete(ctx context.Context, userID int64, animeID string) error {
	args := m.Called(ctx, userID, animeID)
	return args.Error(0)
}

func TestWatchlistAdd_InvalidStatus(t *testing.T) {
	repo := new(MockWatchlistRepository)
	svc := NewWatchlistService(repo)

	req := &dto.AddWatchlistRequest{AnimeID: "A1", Title: "Title", Status: "binged"}
	_, err := svc.Add(context.Background(), 1, req)

	assert.ErrorIs(t, err, ErrInvalidStatus)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestWatchlistAdd_DefaultsToPlanToWatch(t *testing.T) {
	repo := new(MockWatchlistRepository)
	svc := NewWatchlistService(repo)

	repo.On("Get", mock.Anything, int64(1), "A1").Return(nil, gorm.ErrRecordNotFound)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(entry *models.WatchlistEntry) bool {
		return entry.Status == models.StatusPlanToWatch
	})).Return(nil)

	req := &dto.AddWatchlistRequest{AnimeID: "A1", Title: "Title"}
	resp, err := svc.Add(context.Background(), 1, req)

	assert.NoError(t, err)
	assert.Equal(t, models.StatusPlanToWatch, resp.Status)
	repo.AssertExpectations(t)
}

func TestWatchlistAdd_Duplicate(t *testing.T) {
	repo := new(MockWatchlistRepository)
	svc := NewWatchlistService(repo)

	repo.On("Get", mock.Anything, int64(1), "A1").
		Return(&models.WatchlistEntry{ID: 3, UserID: 1, AnimeID: "A1"}, nil)

	req := &dto.AddWatchlistRequest{AnimeID: "A1", Title: "Title", Status: models.StatusWatching}
	_, err := svc.Add(context.Background(), 1, req)

	assert.ErrorIs(t, err, ErrAlreadyInWatchlist)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestWatchlistAdd_DuplicateRace(t *testing.T) {
	repo := new(MockWatchlistRepository)
	svc := NewWatchlistService(repo)

	repo.On("Get", mock.Anything, int64(1), "A1").Return(nil, gorm.ErrRecordNotFound)
	repo.On("Create", mock.Anything, mock.Anything).Return(gorm.ErrDuplicatedKey)

	req := &dto.AddWatchlistRequest{AnimeID: "A1", Title: "Title", Status: models.StatusWatching}
	_, err := svc.Add(context.Background(), 1, req)

	assert.ErrorIs(t, err, ErrAlreadyInWatchlist)
}

func TestWatchlistUpdateStatus_NotFound(t *testing.T) {
	repo := new(MockWatchlistRepository)
	svc := NewWatchlistService(repo)

	repo.On("Get", mock.Anything, int64(1), "A1").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.UpdateStatus(context.Background(), 1, "A1", models.StatusCompleted)
	assert.ErrorIs(t, err, ErrWatchlistNotFound)
}

func TestWatchlistUpdateStatus_Moves(t *testing.T) {
	repo := new(MockWatchlistRepository)
	svc := NewWatchlistService(repo)

	entry := &models.WatchlistEntry{ID: 3, UserID: 1, AnimeID: "A1", Status: models.StatusWatching}
	repo.On("Get", mock.Anything, int64(1), "A1").Return(entry, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(e *models.WatchlistEntry) bool {
		return e.Status == models.StatusCompleted
	})).Return(nil)

	resp, err := svc.UpdateStatus(context.Background(), 1, "A1", models.StatusCompleted)

	assert.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, resp.Status)
	repo.AssertExpectations(t)
}

func TestWatchlistRemove_NotFound(t *testing.T) {
	repo := new(MockWatchlistRepository)
	svc := NewWatchlistService(repo)

	repo.On("Delete", mock.Anything, int64(1), "A1").Return(gorm.ErrRecordNotFound)

	err := svc.Remove(context.Background(), 1, "A1")
	assert.ErrorIs(t, err, ErrWatchlistNotFound)
}

func TestWatchlistRemove_StorageErrorPassesThrough(t *testing.T) {
	repo := new(MockWatchlistRepository)
	svc := NewWatchlistService(repo)

	storageErr := errors.New("connection refused")
	repo.On("Delete", mock.Anything, int64(1), "A1").Return(storageErr)

	err := svc.Remove(context.Background(), 1, "A1")
	assert.ErrorIs(t, err, storageErr)
	assert.NotErrorIs(t, err, ErrWatchlistNotFound)
}

func TestWatchlistList_InvalidStatusFilter(t *testing.T) {
	repo := new(MockWatchlistRepository)
	svc := NewWatchlistService(repo)

	_, err := svc.List(context.Background(), 1, "binged", 1, 10)

	assert.ErrorIs(t, err, ErrInvalidStatus)
	repo.AssertNotCalled(t, "ListByUser", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestWatchlistList_StatusFilterPassedThrough(t *testing.T) {
	repo := new(MockWatchlistRepository)
	svc := NewWatchlistService(repo)

	repo.On("ListByUser", mock.Anything, int64(1), models.StatusWatching, 1, 10).
		Return([]models.WatchlistEntry{{ID: 3, AnimeID: "A1", Status: models.StatusWatching}}, int64(1), nil)

	result, err := svc.List(context.Background(), 1, models.StatusWatching, 1, 10)

	assert.NoError(t, err)
	assert.Len(t, result.Watchlist, 1)
	repo.AssertExpectations(t)
}

package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"aniview/internal/api/dto"
	"aniview/internal/api/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// MockHistoryService mocks the HistoryService interface
type MockHistoryService struct {
	mock.Mock
}

func (m *MockHistoryService) Record(ctx context.Context, userID int64, req *dto.RecordWatchRequest) (*dto.WatchHistoryResponse, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.WatchHistoryResponse), args.Error(1)
}

func (m *MockHistoryService) List(ctx context.Context, userID int64, page, limit int) (*dto.PaginatedWatchHistoryResponse, error) {
	args := m.Called(ctx, userID, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PaginatedWatchHistoryResponse), args.Error(1)
}

func (m *MockHistoryService) Delete(ctx context.Context, entryID, userID int64) error {
	args := m.Called(ctx, entryID, userID)
	return args.Error(0)
}

func (m *MockHistoryService) Clear(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func setupHistoryRouter(svc *MockHistoryService, callerID int64) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHistoryHandler(svc, zap.NewNop())

	r := gin.New()
	history := r.Group("/api/history", asUser(callerID))
	history.POST("", h.Record)
	history.GET("", h.List)
	history.DELETE("/:id", h.Delete)
	history.DELETE("", h.Clear)
	return r
}

func TestHistoryDelete_NotFound(t *testing.T) {
	svc := new(MockHistoryService)
	router := setupHistoryRouter(svc, 1)

	svc.On("Delete", mock.Anything, int64(9), int64(1)).
		Return(service.ErrHistoryNotFound)

	w := performJSON(router, http.MethodDelete, "/api/history/9", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHistoryDelete_StorageErrorIs500(t *testing.T) {
	svc := new(MockHistoryService)
	router := setupHistoryRouter(svc, 1)

	svc.On("Delete", mock.Anything, int64(9), int64(1)).
		Return(errors.New("connection refused"))

	w := performJSON(router, http.MethodDelete, "/api/history/9", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	// Storage details never leak to the client
	assert.NotContains(t, w.Body.String(), "connection refused")
}

func TestHistoryDelete_Success(t *testing.T) {
	svc := new(MockHistoryService)
	router := setupHistoryRouter(svc, 1)

	svc.On("Delete", mock.Anything, int64(9), int64(1)).Return(nil)

	w := performJSON(router, http.MethodDelete, "/api/history/9", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "History entry deleted")
}

func TestHistoryRecord_OK(t *testing.T) {
	svc := new(MockHistoryService)
	router := setupHistoryRouter(svc, 1)

	svc.On("Record", mock.Anything, int64(1), mock.AnythingOfType("*dto.RecordWatchRequest")).
		Return(&dto.WatchHistoryResponse{ID: 1, AnimeID: "A1", EpisodeID: "E1", EpisodeNumber: 1, Progress: 120}, nil)

	body := map[string]interface{}{"animeId": "A1", "episodeId": "E1", "episodeNumber": 1, "progress": 120}
	w := performJSON(router, http.MethodPost, "/api/history", body)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

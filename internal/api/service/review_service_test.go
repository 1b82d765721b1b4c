package service

import (
	"context"
	"testing"

	"aniview/internal/api/dto"
	"aniview/internal/api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// MockReviewRepository mocks the ReviewRepository interface
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(ctx context.Context, review *models.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) Update(ctx context.Context, review *models.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) GetByID(ctx context.Context, reviewID int64) (*models.Review, error) {
	args := m.Called(ctx, reviewID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *MockReviewRepository) GetByUserAndAnime(ctx context.Context, userID int64, animeID string) (*models.Review, error) {
	args := m.Called(ctx, userID, animeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *MockReviewRepository) ListByAnime(ctx context.Context, animeID, sortBy string, page, limit int) ([]models.Review, int64, error) {
	args := m.Called(ctx, animeID, sortBy, page, limit)
	return args.Get(0).([]models.Review), args.Get(1).(int64), args.Error(2)
}

func (m *MockReviewRepository) ListByUser(ctx context.Context, userID int64, page, limit int) ([]models.Review, int64, error) {
	args := m.Called(ctx, userID, page, limit)
	return args.Get(0).([]models.Review), args.Get(1).(int64), args.Error(2)
}

func (m *MockReviewRepository) DeleteWithVotes(ctx context.Context, reviewID int64) error {
	args := m.Called(ctx, reviewID)
	return args.Error(0)
}

func (m *MockReviewRepository) MarkReported(ctx context.Context, reviewID int64) error {
	args := m.Called(ctx, reviewID)
	return args.Error(0)
}

func (m *MockReviewRepository) Stats(ctx context.Context, animeID string) (float64, int64, error) {
	args := m.Called(ctx, animeID)
	return args.Get(0).(float64), args.Get(1).(int64), args.Error(2)
}

// MockVoteRepository mocks the VoteRepository interface
type MockVoteRepository struct {
	mock.Mock
}

func (m *MockVoteRepository) RecordVote(ctx context.Context, reviewID, userID int64, helpful bool) error {
	args := m.Called(ctx, reviewID, userID, helpful)
	return args.Error(0)
}

func (m *MockVoteRepository) CountByReview(ctx context.Context, reviewID int64) (int64, error) {
	args := m.Called(ctx, reviewID)
	return args.Get(0).(int64), args.Error(1)
}

func newReviewService(reviewRepo *MockReviewRepository, voteRepo *MockVoteRepository) ReviewService {
	// nil stats cache degrades to cache misses
	return NewReviewService(reviewRepo, voteRepo, nil)
}

func TestSubmit_RatingOutOfRange(t *testing.T) {
	reviewRepo := new(MockReviewRepository)
	svc := newReviewService(reviewRepo, new(MockVoteRepository))

	for _, rating := range []int{0, -1, 11, 100} {
		req := &dto.SubmitReviewRequest{AnimeID: "A1", AnimeTitle: "Title", Rating: rating}
		_, err := svc.Submit(context.Background(), 1, req)
		assert.ErrorIs(t, err, ErrInvalidRating)
	}

	// Rejected before any storage access
	reviewRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSubmit_RatingBoundaries(t *testing.T) {
	for _, rating := range []int{1, 10} {
		reviewRepo := new(MockReviewRepository)
		svc := newReviewService(reviewRepo, new(MockVoteRepository))

		reviewRepo.On("GetByUserAndAnime", mock.Anything, int64(1), "A1").
			Return(nil, gorm.ErrRecordNotFound)
		reviewRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Review")).
			Return(nil)

		req := &dto.SubmitReviewRequest{AnimeID: "A1", AnimeTitle: "Title", Rating: rating}
		resp, err := svc.Submit(context.Background(), 1, req)

		assert.NoError(t, err)
		assert.Equal(t, rating, resp.Rating)
		assert.Equal(t, 0, resp.Helpful)
		assert.False(t, resp.Reported)
		reviewRepo.AssertExpectations(t)
	}
}

func TestSubmit_Duplicate(t *testing.T) {
	reviewRepo := new(MockReviewRepository)
	svc := newReviewService(reviewRepo, new(MockVoteRepository))

	existing := &models.Review{ID: 5, UserID: 1, AnimeID: "A1", Rating: 8}
	reviewRepo.On("GetByUserAndAnime", mock.Anything, int64(1), "A1").
		Return(existing, nil)

	req := &dto.SubmitReviewRequest{AnimeID: "A1", AnimeTitle: "Title", Rating: 5}
	_, err := svc.Submit(context.Background(), 1, req)

	assert.ErrorIs(t, err, ErrDuplicateReview)
	reviewRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSubmit_DuplicateRaceSurfacesConflict(t *testing.T) {
	reviewRepo := new(MockReviewRepository)
	svc := newReviewService(reviewRepo, new(MockVoteRepository))

	// The pre-check misses, but the unique index catches the race on insert
	reviewRepo.On("GetByUserAndAnime", mock.Anything, int64(1), "A1").
		Return(nil, gorm.ErrRecordNotFound)
	reviewRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Review")).
		Return(gorm.ErrDuplicatedKey)

	req := &dto.SubmitReviewRequest{AnimeID: "A1", AnimeTitle: "Title", Rating: 8}
	_, err := svc.Submit(context.Background(), 1, req)

	assert.ErrorIs(t, err, ErrDuplicateReview)
}

func TestGetOwn_NotFound(t *testing.T) {
	reviewRepo := new(MockReviewRepository)
	svc := newReviewService(reviewRepo, new(MockVoteRepository))

	reviewRepo.On("GetByUserAndAnime", mock.Anything, int64(1), "A1").
		Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetOwn(context.Background(), 1, "A1")
	assert.ErrorIs(t, err, ErrReviewNotFound)
}

func TestUpdate_NotFound(t *testing.T) {
	reviewRepo := new(MockReviewRepository)
	svc := newReviewService(reviewRepo, new(MockVoteRepository))

	reviewRepo.On("GetByID", mock.Anything, int64(42)).
		Return(nil, gorm.ErrRecordNotFound)

	req := &dto.UpdateReviewRequest{Rating: 7}
	_, err := svc.Update(context.Background(), 42, 1, req)
	assert.ErrorIs(t, err, ErrReviewNotFound)
}

func TestUpdate_NotOwner(t *testing.T) {
	reviewRepo := new(MockReviewRepository)
	svc := newReviewService(reviewRepo, new(MockVoteRepository))

	reviewRepo.On("GetByID", mock.Anything, int64(42)).
		Return(&models.Review{ID: 42, UserID: 2, AnimeID: "A1", Rating: 8}, nil)

	req := &dto.UpdateReviewRequest{Rating: 7}
	_, err := svc.Update(context.Background(), 42, 1, req)

	assert.ErrorIs(t, err, ErrNotReviewOwner)
	reviewRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdate_PreservesHelpfulAndReported(t *testing.T) {
	reviewRepo := new(MockReviewRepository)
	svc := newReviewService(reviewRepo, new(MockVoteRepository))

	stored := &models.Review{ID: 42, UserID: 1, AnimeID: "A1", Rating: 8, Helpful: 3, Reported: true}
	reviewRepo.On("GetByID", mock.Anything, int64(42)).Return(stored, nil)
	reviewRepo.On("Update", mock.Anything, mock.AnythingOfType("*models.Review")).Return(nil)

	req := &dto.UpdateReviewRequest{Rating: 4, SpoilerWarning: true}
	resp, err := svc.Update(context.Background(), 42, 1, req)

	assert.NoError(t, err)
	assert.Equal(t, 4, resp.Rating)
	assert.Equal(t, 3, resp.Helpful)
	assert.True(t, resp.Reported)
}

func TestDelete_NotOwner(t *testing.T) {
	reviewRepo := new(MockReviewRepository)
	svc := newReviewService(reviewRepo, new(MockVoteRepository))

	reviewRepo.On("GetByID", mock.Anything, int64(42)).
		Return(&models.Review{ID: 42, UserID: 2, AnimeID: "A1"}, nil)

	err := svc.Delete(context.Background(), 42, 1)

	assert.ErrorIs(t, err, ErrNotReviewOwner)
	reviewRepo.AssertNotCalled(t, "DeleteWithVotes", mock.Anything, mock.Anything)
}

func TestDelete_RemovesVotesWithReview(t *testing.T) {
	reviewRepo := new(MockReviewRepository)
	svc := newReviewService(reviewRepo, new(MockVoteRepository))

	reviewRepo.On("GetByID", mock.Anything, int64(42)).
		Return(&models.Review{ID: 42, UserID: 1, AnimeID: "A1"}, nil)
	reviewRepo.On("DeleteWithVotes", mock.Anything, int64(42)).Return(nil)

	err := svc.Delete(context.Background(), 42, 1)

	assert.NoError(t, err)
	reviewRepo.AssertExpectations(t)
}

func TestVote_ReviewMissing(t *testing.T) {
	reviewRepo := new(MockReviewRepository)
	voteRepo := new(MockVoteRepository)
	svc := newReviewService(reviewRepo, voteRepo)

	reviewRepo.On("GetByID", mock.Anything, int64(10)).
		Return(nil, gorm.ErrRecordNotFound)

	err := svc.Vote(context.Background(), 10, 2, true)

	assert.ErrorIs(t, err, ErrReviewNotFound)
	voteRepo.AssertNotCalled(t, "RecordVote", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestVote_RecordsPerVoter(t *testing.T) {
	reviewRepo := new(MockReviewRepository)
	voteRepo := new(MockVoteRepository)
	svc := newReviewService(reviewRepo, voteRepo)

	reviewRepo.On("GetByID", mock.Anything, int64(10)).
		Return(&models.Review{ID: 10, UserID: 1, AnimeID: "A1"}, nil)
	voteRepo.On("RecordVote", mock.Anything, int64(10), int64(2), true).Return(nil)
	voteRepo.On("RecordVote", mock.Anything, int64(10), int64(2), false).Return(nil)

	// A flipped vote replaces the old one rather than stacking
	assert.NoError(t, svc.Vote(context.Background(), 10, 2, true))
	assert.NoError(t, svc.Vote(context.Background(), 10, 2, false))

	voteRepo.AssertExpectations(t)
}

func TestStats_NoReviews(t *testing.T) {
	reviewRepo := new(MockReviewRepository)
	svc := newReviewService(reviewRepo, new(MockVoteRepository))

	reviewRepo.On("Stats", mock.Anything, "A1").Return(float64(0), int64(0), nil)

	stats, err := svc.Stats(context.Background(), "A1")

	assert.NoError(t, err)
	assert.Equal(t, "0.0", stats.AverageRating)
	assert.Equal(t, int64(0), stats.TotalReviews)
}

func TestStats_OneDecimalPlace(t *testing.T) {
	reviewRepo := new(MockReviewRepository)
	svc := newReviewService(reviewRepo, new(MockVoteRepository))

	reviewRepo.On("Stats", mock.Anything, "A1").Return(7.666666, int64(3), nil)

	stats, err := svc.Stats(context.Background(), "A1")

	assert.NoError(t, err)
	assert.Equal(t, "7.7", stats.AverageRating)
	assert.Equal(t, int64(3), stats.TotalReviews)
}

func TestListByAnime_UnknownSortFallsBackToRecent(t *testing.T) {
	reviewRepo := new(MockReviewRepository)
	svc := newReviewService(reviewRepo, new(MockVoteRepository))

	reviewRepo.On("ListByAnime", mock.Anything, "A1", SortRecent, 1, 10).
		Return([]models.Review{}, int64(0), nil)

	_, err := svc.ListByAnime(context.Background(), "A1", "bogus", 1, 10)

	assert.NoError(t, err)
	reviewRepo.AssertExpectations(t)
}

func TestListByAnime_JoinsAuthorProfile(t *testing.T) {
	reviewRepo := new(MockReviewRepository)
	svc := newReviewService(reviewRepo, new(MockVoteRepository))

	reviews := []models.Review{
		{ID: 1, UserID: 7, AnimeID: "A1", Rating: 9, User: models.User{ID: 7, Username: "rei", AvatarID: "3"}},
	}
	reviewRepo.On("ListByAnime", mock.Anything, "A1", SortHelpful, 1, 10).
		Return(reviews, int64(1), nil)

	result, err := svc.ListByAnime(context.Background(), "A1", SortHelpful, 1, 10)

	assert.NoError(t, err)
	assert.Len(t, result.Reviews, 1)
	assert.Equal(t, "rei", result.Reviews[0].Username)
	assert.Equal(t, "3", result.Reviews[0].Avatar)
	assert.Equal(t, int64(1), result.Pagination.Total)
}

func TestListByUser_NoAuthorJoin(t *testing.T) {
	reviewRepo := new(MockReviewRepository)
	svc := newReviewService(reviewRepo, new(MockVoteRepository))

	reviews := []models.Review{
		{ID: 1, UserID: 7, AnimeID: "A1", Rating: 9},
		{ID: 2, UserID: 7, AnimeID: "A2", Rating: 6},
	}
	reviewRepo.On("ListByUser", mock.Anything, int64(7), 1, 10).
		Return(reviews, int64(2), nil)

	result, err := svc.ListByUser(context.Background(), 7, 1, 10)

	assert.NoError(t, err)
	assert.Len(t, result.Reviews, 2)
	assert.Empty(t, result.Reviews[0].Username)
}

func TestReport_Unconditional(t *testing.T) {
	reviewRepo := new(MockReviewRepository)
	svc := newReviewService(reviewRepo, new(MockVoteRepository))

	reviewRepo.On("MarkReported", mock.Anything, int64(99)).Return(nil)

	assert.NoError(t, svc.Report(context.Background(), 99))
	reviewRepo.AssertExpectations(t)
}

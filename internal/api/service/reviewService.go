package service

import (
	"context"
	"errors"
	"strconv"

	"aniview/internal/api/dto"
	"aniview/internal/api/models"
	"aniview/internal/api/repository"

	"gorm.io/gorm"
)

var (
	ErrInvalidRating   = errors.New("rating must be between 1 and 10")
	ErrDuplicateReview = errors.New("you have already reviewed this anime")
	ErrReviewNotFound  = errors.New("review not found")
	ErrNotReviewOwner  = errors.New("not authorized to modify this review")
)

// Review sort modes
const (
	SortRecent  = "recent"
	SortHelpful = "helpful"
)

type ReviewService interface {
	Submit(ctx context.Context, userID int64, req *dto.SubmitReviewRequest) (*dto.ReviewResponse, error)
	ListByAnime(ctx context.Context, animeID, sortBy string, page, limit int) (*dto.PaginatedReviewResponse, error)
	GetOwn(ctx context.Context, userID int64, animeID string) (*dto.ReviewResponse, error)
	Update(ctx context.Context, reviewID, userID int64, req *dto.UpdateReviewRequest) (*dto.ReviewResponse, error)
	Delete(ctx context.Context, reviewID, userID int64) error
	Vote(ctx context.Context, reviewID, userID int64, helpful bool) error
	Report(ctx context.Context, reviewID int64) error
	Stats(ctx context.Context, animeID string) (*dto.ReviewStatsResponse, error)
	ListByUser(ctx context.Context, userID int64, page, limit int) (*dto.PaginatedReviewResponse, error)
}

type reviewService struct {
	reviewRepo repository.ReviewRepository
	voteRepo   repository.VoteRepository
	statsCache *StatsCache
}

func NewReviewService(reviewRepo repository.ReviewRepository, voteRepo repository.VoteRepository, statsCache *StatsCache) ReviewService {
	return &reviewService{
		reviewRepo: reviewRepo,
		voteRepo:   voteRepo,
		statsCache: statsCache,
	}
}

// Submit creates a new review, at most one per (user, anime). The unique
// index backs the existence check, so a concurrent duplicate surfaces as
// gorm.ErrDuplicatedKey instead of a second row.
func (s *reviewService) Submit(ctx context.Context, userID int64, req *dto.SubmitReviewRequest) (*dto.ReviewResponse, error) {
	if req.Rating < 1 || req.Rating > 10 {
		return nil, ErrInvalidRating
	}

	if _, err := s.reviewRepo.GetByUserAndAnime(ctx, userID, req.AnimeID); err == nil {
		return nil, ErrDuplicateReview
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	review := &models.Review{
		UserID:         userID,
		AnimeID:        req.AnimeID,
		AnimeTitle:     req.AnimeTitle,
		Rating:         req.Rating,
		ReviewText:     req.ReviewText,
		SpoilerWarning: req.SpoilerWarning,
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateReview
		}
		return nil, err
	}

	s.statsCache.Invalidate(ctx, req.AnimeID)

	return dto.FromModelToReviewResponse(review), nil
}

// ListByAnime retrieves a page of reviews with the author profile joined in
func (s *reviewService) ListByAnime(ctx context.Context, animeID, sortBy string, page, limit int) (*dto.PaginatedReviewResponse, error) {
	if sortBy != SortHelpful {
		sortBy = SortRecent
	}

	reviews, total, err := s.reviewRepo.ListByAnime(ctx, animeID, sortBy, page, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		responses = append(responses, *dto.FromModelToReviewWithAuthor(&review))
	}

	return &dto.PaginatedReviewResponse{
		Reviews:    responses,
		Pagination: dto.NewPagination(total, page, limit),
	}, nil
}

// GetOwn retrieves the caller's review for an anime
func (s *reviewService) GetOwn(ctx context.Context, userID int64, animeID string) (*dto.ReviewResponse, error) {
	review, err := s.reviewRepo.GetByUserAndAnime(ctx, userID, animeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}

	return dto.FromModelToReviewResponse(review), nil
}

// Update overwrites rating/text/spoiler on the caller's own review. The
// cached helpful count and the reported flag are untouched.
func (s *reviewService) Update(ctx context.Context, reviewID, userID int64, req *dto.UpdateReviewRequest) (*dto.ReviewResponse, error) {
	if req.Rating < 1 || req.Rating > 10 {
		return nil, ErrInvalidRating
	}

	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}

	if review.UserID != userID {
		return nil, ErrNotReviewOwner
	}

	review.Rating = req.Rating
	review.ReviewText = req.ReviewText
	review.SpoilerWarning = req.SpoilerWarning

	if err := s.reviewRepo.Update(ctx, review); err != nil {
		return nil, err
	}

	s.statsCache.Invalidate(ctx, review.AnimeID)

	return dto.FromModelToReviewResponse(review), nil
}

// Delete removes the caller's own review together with all of its votes
func (s *reviewService) Delete(ctx context.Context, reviewID, userID int64) error {
	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReviewNotFound
		}
		return err
	}

	if review.UserID != userID {
		return ErrNotReviewOwner
	}

	if err := s.reviewRepo.DeleteWithVotes(ctx, reviewID); err != nil {
		return err
	}

	s.statsCache.Invalidate(ctx, review.AnimeID)
	return nil
}

// Vote records the caller's helpful/not-helpful judgment. Voting again flips
// the existing vote rather than adding a second one, and the review's cached
// count converges to the true count of helpful votes.
func (s *reviewService) Vote(ctx context.Context, reviewID, userID int64, helpful bool) error {
	if _, err := s.reviewRepo.GetByID(ctx, reviewID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReviewNotFound
		}
		return err
	}

	return s.voteRepo.RecordVote(ctx, reviewID, userID, helpful)
}

// Report flags a review for moderation. Any authenticated user may flag any
// review; flagging a missing review is a no-op.
func (s *reviewService) Report(ctx context.Context, reviewID int64) error {
	return s.reviewRepo.MarkReported(ctx, reviewID)
}

// Stats returns the average rating (one decimal place, "0.0" when no reviews
// exist) and the review count for an anime.
func (s *reviewService) Stats(ctx context.Context, animeID string) (*dto.ReviewStatsResponse, error) {
	if cached, ok := s.statsCache.Get(ctx, animeID); ok {
		return cached, nil
	}

	avg, total, err := s.reviewRepo.Stats(ctx, animeID)
	if err != nil {
		return nil, err
	}

	stats := &dto.ReviewStatsResponse{
		AverageRating: strconv.FormatFloat(avg, 'f', 1, 64),
		TotalReviews:  total,
	}

	s.statsCache.Set(ctx, animeID, stats)
	return stats, nil
}

// ListByUser retrieves one user's reviews across all anime, newest first.
// No author join; every result shares one author.
func (s *reviewService) ListByUser(ctx context.Context, userID int64, page, limit int) (*dto.PaginatedReviewResponse, error) {
	reviews, total, err := s.reviewRepo.ListByUser(ctx, userID, page, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		responses = append(responses, *dto.FromModelToReviewResponse(&review))
	}

	return &dto.PaginatedReviewResponse{
		Reviews:    responses,
		Pagination: dto.NewPagination(total, page, limit),
	}, nil
}

package repository

import (
	"context"

	"aniview/internal/api/models"

	"gorm.io/gorm"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	Update(ctx context.Context, review *models.Review) error
	GetByID(ctx context.Context, reviewID int64) (*models.Review, error)
	GetByUserAndAnime(ctx context.Context, userID int64, animeID string) (*models.Review, error)
	ListByAnime(ctx context.Context, animeID, sortBy string, page, limit int) ([]models.Review, int64, error)
	ListByUser(ctx context.Context, userID int64, page, limit int) ([]models.Review, int64, error)
	DeleteWithVotes(ctx context.Context, reviewID int64) error
	MarkReported(ctx context.Context, reviewID int64) error
	Stats(ctx context.Context, animeID string) (float64, int64, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

// Create a new review
func (r *reviewRepository) Create(ctx context.Context, review *models.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

// Update an existing review
func (r *reviewRepository) Update(ctx context.Context, review *models.Review) error {
	return r.db.WithContext(ctx).Save(review).Error
}

// GetByID retrieves a review by its ID
func (r *reviewRepository) GetByID(ctx context.Context, reviewID int64) (*models.Review, error) {
	var review models.Review
	if err := r.db.WithContext(ctx).First(&review, reviewID).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

// GetByUserAndAnime retrieves a user's review for a specific anime
func (r *reviewRepository) GetByUserAndAnime(ctx context.Context, userID int64, animeID string) (*models.Review, error) {
	var review models.Review
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND anime_id = ?", userID, animeID).
		First(&review).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// ListByAnime retrieves reviews for an anime with the author profile joined
// in. Ties within a sort key fall back to storage order, which is not
// guaranteed stable.
func (r *reviewRepository) ListByAnime(ctx context.Context, animeID, sortBy string, page, limit int) ([]models.Review, int64, error) {
	var reviews []models.Review
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Review{}).Where("anime_id = ?", animeID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := "created_at DESC"
	if sortBy == "helpful" {
		order = "helpful DESC"
	}

	offset := (page - 1) * limit
	err := r.db.WithContext(ctx).
		Where("anime_id = ?", animeID).
		Preload("User").
		Order(order).
		Limit(limit).
		Offset(offset).
		Find(&reviews).Error
	if err != nil {
		return nil, 0, err
	}

	return reviews, total, nil
}

// ListByUser retrieves one user's reviews across all anime, newest first
func (r *reviewRepository) ListByUser(ctx context.Context, userID int64, page, limit int) ([]models.Review, int64, error) {
	var reviews []models.Review
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Review{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&reviews).Error
	if err != nil {
		return nil, 0, err
	}

	return reviews, total, nil
}

// DeleteWithVotes removes a review and its votes in one transaction, votes
// first so an aborted sequence cannot leave orphaned votes behind.
func (r *reviewRepository) DeleteWithVotes(ctx context.Context, reviewID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("review_id = ?", reviewID).Delete(&models.ReviewVote{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Review{}, reviewID).Error
	})
}

// MarkReported flags a review for moderation. Deliberately not an error when
// the review does not exist.
func (r *reviewRepository) MarkReported(ctx context.Context, reviewID int64) error {
	return r.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("id = ?", reviewID).
		Update("reported", true).Error
}

// Stats returns the average rating and review count for an anime
func (r *reviewRepository) Stats(ctx context.Context, animeID string) (float64, int64, error) {
	var result struct {
		Average float64
		Total   int64
	}

	err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) as average, COUNT(*) as total").
		Where("anime_id = ?", animeID).
		Scan(&result).Error
	if err != nil {
		return 0, 0, err
	}

	return result.Average, result.Total, nil
}

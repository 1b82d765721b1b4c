package dto

import (
	"time"

	"aniview/internal/api/models"
)

// SubmitReviewRequest for creating a review
type SubmitReviewRequest struct {
	AnimeID        string  `json:"animeId" binding:"required"`
	AnimeTitle     string  `json:"animeTitle" binding:"required"`
	Rating         int     `json:"rating"`
	ReviewText     *string `json:"reviewText"`
	SpoilerWarning bool    `json:"spoilerWarning"`
}

// UpdateReviewRequest for overwriting rating/text/spoiler flag
type UpdateReviewRequest struct {
	Rating         int     `json:"rating"`
	ReviewText     *string `json:"reviewText"`
	SpoilerWarning bool    `json:"spoilerWarning"`
}

// VoteRequest marks a review helpful or not-helpful. Pointer so that
// `helpful: false` still passes the required binding.
type VoteRequest struct {
	Helpful *bool `json:"helpful" binding:"required"`
}

// ReviewResponse for returning a stored review; Username/Avatar are only
// populated on the per-anime listing, where the author profile is joined in.
type ReviewResponse struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"userId"`
	Username       string    `json:"username,omitempty"`
	Avatar         string    `json:"avatar,omitempty"`
	AnimeID        string    `json:"animeId"`
	AnimeTitle     string    `json:"animeTitle"`
	Rating         int       `json:"rating"`
	ReviewText     *string   `json:"reviewText"`
	SpoilerWarning bool      `json:"spoilerWarning"`
	Helpful        int       `json:"helpful"`
	Reported       bool      `json:"reported"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// FromModelToReviewResponse converts a Review model to ReviewResponse
func FromModelToReviewResponse(review *models.Review) *ReviewResponse {
	return &ReviewResponse{
		ID:             review.ID,
		UserID:         review.UserID,
		AnimeID:        review.AnimeID,
		AnimeTitle:     review.AnimeTitle,
		Rating:         review.Rating,
		ReviewText:     review.ReviewText,
		SpoilerWarning: review.SpoilerWarning,
		Helpful:        review.Helpful,
		Reported:       review.Reported,
		CreatedAt:      review.CreatedAt,
		UpdatedAt:      review.UpdatedAt,
	}
}

// FromModelToReviewWithAuthor additionally carries the joined author profile
func FromModelToReviewWithAuthor(review *models.Review) *ReviewResponse {
	resp := FromModelToReviewResponse(review)
	resp.Username = review.User.Username
	resp.Avatar = review.User.AvatarID
	return resp
}

// PaginatedReviewResponse for returning a page of reviews
type PaginatedReviewResponse struct {
	Reviews    []ReviewResponse `json:"reviews"`
	Pagination Pagination       `json:"pagination"`
}

// ReviewStatsResponse carries the aggregate rating for one anime. The average
// is formatted to one decimal place, "0.0" when no reviews exist.
type ReviewStatsResponse struct {
	AverageRating string `json:"averageRating"`
	TotalReviews  int64  `json:"totalReviews"`
}

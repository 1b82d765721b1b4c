package repository

import (
	"context"

	"aniview/internal/api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VoteRepository interface {
	RecordVote(ctx context.Context, reviewID, userID int64, helpful bool) error
	CountByReview(ctx context.Context, reviewID int64) (int64, error)
}

type voteRepository struct {
	db *gorm.DB
}

func NewVoteRepository(db *gorm.DB) VoteRepository {
	return &voteRepository{db: db}
}

// RecordVote upserts the caller's vote and rewrites the review's cached
// helpful count from a full re-aggregation, all in one transaction. The
// recount rather than an increment keeps the stored count convergent under
// concurrent voters, and the unique (review_id, user_id) index makes the
// upsert atomic instead of a racy lookup-then-insert.
func (r *voteRepository) RecordVote(ctx context.Context, reviewID, userID int64, helpful bool) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		vote := models.ReviewVote{
			ReviewID: reviewID,
			UserID:   userID,
			Helpful:  helpful,
		}
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "review_id"}, {Name: "user_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"helpful": helpful}),
		}).Create(&vote).Error
		if err != nil {
			return err
		}

		var helpfulCount int64
		err = tx.Model(&models.ReviewVote{}).
			Where("review_id = ? AND helpful = ?", reviewID, true).
			Count(&helpfulCount).Error
		if err != nil {
			return err
		}

		return tx.Model(&models.Review{}).
			Where("id = ?", reviewID).
			Update("helpful", helpfulCount).Error
	})
}

// CountByReview counts all votes on a review, helpful or not
func (r *voteRepository) CountByReview(ctx context.Context, reviewID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.ReviewVote{}).
		Where("review_id = ?", reviewID).
		Count(&count).Error
	return count, err
}

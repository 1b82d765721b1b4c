package models

import "time"

// ReviewVote is one user's helpful/not-helpful judgment on a review. The
// composite unique index makes the per-voter upsert a storage guarantee.
type ReviewVote struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ReviewID  int64     `gorm:"not null;index;uniqueIndex:idx_votes_review_user" json:"reviewId"`
	UserID    int64     `gorm:"not null;uniqueIndex:idx_votes_review_user" json:"userId"`
	Helpful   bool      `gorm:"not null" json:"helpful"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (ReviewVote) TableName() string {
	return "review_votes"
}

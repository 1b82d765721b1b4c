package models

import "time"

// Review is one user's evaluation of one anime title. AnimeTitle is copied
// from the catalog at creation time and not kept in sync afterwards. Helpful
// caches the count of helpful=true votes and is rewritten after every vote.
type Review struct {
	ID             int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID         int64     `gorm:"not null;index;uniqueIndex:idx_reviews_user_anime" json:"userId"`
	AnimeID        string    `gorm:"not null;index;uniqueIndex:idx_reviews_user_anime" json:"animeId"`
	AnimeTitle     string    `gorm:"not null" json:"animeTitle"`
	Rating         int       `gorm:"not null;check:rating >= 1 AND rating <= 10" json:"rating"`
	ReviewText     *string   `gorm:"type:text" json:"reviewText"`
	SpoilerWarning bool      `gorm:"default:false" json:"spoilerWarning"`
	Helpful        int       `gorm:"default:0" json:"helpful"`
	Reported       bool      `gorm:"default:false" json:"reported"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;" json:"user,omitempty"`
}

func (Review) TableName() string {
	return "anime_reviews"
}

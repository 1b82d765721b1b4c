package models

import "time"

type Favorite struct {
	ID      int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID  int64     `gorm:"not null;index;uniqueIndex:idx_favorites_user_anime" json:"userId"`
	AnimeID string    `gorm:"not null;uniqueIndex:idx_favorites_user_anime" json:"animeId"`
	Title   string    `gorm:"not null" json:"title"`
	Poster  string    `json:"poster"`
	AddedAt time.Time `gorm:"autoCreateTime" json:"addedAt"`
}

func (Favorite) TableName() string {
	return "favorites"
}

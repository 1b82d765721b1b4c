package models

import "time"

// WatchHistory records one user's progress through one episode. Re-watching
// the same episode updates the row in place.
type WatchHistory struct {
	ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID        int64     `gorm:"not null;index;uniqueIndex:idx_history_user_episode" json:"userId"`
	AnimeID       string    `gorm:"not null;index" json:"animeId"`
	EpisodeID     string    `gorm:"not null;uniqueIndex:idx_history_user_episode" json:"episodeId"`
	EpisodeNumber int       `gorm:"not null" json:"episodeNumber"`
	Progress      int       `gorm:"default:0" json:"progress"` // seconds into the episode
	Completed     bool      `gorm:"default:false" json:"completed"`
	WatchedAt     time.Time `gorm:"autoUpdateTime" json:"watchedAt"`
}

func (WatchHistory) TableName() string {
	return "watch_history"
}

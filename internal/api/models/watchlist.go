package models

import "time"

// Watchlist statuses
const (
	StatusWatching    = "watching"
	StatusCompleted   = "completed"
	StatusOnHold      = "on_hold"
	StatusDropped     = "dropped"
	StatusPlanToWatch = "plan_to_watch"
)

type WatchlistEntry struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64     `gorm:"not null;index;uniqueIndex:idx_watchlist_user_anime" json:"userId"`
	AnimeID   string    `gorm:"not null;uniqueIndex:idx_watchlist_user_anime" json:"animeId"`
	Title     string    `gorm:"not null" json:"title"`
	Poster    string    `json:"poster"`
	Status    string    `gorm:"default:'plan_to_watch'" json:"status"`
	AddedAt   time.Time `gorm:"autoCreateTime" json:"addedAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (WatchlistEntry) TableName() string {
	return "watchlist"
}

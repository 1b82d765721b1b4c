package dto

import (
	"time"

	"aniview/internal/api/models"
)

type AddWatchlistRequest struct {
	AnimeID string `json:"animeId" binding:"required"`
	Title   string `json:"title" binding:"required"`
	Poster  string `json:"poster"`
	Status  string `json:"status"`
}

type UpdateWatchlistRequest struct {
	Status string `json:"status" binding:"required"`
}

type WatchlistResponse struct {
	ID        int64     `json:"id"`
	AnimeID   string    `json:"animeId"`
	Title     string    `json:"title"`
	Poster    string    `json:"poster"`
	Status    string    `json:"status"`
	AddedAt   time.Time `json:"addedAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromModelToWatchlistResponse(entry *models.WatchlistEntry) *WatchlistResponse {
	return &WatchlistResponse{
		ID:        entry.ID,
		AnimeID:   entry.AnimeID,
		Title:     entry.Title,
		Poster:    entry.Poster,
		Status:    entry.Status,
		AddedAt:   entry.AddedAt,
		UpdatedAt: entry.UpdatedAt,
	}
}

type PaginatedWatchlistResponse struct {
	Watchlist  []WatchlistResponse `json:"watchlist"`
	Pagination Pagination          `json:"pagination"`
}

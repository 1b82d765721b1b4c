package dto

import (
	"time"

	"aniview/internal/api/models"
)

// RecordWatchRequest upserts one episode's watch progress
type RecordWatchRequest struct {
	AnimeID       string `json:"animeId" binding:"required"`
	EpisodeID     string `json:"episodeId" binding:"required"`
	EpisodeNumber int    `json:"episodeNumber" binding:"required,min=1"`
	Progress      int    `json:"progress" binding:"min=0"`
	Completed     bool   `json:"completed"`
}

type WatchHistoryResponse struct {
	ID            int64     `json:"id"`
	AnimeID       string    `json:"animeId"`
	EpisodeID     string    `json:"episodeId"`
	EpisodeNumber int       `json:"episodeNumber"`
	Progress      int       `json:"progress"`
	Completed     bool      `json:"completed"`
	WatchedAt     time.Time `json:"watchedAt"`
}

func FromModelToWatchHistoryResponse(entry *models.WatchHistory) *WatchHistoryResponse {
	return &WatchHistoryResponse{
		ID:            entry.ID,
		AnimeID:       entry.AnimeID,
		EpisodeID:     entry.EpisodeID,
		EpisodeNumber: entry.EpisodeNumber,
		Progress:      entry.Progress,
		Completed:     entry.Completed,
		WatchedAt:     entry.WatchedAt,
	}
}

type PaginatedWatchHistoryResponse struct {
	History    []WatchHistoryResponse `json:"history"`
	Pagination Pagination             `json:"pagination"`
}

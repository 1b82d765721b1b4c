package dto

import (
	"time"

	"aniview/internal/api/models"
)

type CreatePartyRequest struct {
	AnimeID         string `json:"animeId" binding:"required"`
	AnimeTitle      string `json:"animeTitle" binding:"required"`
	EpisodeID       string `json:"episodeId" binding:"required"`
	EpisodeNumber   int    `json:"episodeNumber" binding:"required,min=1"`
	MaxParticipants int    `json:"maxParticipants"`
	IsPublic        *bool  `json:"isPublic"`
}

type WatchPartyResponse struct {
	ID              int64     `json:"id"`
	HostID          int64     `json:"hostId"`
	HostUsername    string    `json:"hostUsername,omitempty"`
	RoomCode        string    `json:"roomCode"`
	AnimeID         string    `json:"animeId"`
	AnimeTitle      string    `json:"animeTitle"`
	EpisodeID       string    `json:"episodeId"`
	EpisodeNumber   int       `json:"episodeNumber"`
	IsActive        bool      `json:"isActive"`
	MaxParticipants int       `json:"maxParticipants"`
	IsPublic        bool      `json:"isPublic"`
	Participants    int       `json:"participants"`
	CreatedAt       time.Time `json:"createdAt"`
}

func FromModelToWatchPartyResponse(party *models.WatchParty, participants int) *WatchPartyResponse {
	return &WatchPartyResponse{
		ID:              party.ID,
		HostID:          party.HostID,
		HostUsername:    party.Host.Username,
		RoomCode:        party.RoomCode,
		AnimeID:         party.AnimeID,
		AnimeTitle:      party.AnimeTitle,
		EpisodeID:       party.EpisodeID,
		EpisodeNumber:   party.EpisodeNumber,
		IsActive:        party.IsActive,
		MaxParticipants: party.MaxParticipants,
		IsPublic:        party.IsPublic,
		Participants:    participants,
		CreatedAt:       party.CreatedAt,
	}
}

type PaginatedPartyResponse struct {
	Parties    []WatchPartyResponse `json:"parties"`
	Pagination Pagination           `json:"pagination"`
}

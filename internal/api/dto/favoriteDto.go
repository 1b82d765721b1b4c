package dto

import (
	"time"

	"aniview/internal/api/models"
)

type AddFavoriteRequest struct {
	AnimeID string `json:"animeId" binding:"required"`
	Title   string `json:"title" binding:"required"`
	Poster  string `json:"poster"`
}

type FavoriteResponse struct {
	ID      int64     `json:"id"`
	AnimeID string    `json:"animeId"`
	Title   string    `json:"title"`
	Poster  string    `json:"poster"`
	AddedAt time.Time `json:"addedAt"`
}

func FromModelToFavoriteResponse(fav *models.Favorite) *FavoriteResponse {
	return &FavoriteResponse{
		ID:      fav.ID,
		AnimeID: fav.AnimeID,
		Title:   fav.Title,
		Poster:  fav.Poster,
		AddedAt: fav.AddedAt,
	}
}

type PaginatedFavoriteResponse struct {
	Favorites  []FavoriteResponse `json:"favorites"`
	Pagination Pagination         `json:"pagination"`
}

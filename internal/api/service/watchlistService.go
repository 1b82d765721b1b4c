package service

import (
	"context"
	"errors"

	"aniview/internal/api/dto"
	"aniview/internal/api/models"
	"aniview/internal/api/repository"

	"gorm.io/gorm"
)

var (
	ErrInvalidStatus      = errors.New("invalid watchlist status")
	ErrAlreadyInWatchlist = errors.New("anime already in watchlist")
	ErrWatchlistNotFound  = errors.New("watchlist entry not found")
)

var validStatuses = map[string]bool{
	models.StatusWatching:    true,
	models.StatusCompleted:   true,
	models.StatusOnHold:      true,
	models.StatusDropped:     true,
	models.StatusPlanToWatch: true,
}

type WatchlistService interface {
	Add(ctx context.Context, userID int64, req *dto.AddWatchlistRequest) (*dto.WatchlistResponse, error)
	UpdateStatus(ctx context.Context, userID int64, animeID, status string) (*dto.WatchlistResponse, error)
	List(ctx context.Context, userID int64, status string, page, limit int) (*dto.PaginatedWatchlistResponse, error)
	Remove(ctx context.Context, userID int64, animeID string) error
}

type watchlistService struct {
	watchlistRepo repository.WatchlistRepository
}

func NewWatchlistService(watchlistRepo repository.WatchlistRepository) WatchlistService {
	return &watchlistService{watchlistRepo: watchlistRepo}
}

func (s *watchlistService) Add(ctx context.Context, userID int64, req *dto.AddWatchlistRequest) (*dto.WatchlistResponse, error) {
	status := req.Status
	if status == "" {
		status = models.StatusPlanToWatch
	}
	if !validStatuses[status] {
		return nil, ErrInvalidStatus
	}

	if _, err := s.watchlistRepo.Get(ctx, userID, req.AnimeID); err == nil {
		return nil, ErrAlreadyInWatchlist
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	entry := &models.WatchlistEntry{
		UserID:  userID,
		AnimeID: req.AnimeID,
		Title:   req.Title,
		Poster:  req.Poster,
		Status:  status,
	}

	if err := s.watchlistRepo.Create(ctx, entry); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyInWatchlist
		}
		return nil, err
	}

	return dto.FromModelToWatchlistResponse(entry), nil
}

func (s *watchlistService) UpdateStatus(ctx context.Context, userID int64, animeID, status string) (*dto.WatchlistResponse, error) {
	if !validStatuses[status] {
		return nil, ErrInvalidStatus
	}

	entry, err := s.watchlistRepo.Get(ctx, userID, animeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWatchlistNotFound
		}
		return nil, err
	}

	entry.Status = status
	if err := s.watchlistRepo.Update(ctx, entry); err != nil {
		return nil, err
	}

	return dto.FromModelToWatchlistResponse(entry), nil
}

func (s *watchlistService) List(ctx context.Context, userID int64, status string, page, limit int) (*dto.PaginatedWatchlistResponse, error) {
	if status != "" && !validStatuses[status] {
		return nil, ErrInvalidStatus
	}

	entries, total, err := s.watchlistRepo.ListByUser(ctx, userID, status, page, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.WatchlistResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, *dto.FromModelToWatchlistResponse(&entry))
	}

	return &dto.PaginatedWatchlistResponse{
		Watchlist:  responses,
		Pagination: dto.NewPagination(total, page, limit),
	}, nil
}

func (s *watchlistService) Remove(ctx context.Context, userID int64, animeID string) error {
	if err := s.watchlistRepo.Delete(ctx, userID, animeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrWatchlistNotFound
		}
		return err
	}
	return nil
}

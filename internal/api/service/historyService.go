package service

import (
	"context"
	"errors"

	"aniview/internal/api/dto"
	"aniview/internal/api/models"
	"aniview/internal/api/repository"

	"gorm.io/gorm"
)

var ErrHistoryNotFound = errors.New("history entry not found")

type HistoryService interface {
	Record(ctx context.Context, userID int64, req *dto.RecordWatchRequest) (*dto.WatchHistoryResponse, error)
	List(ctx context.Context, userID int64, page, limit int) (*dto.PaginatedWatchHistoryResponse, error)
	Delete(ctx context.Context, entryID, userID int64) error
	Clear(ctx context.Context, userID int64) error
}

type historyService struct {
	historyRepo repository.HistoryRepository
}

func NewHistoryService(historyRepo repository.HistoryRepository) HistoryService {
	return &historyService{historyRepo: historyRepo}
}

// Record upserts one episode's watch progress
func (s *historyService) Record(ctx context.Context, userID int64, req *dto.RecordWatchRequest) (*dto.WatchHistoryResponse, error) {
	entry := &models.WatchHistory{
		UserID:        userID,
		AnimeID:       req.AnimeID,
		EpisodeID:     req.EpisodeID,
		EpisodeNumber: req.EpisodeNumber,
		Progress:      req.Progress,
		Completed:     req.Completed,
	}

	if err := s.historyRepo.Upsert(ctx, entry); err != nil {
		return nil, err
	}

	return dto.FromModelToWatchHistoryResponse(entry), nil
}

func (s *historyService) List(ctx context.Context, userID int64, page, limit int) (*dto.PaginatedWatchHistoryResponse, error) {
	entries, total, err := s.historyRepo.ListByUser(ctx, userID, page, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.WatchHistoryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, *dto.FromModelToWatchHistoryResponse(&entry))
	}

	return &dto.PaginatedWatchHistoryResponse{
		History:    responses,
		Pagination: dto.NewPagination(total, page, limit),
	}, nil
}

func (s *historyService) Delete(ctx context.Context, entryID, userID int64) error {
	if err := s.historyRepo.Delete(ctx, entryID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrHistoryNotFound
		}
		return err
	}
	return nil
}

func (s *historyService) Clear(ctx context.Context, userID int64) error {
	return s.historyRepo.Clear(ctx, userID)
}

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
	ErrAlreadyFavorite  = errors.New("anime already in favorites")
	ErrFavoriteNotFound = errors.New("favorite not found")
)

type FavoriteService interface {
	Add(ctx context.Context, userID int64, req *dto.AddFavoriteRequest) (*dto.FavoriteResponse, error)
	Get(ctx context.Context, userID int64, animeID string) (*dto.FavoriteResponse, error)
	List(ctx context.Context, userID int64, page, limit int) (*dto.PaginatedFavoriteResponse, error)
	Remove(ctx context.Context, userID int64, animeID string) error
}

type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
}

func NewFavoriteService(favoriteRepo repository.FavoriteRepository) FavoriteService {
	return &favoriteService{favoriteRepo: favoriteRepo}
}

func (s *favoriteService) Add(ctx context.Context, userID int64, req *dto.AddFavoriteRequest) (*dto.FavoriteResponse, error) {
	exists, err := s.favoriteRepo.Exists(ctx, userID, req.AnimeID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyFavorite
	}

	fav := &models.Favorite{
		UserID:  userID,
		AnimeID: req.AnimeID,
		Title:   req.Title,
		Poster:  req.Poster,
	}

	if err := s.favoriteRepo.Create(ctx, fav); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyFavorite
		}
		return nil, err
	}

	return dto.FromModelToFavoriteResponse(fav), nil
}

func (s *favoriteService) Get(ctx context.Context, userID int64, animeID string) (*dto.FavoriteResponse, error) {
	fav, err := s.favoriteRepo.Get(ctx, userID, animeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFavoriteNotFound
		}
		return nil, err
	}

	return dto.FromModelToFavoriteResponse(fav), nil
}

func (s *favoriteService) List(ctx context.Context, userID int64, page, limit int) (*dto.PaginatedFavoriteResponse, error) {
	favorites, total, err := s.favoriteRepo.ListByUser(ctx, userID, page, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.FavoriteResponse, 0, len(favorites))
	for _, fav := range favorites {
		responses = append(responses, *dto.FromModelToFavoriteResponse(&fav))
	}

	return &dto.PaginatedFavoriteResponse{
		Favorites:  responses,
		Pagination: dto.NewPagination(total, page, limit),
	}, nil
}

func (s *favoriteService) Remove(ctx context.Context, userID int64, animeID string) error {
	if err := s.favoriteRepo.Delete(ctx, userID, animeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFavoriteNotFound
		}
		return err
	}
	return nil
}

package repository

import (
	"context"

	"aniview/internal/api/models"

	"gorm.io/gorm"
)

type WatchlistRepository interface {
	Create(ctx context.Context, entry *models.WatchlistEntry) error
	Get(ctx context.Context, userID int64, animeID string) (*models.WatchlistEntry, error)
	Update(ctx context.Context, entry *models.WatchlistEntry) error
	ListByUser(ctx context.Context, userID int64, status string, page, limit int) ([]models.WatchlistEntry, int64, error)
	Delete(ctx context.Context, userID int64, animeID string) error
}

type watchlistRepository struct {
	db *gorm.DB
}

func NewWatchlistRepository(db *gorm.DB) WatchlistRepository {
	return &watchlistRepository{db: db}
}

func (r *watchlistRepository) Create(ctx context.Context, entry *models.WatchlistEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *watchlistRepository) Get(ctx context.Context, userID int64, animeID string) (*models.WatchlistEntry, error) {
	var entry models.WatchlistEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND anime_id = ?", userID, animeID).
		First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *watchlistRepository) Update(ctx context.Context, entry *models.WatchlistEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

// ListByUser retrieves the watchlist, optionally filtered by status
func (r *watchlistRepository) ListByUser(ctx context.Context, userID int64, status string, page, limit int) ([]models.WatchlistEntry, int64, error) {
	var entries []models.WatchlistEntry
	var total int64

	query := r.db.WithContext(ctx).Model(&models.WatchlistEntry{}).Where("user_id = ?", userID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.
		Order("updated_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&entries).Error
	if err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}

func (r *watchlistRepository) Delete(ctx context.Context, userID int64, animeID string) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND anime_id = ?", userID, animeID).
		Delete(&models.WatchlistEntry{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

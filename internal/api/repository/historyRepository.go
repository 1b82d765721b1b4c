package repository

import (
	"context"
	"time"

	"aniview/internal/api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type HistoryRepository interface {
	Upsert(ctx context.Context, entry *models.WatchHistory) error
	ListByUser(ctx context.Context, userID int64, page, limit int) ([]models.WatchHistory, int64, error)
	Delete(ctx context.Context, entryID, userID int64) error
	Clear(ctx context.Context, userID int64) error
}

type historyRepository struct {
	db *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) HistoryRepository {
	return &historyRepository{db: db}
}

// Upsert records episode progress; re-watching the same episode updates the
// existing row instead of adding a second one.
func (r *historyRepository) Upsert(ctx context.Context, entry *models.WatchHistory) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "episode_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"episode_number": entry.EpisodeNumber,
			"progress":       entry.Progress,
			"completed":      entry.Completed,
			"watched_at":     time.Now(),
		}),
	}).Create(entry).Error
}

// ListByUser retrieves the user's history, most recently watched first
func (r *historyRepository) ListByUser(ctx context.Context, userID int64, page, limit int) ([]models.WatchHistory, int64, error) {
	var entries []models.WatchHistory
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.WatchHistory{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("watched_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&entries).Error
	if err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}

// Delete removes one history entry (only if the user owns it)
func (r *historyRepository) Delete(ctx context.Context, entryID, userID int64) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", entryID, userID).
		Delete(&models.WatchHistory{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Clear wipes the user's entire history
func (r *historyRepository) Clear(ctx context.Context, userID int64) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.WatchHistory{}).Error
}

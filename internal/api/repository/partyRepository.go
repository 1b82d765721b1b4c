package repository

import (
	"context"
	"time"

	"aniview/internal/api/models"

	"gorm.io/gorm"
)

type PartyRepository interface {
	Create(ctx context.Context, party *models.WatchParty) error
	Update(ctx context.Context, party *models.WatchParty) error
	GetByRoomCode(ctx context.Context, roomCode string) (*models.WatchParty, error)
	ListPublicActive(ctx context.Context, page, limit int) ([]models.WatchParty, int64, error)
	AddParticipant(ctx context.Context, participant *models.WatchPartyParticipant) error
	GetActiveParticipant(ctx context.Context, partyID, userID int64) (*models.WatchPartyParticipant, error)
	CountActiveParticipants(ctx context.Context, partyID int64) (int64, error)
	CountActiveByParty(ctx context.Context, partyIDs []int64) (map[int64]int64, error)
	MarkLeft(ctx context.Context, partyID, userID int64) error
}

type partyRepository struct {
	db *gorm.DB
}

func NewPartyRepository(db *gorm.DB) PartyRepository {
	return &partyRepository{db: db}
}

func (r *partyRepository) Create(ctx context.Context, party *models.WatchParty) error {
	return r.db.WithContext(ctx).Create(party).Error
}

func (r *partyRepository) Update(ctx context.Context, party *models.WatchParty) error {
	return r.db.WithContext(ctx).Save(party).Error
}

func (r *partyRepository) GetByRoomCode(ctx context.Context, roomCode string) (*models.WatchParty, error) {
	var party models.WatchParty
	err := r.db.WithContext(ctx).
		Where("room_code = ?", roomCode).
		Preload("Host").
		First(&party).Error
	if err != nil {
		return nil, err
	}
	return &party, nil
}

func (r *partyRepository) ListPublicActive(ctx context.Context, page, limit int) ([]models.WatchParty, int64, error) {
	var parties []models.WatchParty
	var total int64

	query := r.db.WithContext(ctx).
		Model(&models.WatchParty{}).
		Where("is_public = ? AND is_active = ?", true, true)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.
		Preload("Host").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&parties).Error
	if err != nil {
		return nil, 0, err
	}

	return parties, total, nil
}

func (r *partyRepository) AddParticipant(ctx context.Context, participant *models.WatchPartyParticipant) error {
	return r.db.WithContext(ctx).Create(participant).Error
}

// GetActiveParticipant finds a membership row that has not been left yet
func (r *partyRepository) GetActiveParticipant(ctx context.Context, partyID, userID int64) (*models.WatchPartyParticipant, error) {
	var participant models.WatchPartyParticipant
	err := r.db.WithContext(ctx).
		Where("party_id = ? AND user_id = ? AND left_at IS NULL", partyID, userID).
		First(&participant).Error
	if err != nil {
		return nil, err
	}
	return &participant, nil
}

func (r *partyRepository) CountActiveParticipants(ctx context.Context, partyID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.WatchPartyParticipant{}).
		Where("party_id = ? AND left_at IS NULL", partyID).
		Count(&count).Error
	return count, err
}

// CountActiveByParty counts active participants for a set of parties in one
// grouped query. Parties with no active participants are absent from the map.
func (r *partyRepository) CountActiveByParty(ctx context.Context, partyIDs []int64) (map[int64]int64, error) {
	counts := make(map[int64]int64, len(partyIDs))
	if len(partyIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		PartyID int64
		Total   int64
	}
	err := r.db.WithContext(ctx).
		Model(&models.WatchPartyParticipant{}).
		Select("party_id, COUNT(*) as total").
		Where("party_id IN ? AND left_at IS NULL", partyIDs).
		Group("party_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.PartyID] = row.Total
	}
	return counts, nil
}

func (r *partyRepository) MarkLeft(ctx context.Context, partyID, userID int64) error {
	now := time.Now()
	return r.db.WithContext(ctx).
		Model(&models.WatchPartyParticipant{}).
		Where("party_id = ? AND user_id = ? AND left_at IS NULL", partyID, userID).
		Update("left_at", &now).Error
}

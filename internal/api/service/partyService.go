package service

import (
	"context"
	"errors"
	"strings"

	"aniview/internal/api/dto"
	"aniview/internal/api/models"
	"aniview/internal/api/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrPartyNotFound = errors.New("watch party not found")
	ErrPartyEnded    = errors.New("watch party has ended")
	ErrPartyFull     = errors.New("watch party is full")
	ErrNotPartyHost  = errors.New("only the host can end a watch party")
)

const defaultMaxParticipants = 10

type PartyService interface {
	Create(ctx context.Context, hostID int64, req *dto.CreatePartyRequest) (*dto.WatchPartyResponse, error)
	GetByRoomCode(ctx context.Context, roomCode string) (*dto.WatchPartyResponse, error)
	ListPublic(ctx context.Context, page, limit int) (*dto.PaginatedPartyResponse, error)
	Join(ctx context.Context, roomCode string, userID int64) (*dto.WatchPartyResponse, error)
	Leave(ctx context.Context, roomCode string, userID int64) error
	End(ctx context.Context, roomCode string, userID int64) error
}

type partyService struct {
	partyRepo repository.PartyRepository
}

func NewPartyService(partyRepo repository.PartyRepository) PartyService {
	return &partyService{partyRepo: partyRepo}
}

// newRoomCode derives a short shareable code from a v4 uuid
func newRoomCode() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}

// Create opens a new watch party with the caller as host. The host joins as
// the first participant.
func (s *partyService) Create(ctx context.Context, hostID int64, req *dto.CreatePartyRequest) (*dto.WatchPartyResponse, error) {
	maxParticipants := req.MaxParticipants
	if maxParticipants <= 0 {
		maxParticipants = defaultMaxParticipants
	}
	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	party := &models.WatchParty{
		HostID:          hostID,
		RoomCode:        newRoomCode(),
		AnimeID:         req.AnimeID,
		AnimeTitle:      req.AnimeTitle,
		EpisodeID:       req.EpisodeID,
		EpisodeNumber:   req.EpisodeNumber,
		IsActive:        true,
		MaxParticipants: maxParticipants,
		IsPublic:        isPublic,
	}

	if err := s.partyRepo.Create(ctx, party); err != nil {
		return nil, err
	}

	participant := &models.WatchPartyParticipant{
		PartyID: party.ID,
		UserID:  hostID,
	}
	if err := s.partyRepo.AddParticipant(ctx, participant); err != nil {
		return nil, err
	}

	return dto.FromModelToWatchPartyResponse(party, 1), nil
}

func (s *partyService) GetByRoomCode(ctx context.Context, roomCode string) (*dto.WatchPartyResponse, error) {
	party, err := s.partyRepo.GetByRoomCode(ctx, roomCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPartyNotFound
		}
		return nil, err
	}

	count, err := s.partyRepo.CountActiveParticipants(ctx, party.ID)
	if err != nil {
		return nil, err
	}

	return dto.FromModelToWatchPartyResponse(party, int(count)), nil
}

func (s *partyService) ListPublic(ctx context.Context, page, limit int) (*dto.PaginatedPartyResponse, error) {
	parties, total, err := s.partyRepo.ListPublicActive(ctx, page, limit)
	if err != nil {
		return nil, err
	}

	partyIDs := make([]int64, 0, len(parties))
	for i := range parties {
		partyIDs = append(partyIDs, parties[i].ID)
	}
	counts, err := s.partyRepo.CountActiveByParty(ctx, partyIDs)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.WatchPartyResponse, 0, len(parties))
	for i := range parties {
		responses = append(responses, *dto.FromModelToWatchPartyResponse(&parties[i], int(counts[parties[i].ID])))
	}

	return &dto.PaginatedPartyResponse{
		Parties:    responses,
		Pagination: dto.NewPagination(total, page, limit),
	}, nil
}

// Join adds the caller to the party's membership records. Joining twice is a
// no-op while the first membership is still active.
func (s *partyService) Join(ctx context.Context, roomCode string, userID int64) (*dto.WatchPartyResponse, error) {
	party, err := s.partyRepo.GetByRoomCode(ctx, roomCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPartyNotFound
		}
		return nil, err
	}

	if !party.IsActive {
		return nil, ErrPartyEnded
	}

	if _, err := s.partyRepo.GetActiveParticipant(ctx, party.ID, userID); err == nil {
		count, err := s.partyRepo.CountActiveParticipants(ctx, party.ID)
		if err != nil {
			return nil, err
		}
		return dto.FromModelToWatchPartyResponse(party, int(count)), nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	count, err := s.partyRepo.CountActiveParticipants(ctx, party.ID)
	if err != nil {
		return nil, err
	}
	if count >= int64(party.MaxParticipants) {
		return nil, ErrPartyFull
	}

	participant := &models.WatchPartyParticipant{
		PartyID: party.ID,
		UserID:  userID,
	}
	if err := s.partyRepo.AddParticipant(ctx, participant); err != nil {
		return nil, err
	}

	return dto.FromModelToWatchPartyResponse(party, int(count)+1), nil
}

// Leave closes the caller's membership record
func (s *partyService) Leave(ctx context.Context, roomCode string, userID int64) error {
	party, err := s.partyRepo.GetByRoomCode(ctx, roomCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPartyNotFound
		}
		return err
	}

	return s.partyRepo.MarkLeft(ctx, party.ID, userID)
}

// End deactivates the party; host only
func (s *partyService) End(ctx context.Context, roomCode string, userID int64) error {
	party, err := s.partyRepo.GetByRoomCode(ctx, roomCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPartyNotFound
		}
		return err
	}

	if party.HostID != userID {
		return ErrNotPartyHost
	}

	party.IsActive = false
	return s.partyRepo.Update(ctx, party)
}

package models

import "time"

// WatchParty is the persisted record of a shared viewing session. Playback
// synchronization happens elsewhere; this table only tracks the session and
// its membership.
type WatchParty struct {
	ID              int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	HostID          int64     `gorm:"not null;index" json:"hostId"`
	RoomCode        string    `gorm:"uniqueIndex;not null" json:"roomCode"`
	AnimeID         string    `gorm:"not null" json:"animeId"`
	AnimeTitle      string    `gorm:"not null" json:"animeTitle"`
	EpisodeID       string    `gorm:"not null" json:"episodeId"`
	EpisodeNumber   int       `gorm:"not null" json:"episodeNumber"`
	IsActive        bool      `gorm:"default:true" json:"isActive"`
	MaxParticipants int       `gorm:"default:10" json:"maxParticipants"`
	IsPublic        bool      `gorm:"default:true" json:"isPublic"`
	CurrentTime     int       `gorm:"column:current_position;default:0" json:"currentTime"`
	IsPlaying       bool      `gorm:"default:false" json:"isPlaying"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	// Associations
	Host User `gorm:"foreignKey:HostID" json:"host,omitempty"`
}

func (WatchParty) TableName() string {
	return "watch_parties"
}

type WatchPartyParticipant struct {
	ID       int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	PartyID  int64      `gorm:"not null;index" json:"partyId"`
	UserID   int64      `gorm:"not null;index" json:"userId"`
	JoinedAt time.Time  `gorm:"autoCreateTime" json:"joinedAt"`
	LeftAt   *time.Time `json:"leftAt"`
}

func (WatchPartyParticipant) TableName() string {
	return "watch_party_participants"
}

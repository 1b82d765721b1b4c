package dto

import (
	"time"

	"aniview/internal/api/models"
)

// UserProfileResponse is the public projection of a user record, the same
// fields the review listing joins in.
type UserProfileResponse struct {
	ID       int64     `json:"id"`
	Username string    `json:"username"`
	Avatar   string    `json:"avatar"`
	JoinedAt time.Time `json:"joinedAt"`
}

func FromModelToUserProfileResponse(user *models.User) *UserProfileResponse {
	return &UserProfileResponse{
		ID:       user.ID,
		Username: user.Username,
		Avatar:   user.AvatarID,
		JoinedAt: user.CreatedAt,
	}
}

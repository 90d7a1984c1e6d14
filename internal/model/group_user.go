package model

import (
	"time"

	"github.com/google/uuid"
)

// GroupUser links a user to a group with a permission level,
// either "admin" or "user".
type GroupUser struct {
	ID          uuid.UUID `json:"id"`
	GroupID     uuid.UUID `json:"id_group"`
	UserID      uuid.UUID `json:"id_user"`
	Permissions string    `json:"permissions"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type GrantPermissionRequest struct {
	Permissions string `json:"permissions" validate:"required"`
}

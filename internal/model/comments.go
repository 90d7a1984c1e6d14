package model

import (
	"time"

	"github.com/google/uuid"
)

// Comment carries the group id copied from the author's membership
// record at creation time, kept for wire compatibility.
type Comment struct {
	ID        uuid.UUID `json:"id"`
	PostID    uuid.UUID `json:"id_post"`
	GroupID   uuid.UUID `json:"id_group"`
	UserID    uuid.UUID `json:"id_user"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateCommentRequest struct {
	Comment string `json:"comment" validate:"required"`
}

package model

import (
	"time"

	"github.com/google/uuid"
)

type Post struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"id_user"`
	GroupID     uuid.UUID `json:"id_group"`
	Title       string    `json:"title"`
	Information string    `json:"information"`
	Photo       string    `json:"photo"`
	Location    string    `json:"location"`
	ContactInfo string    `json:"contact_info"`
	PetType     string    `json:"pet_type"`
	Resolved    bool      `json:"resolved"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreatePostRequest struct {
	GroupID     string `json:"id_group" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Information string `json:"information" validate:"required"`
	Photo       string `json:"photo" validate:"required"`
	Location    string `json:"location" validate:"required"`
	ContactInfo string `json:"contact_info" validate:"required"`
	PetType     string `json:"pet_type" validate:"required"`
}

type UpdatePostRequest struct {
	Title       *string `json:"title,omitempty"`
	Information *string `json:"information,omitempty"`
	Photo       *string `json:"photo,omitempty"`
	Location    *string `json:"location,omitempty"`
	ContactInfo *string `json:"contact_info,omitempty"`
	PetType     *string `json:"pet_type,omitempty"`
	Resolved    *bool   `json:"resolved,omitempty"`
}

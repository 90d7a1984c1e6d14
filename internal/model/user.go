package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID             uuid.UUID  `json:"id"`
	Email          string     `json:"email"`
	PasswordHash   *string    `json:"-"`
	Name           string     `json:"name"`
	LastName       string     `json:"last_name"`
	DateBirth      *time.Time `json:"date_birth,omitempty"`
	Tags           *string    `json:"tags,omitempty"`
	PhoneNumber    *string    `json:"phone_number,omitempty"`
	ProfilePicture *string    `json:"profile_picture,omitempty"`
	Token          *string    `json:"token,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

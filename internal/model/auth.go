package model

import "time"

type RegisterRequest struct {
	Name           string     `json:"name" validate:"required"`
	Email          string     `json:"email" validate:"required"`
	Password       string     `json:"password" validate:"required"`
	LastName       string     `json:"last_name"`
	DateBirth      *time.Time `json:"date_birth,omitempty"`
	Tags           *string    `json:"tags,omitempty"`
	PhoneNumber    *string    `json:"phone_number,omitempty"`
	ProfilePicture *string    `json:"profile_picture,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type UpdateUserRequest struct {
	Email          *string    `json:"email,omitempty"`
	Password       *string    `json:"password,omitempty"`
	Name           *string    `json:"name,omitempty"`
	LastName       *string    `json:"last_name,omitempty"`
	DateBirth      *time.Time `json:"date_birth,omitempty"`
	Tags           *string    `json:"tags,omitempty"`
	PhoneNumber    *string    `json:"phone_number,omitempty"`
	ProfilePicture *string    `json:"profile_picture,omitempty"`
}

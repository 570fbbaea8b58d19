package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// User represents a back-office user. Password always holds a bcrypt hash.
type User struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Password  string
	Active    bool
	Roles     string
	AddressID *uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt null.Time
}

// CreateUserInput represents input for creating a user
type CreateUserInput struct {
	Name      string  `json:"name" validate:"required,max=100"`
	Email     string  `json:"email" validate:"required,email,max=255"`
	Password  string  `json:"password" validate:"required,min=3,max=72"`
	Roles     string  `json:"roles" validate:"required,roles"`
	Active    *bool   `json:"active"`
	AddressID *string `json:"addressId" validate:"omitempty,uuid"`
}

// UpdateUserInput represents a partial user update
type UpdateUserInput struct {
	Name     *string `json:"name" validate:"omitempty,max=100"`
	Password *string `json:"password" validate:"omitempty,min=3,max=72"`
	Roles    *string `json:"roles" validate:"omitempty,roles"`
	Active   *bool   `json:"active"`
}

// UserResponse is the public projection of a user
type UserResponse struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Password  string     `json:"password"`
	Roles     string     `json:"roles"`
	Active    bool       `json:"active"`
	AddressID *uuid.UUID `json:"addressId"`
}

// LoginInput represents input for user login
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshInput carries a refresh token to exchange
type RefreshInput struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// SessionUser is the caller identity returned with a token pair
type SessionUser struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	Roles  string    `json:"roles"`
	Active bool      `json:"active"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	ExpiresIn    int64        `json:"expiresIn"`
	User         *SessionUser `json:"user"`
}

package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Address represents a postal address
type Address struct {
	ID         uuid.UUID
	Street     string
	Number     string
	City       string
	State      string
	PostalCode string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  null.Time
}

// CreateAddressInput represents input for creating an address
type CreateAddressInput struct {
	Street     string `json:"street" validate:"required,max=255"`
	Number     string `json:"number" validate:"required,max=20"`
	City       string `json:"city" validate:"required,max=100"`
	State      string `json:"state" validate:"required,max=100"`
	PostalCode string `json:"postalCode" validate:"required,postalcode_br"`
}

// UpdateAddressInput represents a partial address update
type UpdateAddressInput struct {
	Street     *string `json:"street" validate:"omitempty,max=255"`
	Number     *string `json:"number" validate:"omitempty,max=20"`
	City       *string `json:"city" validate:"omitempty,max=100"`
	State      *string `json:"state" validate:"omitempty,max=100"`
	PostalCode *string `json:"postalCode" validate:"omitempty,postalcode_br"`
}

// AddressResponse is the public projection of an address
type AddressResponse struct {
	ID         uuid.UUID `json:"id"`
	Street     string    `json:"street"`
	Number     string    `json:"number"`
	City       string    `json:"city"`
	State      string    `json:"state"`
	PostalCode string    `json:"postalCode"`
}

package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
)

// Card represents a payment card issued against an account
type Card struct {
	ID             uuid.UUID
	Number         string
	ExpirationDate time.Time
	CVV            string
	Limit          decimal.Decimal
	Active         bool
	AccountID      uuid.UUID
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      null.Time
}

// CreateCardInput represents input for creating a card
type CreateCardInput struct {
	AccountID      string           `json:"accountId" validate:"required,uuid"`
	Number         string           `json:"number" validate:"required,max=30"`
	ExpirationDate string           `json:"expirationDate" validate:"required,date"`
	CVV            string           `json:"cvv" validate:"required,digits,min=3,max=4"`
	Limit          *decimal.Decimal `json:"limit" validate:"required,currency"`
	Active         *bool            `json:"active" validate:"required"`
}

// UpdateCardInput represents a partial card update
type UpdateCardInput struct {
	Limit  *decimal.Decimal `json:"limit" validate:"omitempty,currency"`
	Active *bool            `json:"active"`
}

// CardResponse is the public projection of a card. The CVV is never returned.
type CardResponse struct {
	ID             uuid.UUID       `json:"id"`
	Number         string          `json:"number"`
	ExpirationDate time.Time       `json:"expirationDate"`
	Limit          decimal.Decimal `json:"limit"`
	Active         bool            `json:"active"`
	AccountID      uuid.UUID       `json:"accountId"`
}

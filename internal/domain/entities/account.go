package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
)

// Account represents a bank account owned by a user
type Account struct {
	ID           uuid.UUID
	Agency       string
	Number       string
	Digit        string
	Balance      decimal.Decimal
	SavedAmount  decimal.Decimal
	AccountYield decimal.Decimal
	UserID       uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    null.Time
}

// CreateAccountInput represents input for creating an account
type CreateAccountInput struct {
	Agency       string           `json:"agency" validate:"required,digits,max=10"`
	Number       string           `json:"number" validate:"required,digits,max=20"`
	Digit        string           `json:"digit" validate:"required,digits,max=2"`
	Balance      *decimal.Decimal `json:"balance" validate:"required,currency"`
	SavedAmount  *decimal.Decimal `json:"savedAmount" validate:"omitempty,currency"`
	AccountYield *decimal.Decimal `json:"accountYield" validate:"omitempty,currency"`
	UserID       string           `json:"userId" validate:"required,uuid"`
}

// UpdateAccountInput represents a partial account update
type UpdateAccountInput struct {
	Agency       *string          `json:"agency" validate:"omitempty,digits,max=10"`
	Number       *string          `json:"number" validate:"omitempty,digits,max=20"`
	Digit        *string          `json:"digit" validate:"omitempty,digits,max=2"`
	Balance      *decimal.Decimal `json:"balance" validate:"omitempty,currency"`
	SavedAmount  *decimal.Decimal `json:"savedAmount" validate:"omitempty,currency"`
	AccountYield *decimal.Decimal `json:"accountYield" validate:"omitempty,currency"`
}

// AccountResponse is the public projection of an account
type AccountResponse struct {
	ID           uuid.UUID       `json:"id"`
	Agency       string          `json:"agency"`
	Number       string          `json:"number"`
	Digit        string          `json:"digit"`
	Balance      decimal.Decimal `json:"balance"`
	SavedAmount  decimal.Decimal `json:"savedAmount"`
	AccountYield decimal.Decimal `json:"accountYield"`
	UserID       uuid.UUID       `json:"userId"`
}

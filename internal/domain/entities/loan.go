package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
)

// Loan represents credit granted to a user
type Loan struct {
	ID                 uuid.UUID
	ContractDate       time.Time
	Amount             decimal.Decimal
	InterestRate       decimal.Decimal
	OutstandingBalance decimal.Decimal
	UserID             uuid.UUID
	CreatedAt          time.Time
	UpdatedAt          time.Time
	DeletedAt          null.Time
}

// CreateLoanInput represents input for creating a loan.
// ContractDate defaults to the creation time.
type CreateLoanInput struct {
	UserID       string           `json:"userId" validate:"required,uuid"`
	Amount       *decimal.Decimal `json:"amount" validate:"required,currency"`
	InterestRate *decimal.Decimal `json:"interestRate" validate:"required,rate"`
	ContractDate *string          `json:"contractDate" validate:"omitempty,date"`
}

// UpdateLoanInput represents a partial loan update
type UpdateLoanInput struct {
	Amount       *decimal.Decimal `json:"amount" validate:"omitempty,currency"`
	InterestRate *decimal.Decimal `json:"interestRate" validate:"omitempty,rate"`
}

// LoanResponse is the public projection of a loan
type LoanResponse struct {
	ID                 uuid.UUID       `json:"id"`
	Amount             decimal.Decimal `json:"amount"`
	InterestRate       decimal.Decimal `json:"interestRate"`
	UserID             uuid.UUID       `json:"userId"`
	ContractDate       time.Time       `json:"contractDate"`
	OutstandingBalance decimal.Decimal `json:"outstandingBalance"`
}

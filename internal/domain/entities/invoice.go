package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
)

// Invoice represents a card statement
type Invoice struct {
	ID          uuid.UUID
	ClosingDate time.Time
	DueDate     time.Time
	TotalAmount decimal.Decimal
	Paid        bool
	CardID      uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   null.Time
}

// CreateInvoiceInput represents input for creating an invoice
type CreateInvoiceInput struct {
	CardID      string           `json:"cardId" validate:"required,uuid"`
	ClosingDate string           `json:"closingDate" validate:"required,date"`
	DueDate     string           `json:"dueDate" validate:"required,date"`
	TotalAmount *decimal.Decimal `json:"totalAmount" validate:"required,currency"`
	Paid        *bool            `json:"paid" validate:"required"`
}

// UpdateInvoiceInput represents a partial invoice update
type UpdateInvoiceInput struct {
	TotalAmount *decimal.Decimal `json:"totalAmount" validate:"omitempty,currency"`
	Paid        *bool            `json:"paid"`
}

// InvoiceResponse is the public projection of an invoice
type InvoiceResponse struct {
	ID          uuid.UUID       `json:"id"`
	ClosingDate time.Time       `json:"closingDate"`
	DueDate     time.Time       `json:"dueDate"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Paid        bool            `json:"paid"`
	CardID      uuid.UUID       `json:"cardId"`
}

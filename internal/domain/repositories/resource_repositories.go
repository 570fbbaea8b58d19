package repositories

import (
	"context"

	"github.com/google/uuid"

	"bank-backoffice.backend/internal/domain/entities"
)

// UserRepository defines user data operations
type UserRepository interface {
	CRUDRepository[entities.User]
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	// AddressLinked reports whether any user row, deleted or not, holds addressID
	AddressLinked(ctx context.Context, addressID uuid.UUID) (bool, error)
}

// AddressRepository defines address data operations
type AddressRepository interface {
	CRUDRepository[entities.Address]
}

// AccountRepository defines account data operations
type AccountRepository interface {
	CRUDRepository[entities.Account]
}

// CardRepository defines card data operations
type CardRepository interface {
	CRUDRepository[entities.Card]
}

// InvoiceRepository defines invoice data operations
type InvoiceRepository interface {
	CRUDRepository[entities.Invoice]
}

// LoanRepository defines loan data operations
type LoanRepository interface {
	CRUDRepository[entities.Loan]
}

package repositories

import (
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"bank-backoffice.backend/internal/domain/entities"
	"bank-backoffice.backend/internal/infrastructure/models"
)

// LoanRepository implements loan data operations
type LoanRepository struct {
	*crudRepository[entities.Loan, models.Loan]
}

// NewLoanRepository creates a new loan repository
func NewLoanRepository(db *gorm.DB) *LoanRepository {
	return &LoanRepository{newCRUDRepository(db, loanToModel, loanToEntity)}
}

func loanToModel(l *entities.Loan) *models.Loan {
	return &models.Loan{
		ID:                 l.ID,
		ContractDate:       l.ContractDate,
		Amount:             l.Amount.Round(2),
		InterestRate:       l.InterestRate.Round(2),
		OutstandingBalance: l.OutstandingBalance.Round(2),
		UserID:             l.UserID,
		CreatedAt:          l.CreatedAt,
		UpdatedAt:          l.UpdatedAt,
		DeletedAt:          gorm.DeletedAt{Time: l.DeletedAt.Time, Valid: l.DeletedAt.Valid},
	}
}

func loanToEntity(m *models.Loan) *entities.Loan {
	return &entities.Loan{
		ID:                 m.ID,
		ContractDate:       m.ContractDate,
		Amount:             m.Amount,
		InterestRate:       m.InterestRate,
		OutstandingBalance: m.OutstandingBalance,
		UserID:             m.UserID,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
		DeletedAt:          null.NewTime(m.DeletedAt.Time, m.DeletedAt.Valid),
	}
}

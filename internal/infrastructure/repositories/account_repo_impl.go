package repositories

import (
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"bank-backoffice.backend/internal/domain/entities"
	"bank-backoffice.backend/internal/infrastructure/models"
)

// AccountRepository implements account data operations
type AccountRepository struct {
	*crudRepository[entities.Account, models.Account]
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{newCRUDRepository(db, accountToModel, accountToEntity)}
}

func accountToModel(a *entities.Account) *models.Account {
	return &models.Account{
		ID:           a.ID,
		Agency:       a.Agency,
		Number:       a.Number,
		Digit:        a.Digit,
		Balance:      a.Balance.Round(2),
		SavedAmount:  a.SavedAmount.Round(2),
		AccountYield: a.AccountYield.Round(2),
		UserID:       a.UserID,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
		DeletedAt:    gorm.DeletedAt{Time: a.DeletedAt.Time, Valid: a.DeletedAt.Valid},
	}
}

func accountToEntity(m *models.Account) *entities.Account {
	return &entities.Account{
		ID:           m.ID,
		Agency:       m.Agency,
		Number:       m.Number,
		Digit:        m.Digit,
		Balance:      m.Balance,
		SavedAmount:  m.SavedAmount,
		AccountYield: m.AccountYield,
		UserID:       m.UserID,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
		DeletedAt:    null.NewTime(m.DeletedAt.Time, m.DeletedAt.Valid),
	}
}

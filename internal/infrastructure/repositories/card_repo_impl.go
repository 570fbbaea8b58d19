package repositories

import (
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"bank-backoffice.backend/internal/domain/entities"
	"bank-backoffice.backend/internal/infrastructure/models"
)

// CardRepository implements card data operations
type CardRepository struct {
	*crudRepository[entities.Card, models.Card]
}

// NewCardRepository creates a new card repository
func NewCardRepository(db *gorm.DB) *CardRepository {
	return &CardRepository{newCRUDRepository(db, cardToModel, cardToEntity)}
}

func cardToModel(c *entities.Card) *models.Card {
	return &models.Card{
		ID:             c.ID,
		Number:         c.Number,
		ExpirationDate: c.ExpirationDate,
		CVV:            c.CVV,
		Limit:          c.Limit.Round(2),
		Active:         c.Active,
		AccountID:      c.AccountID,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
		DeletedAt:      gorm.DeletedAt{Time: c.DeletedAt.Time, Valid: c.DeletedAt.Valid},
	}
}

func cardToEntity(m *models.Card) *entities.Card {
	return &entities.Card{
		ID:             m.ID,
		Number:         m.Number,
		ExpirationDate: m.ExpirationDate,
		CVV:            m.CVV,
		Limit:          m.Limit,
		Active:         m.Active,
		AccountID:      m.AccountID,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
		DeletedAt:      null.NewTime(m.DeletedAt.Time, m.DeletedAt.Valid),
	}
}

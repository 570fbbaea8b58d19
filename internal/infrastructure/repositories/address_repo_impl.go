package repositories

import (
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"bank-backoffice.backend/internal/domain/entities"
	"bank-backoffice.backend/internal/infrastructure/models"
)

// AddressRepository implements address data operations
type AddressRepository struct {
	*crudRepository[entities.Address, models.Address]
}

// NewAddressRepository creates a new address repository
func NewAddressRepository(db *gorm.DB) *AddressRepository {
	return &AddressRepository{newCRUDRepository(db, addressToModel, addressToEntity)}
}

func addressToModel(a *entities.Address) *models.Address {
	return &models.Address{
		ID:         a.ID,
		Street:     a.Street,
		Number:     a.Number,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
		DeletedAt:  gorm.DeletedAt{Time: a.DeletedAt.Time, Valid: a.DeletedAt.Valid},
	}
}

func addressToEntity(m *models.Address) *entities.Address {
	return &entities.Address{
		ID:         m.ID,
		Street:     m.Street,
		Number:     m.Number,
		City:       m.City,
		State:      m.State,
		PostalCode: m.PostalCode,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
		DeletedAt:  null.NewTime(m.DeletedAt.Time, m.DeletedAt.Valid),
	}
}

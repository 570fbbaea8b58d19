package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"bank-backoffice.backend/internal/domain/entities"
	"bank-backoffice.backend/internal/infrastructure/models"
)

// UserRepository implements user data operations
type UserRepository struct {
	*crudRepository[entities.User, models.User]
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{newCRUDRepository(db, userToModel, userToEntity)}
}

// GetByEmail gets a live user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	var m models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return userToEntity(&m), nil
}

// AddressLinked checks the same rows the unique index on address_id covers,
// soft-deleted users included.
func (r *UserRepository) AddressLinked(ctx context.Context, addressID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Unscoped().Model(&models.User{}).Where("address_id = ?", addressID).Count(&count).Error; err != nil {
		return false, translateError(err)
	}
	return count > 0, nil
}

func userToModel(u *entities.User) *models.User {
	return &models.User{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Password:  u.Password,
		Active:    u.Active,
		Roles:     u.Roles,
		AddressID: u.AddressID,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
		DeletedAt: gorm.DeletedAt{Time: u.DeletedAt.Time, Valid: u.DeletedAt.Valid},
	}
}

func userToEntity(m *models.User) *entities.User {
	return &entities.User{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Password:  m.Password,
		Active:    m.Active,
		Roles:     m.Roles,
		AddressID: m.AddressID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		DeletedAt: null.NewTime(m.DeletedAt.Time, m.DeletedAt.Valid),
	}
}

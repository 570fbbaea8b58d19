package repositories

import (
	"context"

	"github.com/google/uuid"
	"bank-backoffice.backend/pkg/utils"
)

// CRUDRepository is the persistence gateway shared by every resource.
// Reads never return soft-deleted rows. Missing rows yield
// domainerrors.ErrNotFound; unique violations yield domainerrors.ErrAlreadyExists.
type CRUDRepository[E any] interface {
	Create(ctx context.Context, entity *E) error
	GetByID(ctx context.Context, id uuid.UUID) (*E, error)
	List(ctx context.Context, pagination utils.PaginationParams) ([]*E, int64, error)
	Update(ctx context.Context, entity *E) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

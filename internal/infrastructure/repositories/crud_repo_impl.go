package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domainerrors "bank-backoffice.backend/internal/domain/errors"
	"bank-backoffice.backend/pkg/utils"
)

// DuplicateKeyErrorCode is the postgres SQLSTATE for unique_violation
const DuplicateKeyErrorCode = "23505"

// crudRepository implements the shared CRUD gateway for entity E stored as model M
type crudRepository[E any, M any] struct {
	db       *gorm.DB
	toModel  func(*E) *M
	toEntity func(*M) *E
}

func newCRUDRepository[E any, M any](db *gorm.DB, toModel func(*E) *M, toEntity func(*M) *E) *crudRepository[E, M] {
	return &crudRepository[E, M]{db: db, toModel: toModel, toEntity: toEntity}
}

// Create inserts the entity and copies server-assigned timestamps back
func (r *crudRepository[E, M]) Create(ctx context.Context, entity *E) error {
	m := r.toModel(entity)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(m).Error; err != nil {
		return translateError(err)
	}
	*entity = *r.toEntity(m)
	return nil
}

// GetByID returns the live row with the given id
func (r *crudRepository[E, M]) GetByID(ctx context.Context, id uuid.UUID) (*E, error) {
	var m M
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return r.toEntity(&m), nil
}

// List returns live rows, newest first, along with the total live count
func (r *crudRepository[E, M]) List(ctx context.Context, pagination utils.PaginationParams) ([]*E, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(new(M)).Count(&total).Error; err != nil {
		return nil, 0, translateError(err)
	}

	query := r.db.WithContext(ctx).Order("created_at DESC").Order("id DESC")
	if pagination.Paginated() {
		query = query.Offset(pagination.CalculateOffset()).Limit(pagination.Limit)
	}

	var rows []M
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, translateError(err)
	}

	items := make([]*E, 0, len(rows))
	for i := range rows {
		items = append(items, r.toEntity(&rows[i]))
	}
	return items, total, nil
}

// Update writes every column of the entity back to its live row
func (r *crudRepository[E, M]) Update(ctx context.Context, entity *E) error {
	m := r.toModel(entity)
	result := r.db.WithContext(ctx).
		Model(m).
		Select("*").
		Omit("id", "created_at", "deleted_at", clause.Associations).
		Updates(m)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	*entity = *r.toEntity(m)
	return nil
}

// SoftDelete stamps deleted_at on the live row
func (r *crudRepository[E, M]) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(new(M))
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domainerrors.ErrNotFound
	case isUniqueViolation(err):
		return fmt.Errorf("%w: %v", domainerrors.ErrAlreadyExists, err)
	default:
		return err
	}
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == DuplicateKeyErrorCode
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == DuplicateKeyErrorCode
	}

	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

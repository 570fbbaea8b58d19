package repositories

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	domainerrors "bank-backoffice.backend/internal/domain/errors"
)

func TestTranslateError(t *testing.T) {
	assert.NoError(t, translateError(nil))
	assert.ErrorIs(t, translateError(gorm.ErrRecordNotFound), domainerrors.ErrNotFound)
	assert.ErrorIs(t, translateError(gorm.ErrDuplicatedKey), domainerrors.ErrAlreadyExists)

	pgErr := &pgconn.PgError{Code: DuplicateKeyErrorCode, Message: "duplicate key value"}
	assert.ErrorIs(t, translateError(fmt.Errorf("insert: %w", pgErr)), domainerrors.ErrAlreadyExists)

	pqErr := &pq.Error{Code: DuplicateKeyErrorCode, Message: "duplicate key value"}
	assert.ErrorIs(t, translateError(pqErr), domainerrors.ErrAlreadyExists)

	sqliteErr := errors.New("UNIQUE constraint failed: cards.number")
	assert.ErrorIs(t, translateError(sqliteErr), domainerrors.ErrAlreadyExists)

	fkErr := &pgconn.PgError{Code: "23503"}
	got := translateError(fkErr)
	assert.NotErrorIs(t, got, domainerrors.ErrAlreadyExists)
	assert.Same(t, fkErr, got)

	other := errors.New("connection reset")
	assert.Same(t, other, translateError(other))
}

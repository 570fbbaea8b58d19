package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerrors "bank-backoffice.backend/internal/domain/errors"
	"bank-backoffice.backend/internal/domain/repositories"
	"bank-backoffice.backend/pkg/crypto"
	"bank-backoffice.backend/pkg/utils"
)

var (
	hashPassword  = crypto.HashPassword
	checkPassword = crypto.CheckPassword
	newID         = utils.GenerateUUIDv7
	now           = time.Now
)

// resolveReference fails with "<title> not found" when id has no live record
func resolveReference[E any](ctx context.Context, repo repositories.CRUDRepository[E], id uuid.UUID, title string) (*E, error) {
	entity, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound(title + " not found")
		}
		return nil, err
	}
	return entity, nil
}

func parseID(value, field string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, domainerrors.BadRequest("invalid " + field)
	}
	return id, nil
}

func parseDate(value, field string) (time.Time, error) {
	t, err := utils.ParseDate(value)
	if err != nil {
		return time.Time{}, domainerrors.BadRequest("invalid " + field)
	}
	return t, nil
}

func decimalOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

func boolOr(b *bool, fallback bool) bool {
	if b == nil {
		return fallback
	}
	return *b
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setDecimal(dst *decimal.Decimal, src *decimal.Decimal) {
	if src != nil {
		*dst = *src
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

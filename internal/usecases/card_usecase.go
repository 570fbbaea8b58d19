package usecases

import (
	"context"
	"fmt"

	"bank-backoffice.backend/internal/domain/entities"
	"bank-backoffice.backend/internal/domain/repositories"
)

// CardUsecase manages payment cards
type CardUsecase = ResourceService[entities.Card, entities.CreateCardInput, entities.UpdateCardInput, entities.CardResponse]

// NewCardUsecase creates a new card usecase. The backing account must exist.
func NewCardUsecase(cardRepo repositories.CardRepository, accountRepo repositories.AccountRepository) *CardUsecase {
	return NewResourceService[entities.Card](cardRepo, ResourceDefinition[entities.Card, entities.CreateCardInput, entities.UpdateCardInput, entities.CardResponse]{
		Name:   "card",
		Plural: "cards",
		Title:  "Card",
		Build: func(ctx context.Context, input *entities.CreateCardInput) (*entities.Card, error) {
			accountID, err := parseID(input.AccountID, "accountId")
			if err != nil {
				return nil, err
			}
			expiration, err := parseDate(input.ExpirationDate, "expirationDate")
			if err != nil {
				return nil, err
			}
			if _, err := resolveReference[entities.Account](ctx, accountRepo, accountID, "Account"); err != nil {
				return nil, err
			}

			return &entities.Card{
				ID:             newID(),
				Number:         input.Number,
				ExpirationDate: expiration,
				CVV:            input.CVV,
				Limit:          decimalOrZero(input.Limit),
				Active:         boolOr(input.Active, true),
				AccountID:      accountID,
			}, nil
		},
		Merge: func(c *entities.Card, input *entities.UpdateCardInput) {
			setDecimal(&c.Limit, input.Limit)
			setBool(&c.Active, input.Active)
		},
		Project: func(c *entities.Card) *entities.CardResponse {
			return &entities.CardResponse{
				ID:             c.ID,
				Number:         c.Number,
				ExpirationDate: c.ExpirationDate,
				Limit:          c.Limit,
				Active:         c.Active,
				AccountID:      c.AccountID,
			}
		},
		Label:      func(c *entities.Card) string { return c.Number },
		InputLabel: func(in *entities.CreateCardInput) string { return in.Number },
		ConflictMessage: func(in *entities.CreateCardInput) string {
			return fmt.Sprintf("Card number '%s' already exists", in.Number)
		},
	})
}

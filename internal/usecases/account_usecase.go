package usecases

import (
	"context"
	"fmt"

	"bank-backoffice.backend/internal/domain/entities"
	"bank-backoffice.backend/internal/domain/repositories"
)

// AccountUsecase manages bank accounts
type AccountUsecase = ResourceService[entities.Account, entities.CreateAccountInput, entities.UpdateAccountInput, entities.AccountResponse]

// NewAccountUsecase creates a new account usecase. The owning user must exist.
func NewAccountUsecase(accountRepo repositories.AccountRepository, userRepo repositories.UserRepository) *AccountUsecase {
	return NewResourceService[entities.Account](accountRepo, ResourceDefinition[entities.Account, entities.CreateAccountInput, entities.UpdateAccountInput, entities.AccountResponse]{
		Name:   "account",
		Plural: "accounts",
		Title:  "Account",
		Build: func(ctx context.Context, input *entities.CreateAccountInput) (*entities.Account, error) {
			userID, err := parseID(input.UserID, "userId")
			if err != nil {
				return nil, err
			}
			if _, err := resolveReference[entities.User](ctx, userRepo, userID, "User"); err != nil {
				return nil, err
			}

			return &entities.Account{
				ID:           newID(),
				Agency:       input.Agency,
				Number:       input.Number,
				Digit:        input.Digit,
				Balance:      decimalOrZero(input.Balance),
				SavedAmount:  decimalOrZero(input.SavedAmount),
				AccountYield: decimalOrZero(input.AccountYield),
				UserID:       userID,
			}, nil
		},
		Merge: func(a *entities.Account, input *entities.UpdateAccountInput) {
			setString(&a.Agency, input.Agency)
			setString(&a.Number, input.Number)
			setString(&a.Digit, input.Digit)
			setDecimal(&a.Balance, input.Balance)
			setDecimal(&a.SavedAmount, input.SavedAmount)
			setDecimal(&a.AccountYield, input.AccountYield)
		},
		Project: func(a *entities.Account) *entities.AccountResponse {
			return &entities.AccountResponse{
				ID:           a.ID,
				Agency:       a.Agency,
				Number:       a.Number,
				Digit:        a.Digit,
				Balance:      a.Balance,
				SavedAmount:  a.SavedAmount,
				AccountYield: a.AccountYield,
				UserID:       a.UserID,
			}
		},
		Label:      func(a *entities.Account) string { return a.Number },
		InputLabel: func(in *entities.CreateAccountInput) string { return in.Number },
		ConflictMessage: func(in *entities.CreateAccountInput) string {
			return fmt.Sprintf("Account number '%s' already exists", in.Number)
		},
	})
}

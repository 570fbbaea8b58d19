package usecases

import (
	"context"

	"bank-backoffice.backend/internal/domain/entities"
	"bank-backoffice.backend/internal/domain/repositories"
)

// LoanUsecase manages loans
type LoanUsecase = ResourceService[entities.Loan, entities.CreateLoanInput, entities.UpdateLoanInput, entities.LoanResponse]

// NewLoanUsecase creates a new loan usecase. The borrower must exist; the
// contract date defaults to now and the outstanding balance starts at the amount.
func NewLoanUsecase(loanRepo repositories.LoanRepository, userRepo repositories.UserRepository) *LoanUsecase {
	return NewResourceService[entities.Loan](loanRepo, ResourceDefinition[entities.Loan, entities.CreateLoanInput, entities.UpdateLoanInput, entities.LoanResponse]{
		Name:   "loan",
		Plural: "loans",
		Title:  "Loan",
		Build: func(ctx context.Context, input *entities.CreateLoanInput) (*entities.Loan, error) {
			userID, err := parseID(input.UserID, "userId")
			if err != nil {
				return nil, err
			}
			contractDate := now().UTC()
			if input.ContractDate != nil {
				if contractDate, err = parseDate(*input.ContractDate, "contractDate"); err != nil {
					return nil, err
				}
			}
			if _, err := resolveReference[entities.User](ctx, userRepo, userID, "User"); err != nil {
				return nil, err
			}

			amount := decimalOrZero(input.Amount)
			return &entities.Loan{
				ID:                 newID(),
				ContractDate:       contractDate,
				Amount:             amount,
				InterestRate:       decimalOrZero(input.InterestRate),
				OutstandingBalance: amount,
				UserID:             userID,
			}, nil
		},
		Merge: func(l *entities.Loan, input *entities.UpdateLoanInput) {
			setDecimal(&l.Amount, input.Amount)
			setDecimal(&l.InterestRate, input.InterestRate)
		},
		Project: func(l *entities.Loan) *entities.LoanResponse {
			return &entities.LoanResponse{
				ID:                 l.ID,
				Amount:             l.Amount,
				InterestRate:       l.InterestRate,
				UserID:             l.UserID,
				ContractDate:       l.ContractDate,
				OutstandingBalance: l.OutstandingBalance,
			}
		},
		Label: func(l *entities.Loan) string { return l.Amount.StringFixed(2) },
		InputLabel: func(in *entities.CreateLoanInput) string {
			return decimalOrZero(in.Amount).StringFixed(2)
		},
	})
}

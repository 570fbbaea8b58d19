package usecases

import (
	"context"

	"bank-backoffice.backend/internal/domain/entities"
	"bank-backoffice.backend/internal/domain/repositories"
	"bank-backoffice.backend/pkg/utils"
)

// InvoiceUsecase manages card invoices
type InvoiceUsecase = ResourceService[entities.Invoice, entities.CreateInvoiceInput, entities.UpdateInvoiceInput, entities.InvoiceResponse]

// NewInvoiceUsecase creates a new invoice usecase. The invoiced card must exist.
func NewInvoiceUsecase(invoiceRepo repositories.InvoiceRepository, cardRepo repositories.CardRepository) *InvoiceUsecase {
	return NewResourceService[entities.Invoice](invoiceRepo, ResourceDefinition[entities.Invoice, entities.CreateInvoiceInput, entities.UpdateInvoiceInput, entities.InvoiceResponse]{
		Name:   "invoice",
		Plural: "invoices",
		Title:  "Invoice",
		Build: func(ctx context.Context, input *entities.CreateInvoiceInput) (*entities.Invoice, error) {
			cardID, err := parseID(input.CardID, "cardId")
			if err != nil {
				return nil, err
			}
			closing, err := parseDate(input.ClosingDate, "closingDate")
			if err != nil {
				return nil, err
			}
			due, err := parseDate(input.DueDate, "dueDate")
			if err != nil {
				return nil, err
			}
			if _, err := resolveReference[entities.Card](ctx, cardRepo, cardID, "Card"); err != nil {
				return nil, err
			}

			return &entities.Invoice{
				ID:          newID(),
				ClosingDate: closing,
				DueDate:     due,
				TotalAmount: decimalOrZero(input.TotalAmount),
				Paid:        boolOr(input.Paid, false),
				CardID:      cardID,
			}, nil
		},
		Merge: func(i *entities.Invoice, input *entities.UpdateInvoiceInput) {
			setDecimal(&i.TotalAmount, input.TotalAmount)
			setBool(&i.Paid, input.Paid)
		},
		Project: func(i *entities.Invoice) *entities.InvoiceResponse {
			return &entities.InvoiceResponse{
				ID:          i.ID,
				ClosingDate: i.ClosingDate,
				DueDate:     i.DueDate,
				TotalAmount: i.TotalAmount,
				Paid:        i.Paid,
				CardID:      i.CardID,
			}
		},
		Label:      func(i *entities.Invoice) string { return i.DueDate.Format(utils.DateLayout) },
		InputLabel: func(in *entities.CreateInvoiceInput) string { return in.DueDate },
	})
}

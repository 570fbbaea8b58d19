package repositories

import (
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"bank-backoffice.backend/internal/domain/entities"
	"bank-backoffice.backend/internal/infrastructure/models"
)

// InvoiceRepository implements invoice data operations
type InvoiceRepository struct {
	*crudRepository[entities.Invoice, models.Invoice]
}

// NewInvoiceRepository creates a new invoice repository
func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{newCRUDRepository(db, invoiceToModel, invoiceToEntity)}
}

func invoiceToModel(i *entities.Invoice) *models.Invoice {
	return &models.Invoice{
		ID:          i.ID,
		ClosingDate: i.ClosingDate,
		DueDate:     i.DueDate,
		TotalAmount: i.TotalAmount.Round(2),
		Paid:        i.Paid,
		CardID:      i.CardID,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
		DeletedAt:   gorm.DeletedAt{Time: i.DeletedAt.Time, Valid: i.DeletedAt.Valid},
	}
}

func invoiceToEntity(m *models.Invoice) *entities.Invoice {
	return &entities.Invoice{
		ID:          m.ID,
		ClosingDate: m.ClosingDate,
		DueDate:     m.DueDate,
		TotalAmount: m.TotalAmount,
		Paid:        m.Paid,
		CardID:      m.CardID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		DeletedAt:   null.NewTime(m.DeletedAt.Time, m.DeletedAt.Valid),
	}
}

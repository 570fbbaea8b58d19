package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Invoice struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ClosingDate time.Time       `gorm:"type:date;not null"`
	DueDate     time.Time       `gorm:"type:date;not null"`
	TotalAmount decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Paid        bool            `gorm:"not null"`
	CardID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Card        *Card           `gorm:"foreignKey:CardID"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

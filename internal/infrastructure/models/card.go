package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Card struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Number         string          `gorm:"type:varchar(30);uniqueIndex;not null"`
	ExpirationDate time.Time       `gorm:"type:date;not null"`
	CVV            string          `gorm:"column:cvv;type:varchar(4);not null"`
	Limit          decimal.Decimal `gorm:"column:limit;type:numeric(10,2);not null"`
	Active         bool            `gorm:"not null"`
	AccountID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Account        *Account        `gorm:"foreignKey:AccountID"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

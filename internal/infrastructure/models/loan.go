package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Loan struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ContractDate       time.Time       `gorm:"not null"`
	Amount             decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	InterestRate       decimal.Decimal `gorm:"type:numeric(5,2);not null"`
	OutstandingBalance decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	UserID             uuid.UUID       `gorm:"type:uuid;not null;index"`
	User               *User           `gorm:"foreignKey:UserID"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
	DeletedAt          gorm.DeletedAt `gorm:"index"`
}

package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Account struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Agency       string          `gorm:"type:varchar(10);not null"`
	Number       string          `gorm:"type:varchar(20);uniqueIndex;not null"`
	Digit        string          `gorm:"type:varchar(2);not null"`
	Balance      decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	SavedAmount  decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	AccountYield decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	User         *User           `gorm:"foreignKey:UserID"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

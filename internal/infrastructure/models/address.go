package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Address struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Street     string    `gorm:"type:varchar(255);not null"`
	Number     string    `gorm:"type:varchar(20);not null"`
	City       string    `gorm:"type:varchar(100);not null"`
	State      string    `gorm:"type:varchar(100);not null"`
	PostalCode string    `gorm:"type:varchar(9);not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name      string     `gorm:"type:varchar(100);not null"`
	Email     string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	Password  string     `gorm:"type:varchar(255);not null"`
	Active    bool       `gorm:"not null"`
	Roles     string     `gorm:"type:varchar(100);not null"`
	AddressID *uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Address   *Address   `gorm:"foreignKey:AddressID;constraint:OnDelete:SET NULL"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

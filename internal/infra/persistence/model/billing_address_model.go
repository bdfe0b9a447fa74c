package model

import (
	"time"

	"github.com/google/uuid"
)

// BillingAddressModel mirrors the 'billing_address' table.
type BillingAddressModel struct {
	ID           int64     `gorm:"column:billing_id;primaryKey;autoIncrement"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index"`
	FirstName    string    `gorm:"type:varchar(100);not null"`
	LastName     string    `gorm:"type:varchar(100);not null"`
	Email        string    `gorm:"type:varchar(255);not null"`
	PhoneNumber  string    `gorm:"type:varchar(50);not null"`
	AddressLine1 string    `gorm:"type:varchar(255);not null"`
	AddressLine2 string    `gorm:"type:varchar(255)"`
	City         string    `gorm:"type:varchar(100);not null"`
	PostalCode   string    `gorm:"type:varchar(20);not null"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (BillingAddressModel) TableName() string {
	return "billing_address"
}

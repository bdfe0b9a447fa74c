package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel mirrors the 'orders' table. ReferenceNumber is the human-facing
// unique identifier; line items reference it instead of the row ID.
type OrderModel struct {
	ID              int64     `gorm:"primaryKey;autoIncrement"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index"`
	ReferenceNumber string    `gorm:"type:varchar(20);uniqueIndex;not null"`
	Status          string    `gorm:"type:varchar(20);not null;default:'active'"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderLineItemModel mirrors the 'order_products' table.
type OrderLineItemModel struct {
	ID              int64  `gorm:"primaryKey;autoIncrement"`
	ReferenceNumber string `gorm:"type:varchar(20);not null;index"`
	ProductID       int64  `gorm:"not null"`
	Quantity        int    `gorm:"not null"`
	CreatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderLineItemModel) TableName() string {
	return "order_products"
}

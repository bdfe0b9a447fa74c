package model

import (
	"time"

	"github.com/google/uuid"
)

// PaymentIntentModel mirrors the 'payment_intents' table. IntentID is
// deliberately not unique (repeated registrations insert new rows); lookups
// order by recency instead.
type PaymentIntentModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	UserID    uuid.UUID `gorm:"type:uuid;not null"`
	IntentID  string    `gorm:"column:payment_intent_id;type:varchar(255);not null;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PaymentIntentModel) TableName() string {
	return "payment_intents"
}

// PaymentModel mirrors the 'payments' table. The unique index on PaymentID is
// what makes webhook redelivery idempotent: the second insert collides and is
// reported as already processed.
type PaymentModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	UserID    uuid.UUID `gorm:"type:uuid;not null"`
	IntentID  string    `gorm:"column:payment_intent_id;type:varchar(255);not null"`
	PaymentID string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PaymentModel) TableName() string {
	return "payments"
}

// TransactionModel mirrors the 'transactions' table.
type TransactionModel struct {
	ID              int64     `gorm:"primaryKey;autoIncrement"`
	UserID          uuid.UUID `gorm:"type:uuid;not null"`
	PaymentID       string    `gorm:"type:varchar(255);not null;index"`
	ReferenceNumber string    `gorm:"type:varchar(20);not null"`
	Amount          float64   `gorm:"not null"`
	PaymentMethod   string    `gorm:"type:varchar(50);not null"`
	CreatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (TransactionModel) TableName() string {
	return "transactions"
}

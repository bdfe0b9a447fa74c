package entity

import (
	"time"

	"github.com/google/uuid"
)

// PaymentIntent associates a provider-issued intent identifier with the user
// who initiated the payment, registered before the payment completes. Rows
// accumulate; resolution always prefers the most recent registration.
type PaymentIntent struct {
	ID        int64     `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	IntentID  string    `json:"payment_intent_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Payment is an append-only ledger entry written once per successful provider
// webhook event. PaymentID is unique so redelivered events cannot double-book.
type Payment struct {
	ID        int64     `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	IntentID  string    `json:"payment_intent_id"`
	PaymentID string    `json:"payment_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Transaction records the settlement details a client reports after checkout:
// which payment settled which order reference, for how much, and by what method.
type Transaction struct {
	ID              int64     `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	PaymentID       string    `json:"payment_id"`
	ReferenceNumber string    `json:"reference_number"`
	Amount          float64   `json:"amount"`
	PaymentMethod   string    `json:"payment_method"`
	CreatedAt       time.Time `json:"created_at"`
}

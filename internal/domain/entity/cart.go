package entity

import (
	"time"

	"github.com/google/uuid"
)

// CartItem is one product a user has placed in their cart. A (user, product)
// pair appears at most once; re-adding updates the quantity instead.
type CartItem struct {
	UserID    uuid.UUID `json:"user_id"`
	ProductID int64     `json:"product_id"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

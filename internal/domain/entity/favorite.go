package entity

import (
	"time"

	"github.com/google/uuid"
)

// Favorite marks a product a user has saved for later.
type Favorite struct {
	UserID    uuid.UUID `json:"user_id"`
	ProductID int64     `json:"product_id"`
	CreatedAt time.Time `json:"created_at"`
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review is a user's rating and optional comment on a product.
type Review struct {
	ID        int64     `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	ProductID int64     `json:"product_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

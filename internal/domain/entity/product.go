package entity

import "time"

// Product is a catalog item. Name is unique across the catalog; IsVisible
// controls whether the public listing includes it.
type Product struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	Brand         string    `json:"brand"`
	Dimensions    string    `json:"dimensions"`
	Price         float64   `json:"price"`
	StockQuantity int       `json:"stock_quantity"`
	IsVisible     bool      `json:"is_visible"`
	IsFeatured    bool      `json:"is_featured"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

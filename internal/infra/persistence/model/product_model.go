package model

import "time"

// ProductModel mirrors the 'products' table. Name carries a unique index to
// back the duplicate-product guard.
type ProductModel struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	Name          string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Description   string `gorm:"type:text"`
	Category      string `gorm:"type:varchar(100);index"`
	Brand         string `gorm:"type:varchar(100)"`
	Dimensions    string `gorm:"type:varchar(100)"`
	Price         float64
	StockQuantity int
	IsVisible     bool `gorm:"default:true;index"`
	IsFeatured    bool `gorm:"default:false"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

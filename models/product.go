package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Feed categories by growth stage
const (
	CategoryEarly = "early"
	CategorySmall = "small"
	CategoryStock = "stock"
)

// Specifications holds the nutritional analysis printed on the feed bag.
// All values are free text ("42%", "min. 12 MJ/kg", "3 mm").
type Specifications struct {
	Protein    string `gorm:"type:varchar(50)" json:"protein"`
	Fat        string `gorm:"type:varchar(50)" json:"fat"`
	Fiber      string `gorm:"type:varchar(50)" json:"fiber"`
	Moisture   string `gorm:"type:varchar(50)" json:"moisture"`
	Energy     string `gorm:"type:varchar(50)" json:"energy"`
	PelletSize string `gorm:"type:varchar(50);column:pellet_size" json:"pellet_size"`
}

// Product represents products table
type Product struct {
	ProductID     uint            `gorm:"primaryKey;column:product_id" json:"product_id"`
	SKU           string          `gorm:"type:varchar(50);not null;uniqueIndex;column:sku" json:"sku"`
	Name          string          `gorm:"type:varchar(200);not null" json:"name"`
	Description   string          `gorm:"type:text" json:"description"`
	Category      string          `gorm:"type:varchar(20);not null;index" json:"category"`
	Price         decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	StockQuantity int             `gorm:"not null;default:0" json:"stock_quantity"`
	Images        []string        `gorm:"serializer:json" json:"images"`
	Specs         Specifications  `gorm:"embedded;embeddedPrefix:spec_" json:"specifications"`
	Weight        string          `gorm:"type:varchar(50)" json:"weight"`
	IsActive      bool            `gorm:"default:true" json:"is_active"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// TableName specifies the table name for Product
func (Product) TableName() string {
	return "products"
}

package models

import "time"

// CartItem represents cart_items table. Carts are scoped by an opaque
// client-generated session id, not by a user account. One row per
// (session_id, product_id) pair; adding again increments quantity.
type CartItem struct {
	CartItemID uint      `gorm:"primaryKey;column:cart_item_id" json:"cart_item_id"`
	SessionID  string    `gorm:"type:varchar(100);not null;uniqueIndex:uniq_session_product,priority:1" json:"session_id"`
	ProductID  uint      `gorm:"not null;uniqueIndex:uniq_session_product,priority:2" json:"product_id"`
	Quantity   int       `gorm:"not null;default:1" json:"quantity"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName specifies the table name for CartItem
func (CartItem) TableName() string {
	return "cart_items"
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order statuses. Transitions are enforced by the store layer:
// pending -> confirmed -> shipped -> delivered, with cancelled reachable
// from pending and confirmed only.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// Payment statuses
const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusFailed  = "failed"
)

// ShippingAddress is the structured delivery address embedded in an order
type ShippingAddress struct {
	Street     string `gorm:"type:varchar(200)" json:"street"`
	City       string `gorm:"type:varchar(100)" json:"city"`
	PostalCode string `gorm:"type:varchar(20);column:postal_code" json:"postal_code"`
	Country    string `gorm:"type:varchar(100)" json:"country"`
}

// Order represents orders table
type Order struct {
	OrderID       uint            `gorm:"primaryKey;column:order_id" json:"order_id"`
	OrderNo       string          `gorm:"type:varchar(40);not null;uniqueIndex;column:order_no" json:"order_no"`
	CustomerName  string          `gorm:"type:varchar(100);not null" json:"customer_name"`
	CustomerEmail string          `gorm:"type:varchar(100);not null" json:"customer_email"`
	CustomerPhone string          `gorm:"type:varchar(20)" json:"customer_phone"`
	Shipping      ShippingAddress `gorm:"embedded;embeddedPrefix:shipping_" json:"shipping_address"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total_amount"`
	Status        string          `gorm:"type:varchar(20);not null;default:pending;index" json:"status"`
	PaymentStatus string          `gorm:"type:varchar(20);not null;default:pending" json:"payment_status"`
	PaymentMethod *string         `gorm:"type:varchar(50)" json:"payment_method,omitempty"`
	Notes         *string         `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// TableName specifies the table name for Order
func (Order) TableName() string {
	return "orders"
}

// OrderItem represents order_items table. Rows are immutable once written.
type OrderItem struct {
	OrderItemID uint            `gorm:"primaryKey;column:order_item_id" json:"order_item_id"`
	OrderID     uint            `gorm:"not null;index" json:"order_id"`
	ProductID   uint            `gorm:"not null;index" json:"product_id"`
	Quantity    int             `gorm:"not null" json:"quantity"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"unit_price"`
	TotalPrice  decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total_price"`
	CreatedAt   time.Time       `json:"created_at"`
}

// TableName specifies the table name for OrderItem
func (OrderItem) TableName() string {
	return "order_items"
}

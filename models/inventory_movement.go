package models

import "time"

// Movement types for the stock ledger
const (
	MovementIn         = "in"
	MovementOut        = "out"
	MovementAdjustment = "adjustment"
)

// InventoryMovement represents inventory_movements table, an append-only
// ledger of stock changes. Every write to Product.StockQuantity records a
// matching row here inside the same transaction.
type InventoryMovement struct {
	MovementID   uint      `gorm:"primaryKey;column:movement_id" json:"movement_id"`
	ProductID    uint      `gorm:"not null;index" json:"product_id"`
	MovementType string    `gorm:"type:varchar(20);not null" json:"movement_type"`
	Quantity     int       `gorm:"not null" json:"quantity"`
	Reason       string    `gorm:"type:varchar(200)" json:"reason"`
	ReferenceID  *uint     `gorm:"column:reference_id" json:"reference_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName specifies the table name for InventoryMovement
func (InventoryMovement) TableName() string {
	return "inventory_movements"
}

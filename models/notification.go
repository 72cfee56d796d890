package models

import "time"

// Notification types
const (
	NotificationContact = "contact"
	NotificationOrder   = "order"
	NotificationStock   = "stock"
)

// Notification represents notifications table, the admin inbox fed by
// contact form submissions, new orders and low stock events
type Notification struct {
	NotificationID uint      `gorm:"primaryKey;column:notification_id" json:"notification_id"`
	Type           string    `gorm:"type:varchar(20);not null" json:"type"`
	Title          string    `gorm:"type:varchar(200);not null" json:"title"`
	Body           string    `gorm:"type:text" json:"body"`
	IsRead         bool      `gorm:"default:false;index" json:"is_read"`
	CreatedAt      time.Time `json:"created_at"`
}

// TableName specifies the table name for Notification
func (Notification) TableName() string {
	return "notifications"
}

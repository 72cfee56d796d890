package models

import "time"

// Visitor represents visitors table. VisitorToken is an opaque
// client-generated identifier, the analytics counterpart of the cart
// session id.
type Visitor struct {
	VisitorID    uint      `gorm:"primaryKey;column:visitor_id" json:"visitor_id"`
	VisitorToken string    `gorm:"type:varchar(100);not null;uniqueIndex;column:visitor_token" json:"visitor_token"`
	UserAgent    *string   `gorm:"type:varchar(300)" json:"user_agent,omitempty"`
	FirstSeen    time.Time `gorm:"column:first_seen" json:"first_seen"`
	LastSeen     time.Time `gorm:"column:last_seen" json:"last_seen"`
}

// TableName specifies the table name for Visitor
func (Visitor) TableName() string {
	return "visitors"
}

// PageView represents page_views table, one row per tracked page load
type PageView struct {
	PageViewID uint      `gorm:"primaryKey;column:page_view_id" json:"page_view_id"`
	VisitorID  uint      `gorm:"not null;index" json:"visitor_id"`
	Path       string    `gorm:"type:varchar(300);not null" json:"path"`
	Referrer   *string   `gorm:"type:varchar(500)" json:"referrer,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName specifies the table name for PageView
func (PageView) TableName() string {
	return "page_views"
}

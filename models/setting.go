package models

import "time"

// Well-known setting keys
const (
	SettingCartTTLHours  = "cart_ttl_hours"
	SettingStoreEmail    = "store_email"
	SettingStorePhone    = "store_phone"
	SettingLowStockLevel = "low_stock_level"
)

// Setting represents settings table, a simple key/value store for
// runtime-tunable knobs
type Setting struct {
	SettingID uint      `gorm:"primaryKey;column:setting_id" json:"setting_id"`
	Key       string    `gorm:"type:varchar(100);not null;uniqueIndex;column:key" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for Setting
func (Setting) TableName() string {
	return "settings"
}

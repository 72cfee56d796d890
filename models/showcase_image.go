package models

import "time"

// ShowcaseImage represents showcase_images table, the admin-curated
// homepage gallery. Public consumers see active images ordered by
// display_order ascending.
type ShowcaseImage struct {
	ImageID      uint      `gorm:"primaryKey;column:image_id" json:"image_id"`
	Title        string    `gorm:"type:varchar(200);not null" json:"title"`
	Description  *string   `gorm:"type:text" json:"description,omitempty"`
	ImageURL     string    `gorm:"type:varchar(500);not null;column:image_url" json:"image_url"`
	DisplayOrder int       `gorm:"not null;default:0;column:display_order" json:"display_order"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName specifies the table name for ShowcaseImage
func (ShowcaseImage) TableName() string {
	return "showcase_images"
}

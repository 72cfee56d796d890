package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/arbazessaqkhan/jktfeed/models"
)

// CreateShowcaseImage inserts a gallery image
func (s *Store) CreateShowcaseImage(img *models.ShowcaseImage) error {
	return s.db.Create(img).Error
}

// ListShowcaseImages returns gallery images ordered by display rank.
// With activeOnly set, inactive images are filtered out (the public
// homepage consumer).
func (s *Store) ListShowcaseImages(activeOnly bool) ([]models.ShowcaseImage, error) {
	query := s.db.Model(&models.ShowcaseImage{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var images []models.ShowcaseImage
	err := query.Order("display_order ASC, image_id ASC").Find(&images).Error
	return images, err
}

// GetShowcaseImage fetches a single gallery image
func (s *Store) GetShowcaseImage(id uint) (*models.ShowcaseImage, error) {
	var img models.ShowcaseImage
	err := s.db.First(&img, "image_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &img, nil
}

// UpdateShowcaseImage applies a partial update and returns the updated row
func (s *Store) UpdateShowcaseImage(id uint, updates map[string]interface{}) (*models.ShowcaseImage, error) {
	if len(updates) > 0 {
		result := s.db.Model(&models.ShowcaseImage{}).Where("image_id = ?", id).Updates(updates)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, ErrNotFound
		}
	}
	return s.GetShowcaseImage(id)
}

// DeleteShowcaseImage removes a gallery image
func (s *Store) DeleteShowcaseImage(id uint) error {
	result := s.db.Delete(&models.ShowcaseImage{}, "image_id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

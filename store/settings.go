package store

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/arbazessaqkhan/jktfeed/models"
)

// ListSettings returns all settings ordered by key
func (s *Store) ListSettings() ([]models.Setting, error) {
	var settings []models.Setting
	err := s.db.Order("key ASC").Find(&settings).Error
	return settings, err
}

// GetSetting fetches one setting by key
func (s *Store) GetSetting(key string) (*models.Setting, error) {
	var setting models.Setting
	err := s.db.First(&setting, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

// SetSetting creates or overwrites a setting value
func (s *Store) SetSetting(key, value string) (*models.Setting, error) {
	setting := models.Setting{Key: key, Value: value}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&setting).Error
	if err != nil {
		return nil, err
	}
	return s.GetSetting(key)
}

package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/arbazessaqkhan/jktfeed/models"
)

// GetUserByUsername fetches a user by their unique username
func (s *Store) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	err := s.db.First(&user, "username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUser inserts a user row. The caller provides the bcrypt hash.
func (s *Store) CreateUser(user *models.User) error {
	return s.db.Create(user).Error
}

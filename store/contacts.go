package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/arbazessaqkhan/jktfeed/models"
)

// CreateContact stores a contact form submission
func (s *Store) CreateContact(c *models.Contact) error {
	return s.db.Create(c).Error
}

// ListContacts returns all contacts, newest first
func (s *Store) ListContacts() ([]models.Contact, error) {
	var contacts []models.Contact
	err := s.db.Order("created_at DESC, contact_id DESC").Find(&contacts).Error
	return contacts, err
}

// GetContact fetches a contact with its message thread
func (s *Store) GetContact(id uint) (*models.Contact, error) {
	var contact models.Contact
	err := s.db.Preload("Messages", func(db *gorm.DB) *gorm.DB {
		return db.Order("messages.created_at ASC")
	}).First(&contact, "contact_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

// AddMessage appends a message to a contact's thread
func (s *Store) AddMessage(contactID uint, sender, body string) (*models.Message, error) {
	if _, err := s.GetContact(contactID); err != nil {
		return nil, err
	}

	msg := models.Message{
		ContactID: contactID,
		Sender:    sender,
		Body:      body,
	}
	if err := s.db.Create(&msg).Error; err != nil {
		return nil, err
	}
	return &msg, nil
}

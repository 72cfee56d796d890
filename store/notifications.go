package store

import (
	"github.com/arbazessaqkhan/jktfeed/models"
)

// CreateNotification appends a row to the admin inbox
func (s *Store) CreateNotification(ntype, title, body string) error {
	n := models.Notification{
		Type:  ntype,
		Title: title,
		Body:  body,
	}
	return s.db.Create(&n).Error
}

// ListNotifications returns notifications newest first, optionally only
// unread ones
func (s *Store) ListNotifications(unreadOnly bool) ([]models.Notification, error) {
	query := s.db.Model(&models.Notification{})
	if unreadOnly {
		query = query.Where("is_read = ?", false)
	}

	var notifications []models.Notification
	err := query.Order("created_at DESC, notification_id DESC").Find(&notifications).Error
	return notifications, err
}

// MarkNotificationRead flags a notification as read
func (s *Store) MarkNotificationRead(id uint) error {
	result := s.db.Model(&models.Notification{}).
		Where("notification_id = ?", id).
		Update("is_read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

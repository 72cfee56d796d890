package store

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/arbazessaqkhan/jktfeed/models"
)

// AddToCart inserts a cart row or atomically increments the quantity of an
// existing (session, product) pair. The increment happens in a single
// upsert statement, so concurrent adds cannot lose updates.
func (s *Store) AddToCart(sessionID string, productID uint, quantity int) (*models.CartItem, error) {
	if _, err := s.GetProduct(productID); err != nil {
		return nil, err
	}

	item := models.CartItem{
		SessionID: sessionID,
		ProductID: productID,
		Quantity:  quantity,
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "session_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity":   gorm.Expr("quantity + excluded.quantity"),
			"updated_at": time.Now(),
		}),
	}).Create(&item).Error
	if err != nil {
		return nil, err
	}

	var row models.CartItem
	err = s.db.Preload("Product").
		Where("session_id = ? AND product_id = ?", sessionID, productID).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// GetCart returns all cart rows for a session, oldest first
func (s *Store) GetCart(sessionID string) ([]models.CartItem, error) {
	var items []models.CartItem
	err := s.db.Preload("Product").
		Where("session_id = ?", sessionID).
		Order("cart_item_id ASC").
		Find(&items).Error
	return items, err
}

// UpdateCartItem overwrites the quantity of a cart row
func (s *Store) UpdateCartItem(id uint, quantity int) (*models.CartItem, error) {
	result := s.db.Model(&models.CartItem{}).
		Where("cart_item_id = ?", id).
		Updates(map[string]interface{}{"quantity": quantity, "updated_at": time.Now()})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	var row models.CartItem
	if err := s.db.Preload("Product").First(&row, "cart_item_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}

// RemoveCartItem deletes a single cart row
func (s *Store) RemoveCartItem(id uint) error {
	result := s.db.Delete(&models.CartItem{}, "cart_item_id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ClearCart deletes every cart row for a session
func (s *Store) ClearCart(sessionID string) error {
	return s.db.Where("session_id = ?", sessionID).Delete(&models.CartItem{}).Error
}

// PurgeAbandonedCarts deletes cart rows not touched since the cutoff and
// returns how many were removed
func (s *Store) PurgeAbandonedCarts(cutoff time.Time) (int64, error) {
	result := s.db.Where("updated_at < ?", cutoff).Delete(&models.CartItem{})
	return result.RowsAffected, result.Error
}

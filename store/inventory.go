package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/arbazessaqkhan/jktfeed/models"
)

// AdjustStock applies a signed stock delta and records the matching
// adjustment movement in the same transaction, so the stock column and the
// ledger cannot drift apart.
func (s *Store) AdjustStock(productID uint, delta int, reason string) (*models.Product, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, "product_id = ?", productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		result := tx.Model(&models.Product{}).
			Where("product_id = ? AND stock_quantity + ? >= 0", productID, delta).
			Update("stock_quantity", gorm.Expr("stock_quantity + ?", delta))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrInsufficientStock
		}

		movement := models.InventoryMovement{
			ProductID:    productID,
			MovementType: models.MovementAdjustment,
			Quantity:     delta,
			Reason:       reason,
		}
		return tx.Create(&movement).Error
	})
	if err != nil {
		return nil, err
	}

	return s.GetProduct(productID)
}

// ListInventoryMovements returns ledger entries newest first, optionally
// filtered by product, with page/limit pagination. The second return value
// is the total matching row count.
func (s *Store) ListInventoryMovements(productID *uint, page, limit int) ([]models.InventoryMovement, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 50
	}

	query := s.db.Model(&models.InventoryMovement{})
	if productID != nil {
		query = query.Where("product_id = ?", *productID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var movements []models.InventoryMovement
	err := query.Order("created_at DESC, movement_id DESC").
		Limit(limit).Offset((page - 1) * limit).
		Find(&movements).Error
	return movements, total, err
}

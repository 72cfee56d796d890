package store

import (
	"encoding/json"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/arbazessaqkhan/jktfeed/models"
)

// ProductFilter narrows ListProducts results
type ProductFilter struct {
	Category string
	Active   *bool
	Search   string
}

// CreateProduct inserts a product and returns it with generated fields set
func (s *Store) CreateProduct(p *models.Product) error {
	return s.db.Create(p).Error
}

// GetProduct fetches a single product by id
func (s *Store) GetProduct(id uint) (*models.Product, error) {
	var p models.Product
	err := s.db.First(&p, "product_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListProducts returns products matching the filter, newest first
func (s *Store) ListProducts(f ProductFilter) ([]models.Product, error) {
	query := s.db.Model(&models.Product{})

	if f.Category != "" {
		query = query.Where("category = ?", f.Category)
	}
	if f.Active != nil {
		query = query.Where("is_active = ?", *f.Active)
	}
	if f.Search != "" {
		needle := "%" + strings.ToLower(f.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(sku) LIKE ?", needle, needle)
	}

	var products []models.Product
	err := query.Order("created_at DESC, product_id DESC").Find(&products).Error
	return products, err
}

// UpdateProduct applies a partial update and returns the updated row.
// Stock changes are rejected here: they must go through AdjustStock so the
// movement ledger stays in step with the stock column.
func (s *Store) UpdateProduct(id uint, updates map[string]interface{}) (*models.Product, error) {
	delete(updates, "stock_quantity")

	// Map updates skip the field serializer, so the images slice has to be
	// marshalled to its stored JSON form here
	if images, ok := updates["images"].([]string); ok {
		raw, err := json.Marshal(images)
		if err != nil {
			return nil, err
		}
		updates["images"] = string(raw)
	}

	if len(updates) > 0 {
		result := s.db.Model(&models.Product{}).Where("product_id = ?", id).Updates(updates)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, ErrNotFound
		}
	}
	return s.GetProduct(id)
}

// DeleteProduct removes a product. Products referenced by order items are
// kept and ErrProductReferenced is returned; the order history must stay
// intact.
func (s *Store) DeleteProduct(id uint) error {
	var refs int64
	if err := s.db.Model(&models.OrderItem{}).Where("product_id = ?", id).Count(&refs).Error; err != nil {
		return err
	}
	if refs > 0 {
		return ErrProductReferenced
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		// Cart rows and ledger entries for the product go with it
		if err := tx.Where("product_id = ?", id).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", id).Delete(&models.InventoryMovement{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Product{}, "product_id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

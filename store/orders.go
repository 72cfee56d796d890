package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/arbazessaqkhan/jktfeed/models"
)

// Allowed order status transitions. Cancellation is only possible before
// the order ships.
var orderTransitions = map[string][]string{
	models.OrderStatusPending:   {models.OrderStatusConfirmed, models.OrderStatusCancelled},
	models.OrderStatusConfirmed: {models.OrderStatusShipped, models.OrderStatusCancelled},
	models.OrderStatusShipped:   {models.OrderStatusDelivered},
	models.OrderStatusDelivered: {},
	models.OrderStatusCancelled: {},
}

// CanTransition reports whether an order may move from one status to another
func CanTransition(from, to string) bool {
	for _, allowed := range orderTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// OrderLineInput is one requested order line
type OrderLineInput struct {
	ProductID uint
	Quantity  int
}

// CreateOrderInput carries everything needed to place an order
type CreateOrderInput struct {
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Shipping      models.ShippingAddress
	PaymentMethod *string
	Notes         *string
	Items         []OrderLineInput
	// SessionID, when set, clears the session's cart in the same transaction
	SessionID string
}

// CreateOrder writes the order, its items, the stock decrements and the
// matching ledger movements in a single transaction. Any failure rolls the
// whole order back. Unit prices are read from the catalog at order time and
// the total is computed server-side.
func (s *Store) CreateOrder(input CreateOrderInput) (*models.Order, error) {
	if len(input.Items) == 0 {
		return nil, ErrEmptyOrder
	}

	var order models.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		order = models.Order{
			OrderNo:       newOrderNo(),
			CustomerName:  input.CustomerName,
			CustomerEmail: input.CustomerEmail,
			CustomerPhone: input.CustomerPhone,
			Shipping:      input.Shipping,
			TotalAmount:   decimal.Zero,
			Status:        models.OrderStatusPending,
			PaymentStatus: models.PaymentStatusPending,
			PaymentMethod: input.PaymentMethod,
			Notes:         input.Notes,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		total := decimal.Zero
		for _, line := range input.Items {
			if line.Quantity <= 0 {
				return fmt.Errorf("%w: quantity must be positive", ErrEmptyOrder)
			}

			var product models.Product
			if err := tx.First(&product, "product_id = ?", line.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrNotFound
				}
				return err
			}

			// Conditional decrement: the WHERE guard keeps stock from
			// going negative without relying on row locks
			result := tx.Model(&models.Product{}).
				Where("product_id = ? AND stock_quantity >= ?", line.ProductID, line.Quantity).
				Update("stock_quantity", gorm.Expr("stock_quantity - ?", line.Quantity))
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return ErrInsufficientStock
			}

			lineTotal := product.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
			item := models.OrderItem{
				OrderID:    order.OrderID,
				ProductID:  line.ProductID,
				Quantity:   line.Quantity,
				UnitPrice:  product.Price,
				TotalPrice: lineTotal,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}

			movement := models.InventoryMovement{
				ProductID:    line.ProductID,
				MovementType: models.MovementOut,
				Quantity:     line.Quantity,
				Reason:       "order " + order.OrderNo,
				ReferenceID:  &order.OrderID,
			}
			if err := tx.Create(&movement).Error; err != nil {
				return err
			}

			total = total.Add(lineTotal)
		}

		if err := tx.Model(&order).Update("total_amount", total).Error; err != nil {
			return err
		}
		order.TotalAmount = total

		if input.SessionID != "" {
			if err := tx.Where("session_id = ?", input.SessionID).Delete(&models.CartItem{}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetOrder(order.OrderID)
}

// GetOrder fetches an order with its items
func (s *Store) GetOrder(id uint) (*models.Order, error) {
	var order models.Order
	err := s.db.Preload("Items").First(&order, "order_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// ListOrders returns orders newest first with optional status filter and
// page/limit pagination. The second return value is the total row count.
func (s *Store) ListOrders(status string, page, limit int) ([]models.Order, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	query := s.db.Model(&models.Order{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []models.Order
	err := query.Preload("Items").
		Order("created_at DESC, order_id DESC").
		Limit(limit).Offset((page - 1) * limit).
		Find(&orders).Error
	return orders, total, err
}

// UpdateOrderStatus moves an order through the status state machine.
// Cancelling a not-yet-shipped order returns its stock with matching
// ledger movements.
func (s *Store) UpdateOrderStatus(id uint, newStatus string) (*models.Order, error) {
	if _, known := orderTransitions[newStatus]; !known {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, newStatus)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, "order_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if !CanTransition(order.Status, newStatus) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, newStatus)
		}

		if newStatus == models.OrderStatusCancelled {
			if err := restockOrder(tx, &order); err != nil {
				return err
			}
		}

		return tx.Model(&order).Update("status", newStatus).Error
	})
	if err != nil {
		return nil, err
	}

	return s.GetOrder(id)
}

// UpdateOrderPayment overwrites the payment status and method
func (s *Store) UpdateOrderPayment(id uint, paymentStatus string, paymentMethod *string) (*models.Order, error) {
	updates := map[string]interface{}{"payment_status": paymentStatus}
	if paymentMethod != nil {
		updates["payment_method"] = *paymentMethod
	}

	result := s.db.Model(&models.Order{}).Where("order_id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.GetOrder(id)
}

// restockOrder returns the items of a cancelled order to stock
func restockOrder(tx *gorm.DB, order *models.Order) error {
	var items []models.OrderItem
	if err := tx.Where("order_id = ?", order.OrderID).Find(&items).Error; err != nil {
		return err
	}

	for _, item := range items {
		err := tx.Model(&models.Product{}).
			Where("product_id = ?", item.ProductID).
			Update("stock_quantity", gorm.Expr("stock_quantity + ?", item.Quantity)).Error
		if err != nil {
			return err
		}

		movement := models.InventoryMovement{
			ProductID:    item.ProductID,
			MovementType: models.MovementIn,
			Quantity:     item.Quantity,
			Reason:       "order " + order.OrderNo + " cancelled",
			ReferenceID:  &order.OrderID,
		}
		if err := tx.Create(&movement).Error; err != nil {
			return err
		}
	}
	return nil
}

// newOrderNo builds a unique, human-scannable order reference
func newOrderNo() string {
	return fmt.Sprintf("JKT-%s-%s", time.Now().Format("20060102"), nuid.Next())
}

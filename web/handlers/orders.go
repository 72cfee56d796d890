package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/arbazessaqkhan/jktfeed/models"
	"github.com/arbazessaqkhan/jktfeed/store"
)

type shippingAddressPayload struct {
	Street     string `json:"street" validate:"required,max=200"`
	City       string `json:"city" validate:"required,max=100"`
	PostalCode string `json:"postal_code" validate:"max=20"`
	Country    string `json:"country" validate:"required,max=100"`
}

type orderLinePayload struct {
	ProductID uint `json:"product_id" validate:"required"`
	Quantity  int  `json:"quantity" validate:"required,gte=1"`
}

type orderCreateRequest struct {
	CustomerName  string                 `json:"customer_name" validate:"required,max=100"`
	CustomerEmail string                 `json:"customer_email" validate:"required,email"`
	CustomerPhone string                 `json:"customer_phone" validate:"max=20"`
	Shipping      shippingAddressPayload `json:"shipping_address" validate:"required"`
	PaymentMethod *string                `json:"payment_method" validate:"omitempty,max=50"`
	Notes         *string                `json:"notes"`
	Items         []orderLinePayload     `json:"items" validate:"required,min=1,dive"`
	SessionID     string                 `json:"session_id" validate:"max=100"`
}

// OrderCreate places an order. The order row, its items, the stock
// decrements and the ledger movements are written atomically.
func (h *Handler) OrderCreate(c *fiber.Ctx) error {
	var req orderCreateRequest
	if !h.parseBody(c, &req) {
		return nil
	}

	input := store.CreateOrderInput{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Shipping: models.ShippingAddress{
			Street:     req.Shipping.Street,
			City:       req.Shipping.City,
			PostalCode: req.Shipping.PostalCode,
			Country:    req.Shipping.Country,
		},
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
		SessionID:     req.SessionID,
	}
	for _, line := range req.Items {
		input.Items = append(input.Items, store.OrderLineInput{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
	}

	order, err := h.store.CreateOrder(input)
	if err != nil {
		return storeError(c, err, "orders.create")
	}

	if err := h.store.CreateNotification(models.NotificationOrder,
		"New order "+order.OrderNo, "from "+order.CustomerName); err != nil {
		log.Error().Err(err).Msg("failed to create order notification")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"order":   order,
	})
}

// OrderList returns orders newest first, with optional status filter and
// pagination
func (h *Handler) OrderList(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)
	status := c.Query("status")

	orders, total, err := h.store.ListOrders(status, page, limit)
	if err != nil {
		return storeError(c, err, "orders.list")
	}
	return c.JSON(fiber.Map{
		"orders": orders,
		"total":  total,
		"page":   page,
		"limit":  limit,
	})
}

// OrderView returns one order with its items
func (h *Handler) OrderView(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	order, err := h.store.GetOrder(uint(id))
	if err != nil {
		return storeError(c, err, "orders.get")
	}
	return c.JSON(order)
}

type orderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed shipped delivered cancelled"`
}

// OrderUpdateStatus moves an order through the status state machine;
// illegal transitions are rejected with 409
func (h *Handler) OrderUpdateStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	var req orderStatusRequest
	if !h.parseBody(c, &req) {
		return nil
	}

	order, err := h.store.UpdateOrderStatus(uint(id), req.Status)
	if err != nil {
		return storeError(c, err, "orders.status")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"order":   order,
	})
}

type orderPaymentRequest struct {
	PaymentStatus string  `json:"payment_status" validate:"required,oneof=pending paid failed"`
	PaymentMethod *string `json:"payment_method" validate:"omitempty,max=50"`
}

// OrderUpdatePayment overwrites the payment status and method
func (h *Handler) OrderUpdatePayment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	var req orderPaymentRequest
	if !h.parseBody(c, &req) {
		return nil
	}

	order, err := h.store.UpdateOrderPayment(uint(id), req.PaymentStatus, req.PaymentMethod)
	if err != nil {
		return storeError(c, err, "orders.payment")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"order":   order,
	})
}

package handlers

import (
	"github.com/gofiber/fiber/v2"
)

type cartAddRequest struct {
	SessionID string `json:"session_id" validate:"required,max=100"`
	ProductID uint   `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gte=1"`
}

// CartAdd adds a product to the session cart, incrementing the quantity of
// an existing line
func (h *Handler) CartAdd(c *fiber.Ctx) error {
	var req cartAddRequest
	if !h.parseBody(c, &req) {
		return nil
	}

	item, err := h.store.AddToCart(req.SessionID, req.ProductID, req.Quantity)
	if err != nil {
		return storeError(c, err, "cart.add")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"item":    item,
	})
}

// CartList returns the session's cart rows with their products
func (h *Handler) CartList(c *fiber.Ctx) error {
	sessionID := c.Query("sessionId")
	if sessionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "sessionId query parameter is required",
		})
	}

	items, err := h.store.GetCart(sessionID)
	if err != nil {
		return storeError(c, err, "cart.list")
	}
	return c.JSON(items)
}

type cartUpdateRequest struct {
	Quantity int `json:"quantity" validate:"required,gte=1"`
}

// CartUpdate overwrites the quantity of a cart row
func (h *Handler) CartUpdate(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	var req cartUpdateRequest
	if !h.parseBody(c, &req) {
		return nil
	}

	item, err := h.store.UpdateCartItem(uint(id), req.Quantity)
	if err != nil {
		return storeError(c, err, "cart.update")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"item":    item,
	})
}

// CartRemove deletes one cart row
func (h *Handler) CartRemove(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	if err := h.store.RemoveCartItem(uint(id)); err != nil {
		return storeError(c, err, "cart.remove")
	}
	return c.JSON(fiber.Map{"success": true})
}

// CartClear empties the session's cart
func (h *Handler) CartClear(c *fiber.Ctx) error {
	sessionID := c.Query("sessionId")
	if sessionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "sessionId query parameter is required",
		})
	}

	if err := h.store.ClearCart(sessionID); err != nil {
		return storeError(c, err, "cart.clear")
	}
	return c.JSON(fiber.Map{"success": true})
}

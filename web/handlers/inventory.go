package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// InventoryList returns the movement ledger newest first, optionally
// filtered by product, paginated
func (h *Handler) InventoryList(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 50)

	var productID *uint
	if pid := c.QueryInt("productId", 0); pid > 0 {
		id := uint(pid)
		productID = &id
	}

	movements, total, err := h.store.ListInventoryMovements(productID, page, limit)
	if err != nil {
		return storeError(c, err, "inventory.list")
	}
	return c.JSON(fiber.Map{
		"movements": movements,
		"total":     total,
		"page":      page,
		"limit":     limit,
	})
}

type stockAdjustRequest struct {
	ProductID uint   `json:"product_id" validate:"required"`
	Delta     int    `json:"delta" validate:"required"`
	Reason    string `json:"reason" validate:"required,max=200"`
}

// InventoryAdjust applies a manual signed stock adjustment; the ledger
// entry is written in the same transaction
func (h *Handler) InventoryAdjust(c *fiber.Ctx) error {
	var req stockAdjustRequest
	if !h.parseBody(c, &req) {
		return nil
	}

	product, err := h.store.AdjustStock(req.ProductID, req.Delta, req.Reason)
	if err != nil {
		return storeError(c, err, "inventory.adjust")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"product": product,
	})
}

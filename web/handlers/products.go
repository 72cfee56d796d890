package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/arbazessaqkhan/jktfeed/models"
	"github.com/arbazessaqkhan/jktfeed/store"
)

type specificationsPayload struct {
	Protein    string `json:"protein"`
	Fat        string `json:"fat"`
	Fiber      string `json:"fiber"`
	Moisture   string `json:"moisture"`
	Energy     string `json:"energy"`
	PelletSize string `json:"pellet_size"`
}

type productCreateRequest struct {
	SKU           string                `json:"sku" validate:"required,max=50"`
	Name          string                `json:"name" validate:"required,max=200"`
	Description   string                `json:"description"`
	Category      string                `json:"category" validate:"required,oneof=early small stock"`
	Price         string                `json:"price" validate:"required"`
	StockQuantity int                   `json:"stock_quantity" validate:"gte=0"`
	Images        []string              `json:"images" validate:"dive,max=500"`
	Specs         specificationsPayload `json:"specifications"`
	Weight        string                `json:"weight" validate:"max=50"`
	IsActive      *bool                 `json:"is_active"`
}

// ProductList returns products with optional category/active/search filters
func (h *Handler) ProductList(c *fiber.Ctx) error {
	filter := store.ProductFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}
	if active := c.Query("active"); active != "" {
		b := active == "true"
		filter.Active = &b
	}

	products, err := h.store.ListProducts(filter)
	if err != nil {
		return storeError(c, err, "products.list")
	}
	return c.JSON(products)
}

// ProductView returns one product
func (h *Handler) ProductView(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	product, err := h.store.GetProduct(uint(id))
	if err != nil {
		return storeError(c, err, "products.get")
	}
	return c.JSON(product)
}

// ProductCreate inserts a catalog product
func (h *Handler) ProductCreate(c *fiber.Ctx) error {
	var req productCreateRequest
	if !h.parseBody(c, &req) {
		return nil
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil || price.IsNegative() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "price must be a non-negative decimal string",
		})
	}

	product := models.Product{
		SKU:           req.SKU,
		Name:          req.Name,
		Description:   req.Description,
		Category:      req.Category,
		Price:         price,
		StockQuantity: req.StockQuantity,
		Images:        req.Images,
		Specs: models.Specifications{
			Protein:    req.Specs.Protein,
			Fat:        req.Specs.Fat,
			Fiber:      req.Specs.Fiber,
			Moisture:   req.Specs.Moisture,
			Energy:     req.Specs.Energy,
			PelletSize: req.Specs.PelletSize,
		},
		Weight:   req.Weight,
		IsActive: true,
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if err := h.store.CreateProduct(&product); err != nil {
		return storeError(c, err, "products.create")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"product": product,
	})
}

type productUpdateRequest struct {
	SKU         *string                `json:"sku" validate:"omitempty,max=50"`
	Name        *string                `json:"name" validate:"omitempty,max=200"`
	Description *string                `json:"description"`
	Category    *string                `json:"category" validate:"omitempty,oneof=early small stock"`
	Price       *string                `json:"price"`
	Images      []string               `json:"images" validate:"omitempty,dive,max=500"`
	Specs       *specificationsPayload `json:"specifications"`
	Weight      *string                `json:"weight" validate:"omitempty,max=50"`
	IsActive    *bool                  `json:"is_active"`
}

// ProductUpdate applies a partial update. Stock is deliberately not
// updatable here; use the inventory adjustment endpoint.
func (h *Handler) ProductUpdate(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	var req productUpdateRequest
	if !h.parseBody(c, &req) {
		return nil
	}

	updates := map[string]interface{}{}
	if req.SKU != nil {
		updates["sku"] = *req.SKU
	}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Price != nil {
		price, err := decimal.NewFromString(*req.Price)
		if err != nil || price.IsNegative() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "price must be a non-negative decimal string",
			})
		}
		updates["price"] = price
	}
	if req.Images != nil {
		updates["images"] = req.Images
	}
	if req.Specs != nil {
		updates["spec_protein"] = req.Specs.Protein
		updates["spec_fat"] = req.Specs.Fat
		updates["spec_fiber"] = req.Specs.Fiber
		updates["spec_moisture"] = req.Specs.Moisture
		updates["spec_energy"] = req.Specs.Energy
		updates["spec_pellet_size"] = req.Specs.PelletSize
	}
	if req.Weight != nil {
		updates["weight"] = *req.Weight
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	product, err := h.store.UpdateProduct(uint(id), updates)
	if err != nil {
		return storeError(c, err, "products.update")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"product": product,
	})
}

// ProductDelete removes a product unless order history references it
func (h *Handler) ProductDelete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	if err := h.store.DeleteProduct(uint(id)); err != nil {
		return storeError(c, err, "products.delete")
	}
	return c.JSON(fiber.Map{"success": true})
}

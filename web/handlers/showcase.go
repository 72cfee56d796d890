package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/arbazessaqkhan/jktfeed/models"
)

// ShowcaseList returns gallery images ordered by display rank;
// ?active=true limits to the public-facing set
func (h *Handler) ShowcaseList(c *fiber.Ctx) error {
	activeOnly := c.Query("active") == "true"

	images, err := h.store.ListShowcaseImages(activeOnly)
	if err != nil {
		return storeError(c, err, "showcase.list")
	}
	return c.JSON(images)
}

type showcaseCreateRequest struct {
	Title        string  `json:"title" validate:"required,max=200"`
	Description  *string `json:"description"`
	ImageURL     string  `json:"image_url" validate:"required,max=500"`
	DisplayOrder int     `json:"display_order" validate:"gte=0"`
	IsActive     *bool   `json:"is_active"`
}

// ShowcaseCreate inserts a gallery image
func (h *Handler) ShowcaseCreate(c *fiber.Ctx) error {
	var req showcaseCreateRequest
	if !h.parseBody(c, &req) {
		return nil
	}

	img := models.ShowcaseImage{
		Title:        req.Title,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		DisplayOrder: req.DisplayOrder,
		IsActive:     true,
	}
	if req.IsActive != nil {
		img.IsActive = *req.IsActive
	}

	if err := h.store.CreateShowcaseImage(&img); err != nil {
		return storeError(c, err, "showcase.create")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"image":   img,
	})
}

type showcaseUpdateRequest struct {
	Title        *string `json:"title" validate:"omitempty,max=200"`
	Description  *string `json:"description"`
	ImageURL     *string `json:"image_url" validate:"omitempty,max=500"`
	DisplayOrder *int    `json:"display_order" validate:"omitempty,gte=0"`
	IsActive     *bool   `json:"is_active"`
}

// ShowcaseUpdate applies a partial update to a gallery image
func (h *Handler) ShowcaseUpdate(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	var req showcaseUpdateRequest
	if !h.parseBody(c, &req) {
		return nil
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.DisplayOrder != nil {
		updates["display_order"] = *req.DisplayOrder
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	img, err := h.store.UpdateShowcaseImage(uint(id), updates)
	if err != nil {
		return storeError(c, err, "showcase.update")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"image":   img,
	})
}

// ShowcaseDelete removes a gallery image
func (h *Handler) ShowcaseDelete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	if err := h.store.DeleteShowcaseImage(uint(id)); err != nil {
		return storeError(c, err, "showcase.delete")
	}
	return c.JSON(fiber.Map{"success": true})
}

package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// SettingList returns all settings
func (h *Handler) SettingList(c *fiber.Ctx) error {
	settings, err := h.store.ListSettings()
	if err != nil {
		return storeError(c, err, "settings.list")
	}
	return c.JSON(settings)
}

type settingUpdateRequest struct {
	Value string `json:"value" validate:"required"`
}

// SettingUpdate creates or overwrites a setting value
func (h *Handler) SettingUpdate(c *fiber.Ctx) error {
	key := c.Params("key")
	if key == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid key"})
	}

	var req settingUpdateRequest
	if !h.parseBody(c, &req) {
		return nil
	}

	setting, err := h.store.SetSetting(key, req.Value)
	if err != nil {
		return storeError(c, err, "settings.update")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"setting": setting,
	})
}

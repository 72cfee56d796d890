package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// NotificationList returns the admin inbox, newest first;
// ?unread=true limits to unread entries
func (h *Handler) NotificationList(c *fiber.Ctx) error {
	unreadOnly := c.Query("unread") == "true"

	notifications, err := h.store.ListNotifications(unreadOnly)
	if err != nil {
		return storeError(c, err, "notifications.list")
	}
	return c.JSON(notifications)
}

// NotificationMarkRead flags a notification as read
func (h *Handler) NotificationMarkRead(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	if err := h.store.MarkNotificationRead(uint(id)); err != nil {
		return storeError(c, err, "notifications.read")
	}
	return c.JSON(fiber.Map{"success": true})
}

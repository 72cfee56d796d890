package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/arbazessaqkhan/jktfeed/database"
)

// GetSQLLogs returns the recent SQL query log
func (h *Handler) GetSQLLogs(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"queries": database.SQLLogger.GetQueries(),
	})
}

// ClearSQLLogs empties the SQL query log
func (h *Handler) ClearSQLLogs(c *fiber.Ctx) error {
	database.SQLLogger.Clear()
	return c.JSON(fiber.Map{"success": true})
}

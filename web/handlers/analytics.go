package handlers

import (
	"github.com/gofiber/fiber/v2"
)

type pageViewRequest struct {
	VisitorToken string  `json:"visitor_token" validate:"required,max=100"`
	Path         string  `json:"path" validate:"required,max=300"`
	Referrer     *string `json:"referrer" validate:"omitempty,max=500"`
}

// PageViewCreate records a tracked page load from the storefront
func (h *Handler) PageViewCreate(c *fiber.Ctx) error {
	var req pageViewRequest
	if !h.parseBody(c, &req) {
		return nil
	}

	var userAgent *string
	if ua := c.Get("User-Agent"); ua != "" {
		userAgent = &ua
	}

	if err := h.store.RecordPageView(req.VisitorToken, req.Path, req.Referrer, userAgent); err != nil {
		return storeError(c, err, "analytics.pageview")
	}
	return c.JSON(fiber.Map{"success": true})
}

// AnalyticsStats returns visitor totals, top pages and a daily series
func (h *Handler) AnalyticsStats(c *fiber.Ctx) error {
	days := c.QueryInt("days", 30)

	stats, err := h.store.GetVisitorStats(days)
	if err != nil {
		return storeError(c, err, "analytics.stats")
	}
	return c.JSON(stats)
}

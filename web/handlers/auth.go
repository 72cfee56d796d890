package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/arbazessaqkhan/jktfeed/auth"
	"github.com/arbazessaqkhan/jktfeed/web/middleware"
)

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login verifies admin credentials and issues a session token as JSON and
// as an http-only cookie
func (h *Handler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if !h.parseBody(c, &req) {
		return nil
	}

	token, user, err := h.auth.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid credentials",
			})
		}
		return storeError(c, err, "auth.login")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "session",
		Value:    token,
		Expires:  time.Now().Add(12 * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return c.JSON(fiber.Map{
		"success":    true,
		"token":      token,
		"token_type": "Bearer",
		"user": fiber.Map{
			"username": user.Username,
			"role":     user.Role,
		},
	})
}

// Me returns the verified session claims
func (h *Handler) Me(c *fiber.Ctx) error {
	claims := middleware.Claims(c)
	return c.JSON(fiber.Map{
		"user_id":  claims.UserID,
		"username": claims.Username,
		"role":     claims.Role,
	})
}

// Logout clears the session cookie. Tokens themselves expire on their own.
func (h *Handler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "session",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return c.JSON(fiber.Map{"success": true})
}

package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/arbazessaqkhan/jktfeed/auth"
	"github.com/arbazessaqkhan/jktfeed/models"
)

// ClaimsKey is the fiber.Ctx locals key holding the verified session claims
const ClaimsKey = "sessionClaims"

// Protected returns a middleware that requires a valid admin session token,
// taken from the Authorization header or the session cookie
func Protected(authSvc *auth.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var token string
		if ah := c.Get("Authorization"); strings.HasPrefix(ah, "Bearer ") {
			token = strings.TrimPrefix(ah, "Bearer ")
		}
		if token == "" {
			token = c.Cookies("session")
		}
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "login required",
			})
		}

		claims, err := authSvc.ParseToken(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid session",
			})
		}
		if claims.Role != models.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "admin access required",
			})
		}

		c.Locals(ClaimsKey, claims)
		return c.Next()
	}
}

// Claims returns the session claims stored by Protected, or nil
func Claims(c *fiber.Ctx) *auth.Claims {
	claims, _ := c.Locals(ClaimsKey).(*auth.Claims)
	return claims
}

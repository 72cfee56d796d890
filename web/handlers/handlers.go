package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/arbazessaqkhan/jktfeed/auth"
	"github.com/arbazessaqkhan/jktfeed/store"
)

// Handler bundles the dependencies every route handler needs
type Handler struct {
	store    *store.Store
	auth     *auth.Service
	validate *validator.Validate
}

// New creates a Handler over the store and auth service
func New(st *store.Store, authSvc *auth.Service) *Handler {
	return &Handler{
		store:    st,
		auth:     authSvc,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// fieldError is one validation violation in a 400 response
type fieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// parseBody parses and validates a JSON request body. A false return means
// the error response has already been written.
func (h *Handler) parseBody(c *fiber.Ctx, dst interface{}) bool {
	if err := c.BodyParser(dst); err != nil {
		c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
		return false
	}

	if err := h.validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			violations := make([]fieldError, 0, len(verrs))
			for _, ve := range verrs {
				violations = append(violations, fieldError{Field: ve.Field(), Rule: ve.Tag()})
			}
			c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":      "validation failed",
				"violations": violations,
			})
			return false
		}
		c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "validation failed",
		})
		return false
	}
	return true
}

// storeError maps store errors onto HTTP responses. Infrastructure failures
// become a generic 500; the cause only reaches the server log.
func storeError(c *fiber.Ctx, err error, operation string) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "not found",
		})
	case errors.Is(err, store.ErrInvalidTransition),
		errors.Is(err, store.ErrInsufficientStock),
		errors.Is(err, store.ErrProductReferenced):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": err.Error(),
		})
	case errors.Is(err, store.ErrEmptyOrder):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	default:
		log.Error().Err(err).Str("operation", operation).Msg("storage failure")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "internal server error",
		})
	}
}

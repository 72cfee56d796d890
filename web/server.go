package web

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/arbazessaqkhan/jktfeed/auth"
	"github.com/arbazessaqkhan/jktfeed/config"
	"github.com/arbazessaqkhan/jktfeed/store"
	"github.com/arbazessaqkhan/jktfeed/web/handlers"
	"github.com/arbazessaqkhan/jktfeed/web/middleware"
)

// Server represents the web server
type Server struct {
	app *fiber.App
}

// NewServer creates a new Fiber server wired to the given database
func NewServer(cfg *config.Config, db *gorm.DB) *Server {
	st := store.New(db)
	authSvc := auth.NewService(st, cfg.Auth.JWTSecret)
	h := handlers.New(st, authSvc)

	app := fiber.New(fiber.Config{
		AppName: "jktfeed-api",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			log.Error().Err(err).
				Str("method", c.Method()).
				Str("path", c.Path()).
				Msg("request failed")

			body := fiber.Map{"error": "internal server error"}
			if code != fiber.StatusInternalServerError {
				body["error"] = err.Error()
			}
			return c.Status(code).JSON(body)
		},
	})

	// Middleware
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.App.CORSOrigin,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path} ${error}\n",
	}))
	app.Use(middleware.Metrics())

	setupRoutes(app, h, authSvc)

	return &Server{app: app}
}

// App exposes the fiber app for tests
func (s *Server) App() *fiber.App {
	return s.app
}

// Start starts the server
func (s *Server) Start(port string) error {
	log.Info().Str("port", port).Msg("server starting")
	return s.app.Listen(":" + port)
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// setupRoutes configures all application routes
func setupRoutes(app *fiber.App, h *handlers.Handler, authSvc *auth.Service) {
	admin := middleware.Protected(authSvc)

	// Operational endpoints
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", middleware.MetricsHandler())

	api := app.Group("/api")

	// Auth
	api.Post("/auth/login", h.Login)
	api.Post("/auth/logout", h.Logout)
	api.Get("/auth/me", admin, h.Me)

	// Contact form and admin thread
	api.Post("/contact", h.ContactCreate)
	api.Get("/contacts", admin, h.ContactList)
	api.Get("/contacts/:id", admin, h.ContactView)
	api.Post("/contacts/:id/messages", admin, h.ContactReply)

	// Catalog
	api.Get("/products", h.ProductList)
	api.Get("/products/:id", h.ProductView)
	api.Post("/products", admin, h.ProductCreate)
	api.Put("/products/:id", admin, h.ProductUpdate)
	api.Delete("/products/:id", admin, h.ProductDelete)

	// Session cart
	api.Get("/cart", h.CartList)
	api.Post("/cart", h.CartAdd)
	api.Put("/cart/:id", h.CartUpdate)
	api.Delete("/cart/clear", h.CartClear)
	api.Delete("/cart/:id", h.CartRemove)

	// Orders
	api.Post("/orders", h.OrderCreate)
	api.Get("/orders", admin, h.OrderList)
	api.Get("/orders/:id", h.OrderView)
	api.Put("/orders/:id/status", admin, h.OrderUpdateStatus)
	api.Put("/orders/:id/payment", admin, h.OrderUpdatePayment)

	// Inventory ledger
	api.Get("/inventory", admin, h.InventoryList)
	api.Post("/inventory/adjust", admin, h.InventoryAdjust)

	// Homepage gallery
	api.Get("/showcase-images", h.ShowcaseList)
	api.Post("/showcase-images", admin, h.ShowcaseCreate)
	api.Put("/showcase-images/:id", admin, h.ShowcaseUpdate)
	api.Delete("/showcase-images/:id", admin, h.ShowcaseDelete)

	// Admin inbox
	api.Get("/notifications", admin, h.NotificationList)
	api.Put("/notifications/:id/read", admin, h.NotificationMarkRead)

	// Settings
	api.Get("/settings", admin, h.SettingList)
	api.Put("/settings/:key", admin, h.SettingUpdate)

	// Visitor analytics
	api.Post("/analytics/pageview", h.PageViewCreate)
	api.Get("/analytics/stats", admin, h.AnalyticsStats)

	// Debug endpoint for SQL logs
	api.Get("/debug/sql", admin, h.GetSQLLogs)
	api.Delete("/debug/sql", admin, h.ClearSQLLogs)
}

package web

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/arbazessaqkhan/jktfeed/config"
	"github.com/arbazessaqkhan/jktfeed/models"
	"github.com/arbazessaqkhan/jktfeed/store"
)

func newTestServer(t *testing.T) (*fiber.App, *store.Store) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(models.AllModels()...))

	st := store.New(db)
	hash, err := bcrypt.GenerateFromPassword([]byte("trout-secret"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, st.CreateUser(&models.User{
		Username:     "admin",
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}))

	cfg := &config.Config{
		App:  config.AppConfig{Environment: "development", CORSOrigin: "*"},
		Auth: config.AuthConfig{JWTSecret: "test-signing-secret"},
		Cart: config.CartConfig{TTLHours: 168},
	}

	srv := NewServer(cfg, db)
	return srv.App(), st
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}, token string) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var decoded map[string]interface{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

func adminToken(t *testing.T, app *fiber.App) string {
	t.Helper()

	resp, body := doJSON(t, app, fiber.MethodPost, "/api/auth/login", fiber.Map{
		"username": "admin",
		"password": "trout-secret",
	}, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func seedCatalogProduct(t *testing.T, st *store.Store, stock int) *models.Product {
	t.Helper()

	p := &models.Product{
		SKU:           "JKT-S-20",
		Name:          "Grower Feed 20kg",
		Category:      models.CategorySmall,
		Price:         decimal.RequireFromString("1450.00"),
		StockQuantity: stock,
		IsActive:      true,
	}
	require.NoError(t, st.CreateProduct(p))
	return p
}

func TestHealth(t *testing.T) {
	app, _ := newTestServer(t)

	resp, body := doJSON(t, app, fiber.MethodGet, "/health", nil, "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
}

func TestLogin(t *testing.T) {
	app, _ := newTestServer(t)

	resp, _ := doJSON(t, app, fiber.MethodPost, "/api/auth/login", fiber.Map{
		"username": "admin",
		"password": "wrong",
	}, "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	token := adminToken(t, app)

	resp, body := doJSON(t, app, fiber.MethodGet, "/api/auth/me", nil, token)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "admin", body["username"])
	assert.Equal(t, models.RoleAdmin, body["role"])
}

func TestAdminRoutesRequireSession(t *testing.T) {
	app, st := newTestServer(t)

	resp, _ := doJSON(t, app, fiber.MethodGet, "/api/contacts", nil, "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, _ = doJSON(t, app, fiber.MethodGet, "/api/contacts", nil, "garbage-token")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	// A valid session without the admin role is rejected too
	hash, err := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, st.CreateUser(&models.User{
		Username:     "shopper",
		PasswordHash: string(hash),
		Role:         models.RoleCustomer,
	}))

	resp, body := doJSON(t, app, fiber.MethodPost, "/api/auth/login", fiber.Map{
		"username": "shopper",
		"password": "pw",
	}, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	customerToken, _ := body["token"].(string)

	resp, _ = doJSON(t, app, fiber.MethodGet, "/api/contacts", nil, customerToken)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestContactForm(t *testing.T) {
	app, _ := newTestServer(t)

	resp, body := doJSON(t, app, fiber.MethodPost, "/api/contact", fiber.Map{
		"name":    "Gulzar Dar",
		"email":   "gulzar@example.com",
		"subject": "Feed for fingerlings",
		"message": "Which pellet size suits 5g fingerlings?",
	}, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])

	// The submission lands in the admin inbox as a notification
	token := adminToken(t, app)
	req := httptest.NewRequest(fiber.MethodGet, "/api/notifications?unread=true", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	notifResp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, notifResp.StatusCode)

	resp, _ = doJSON(t, app, fiber.MethodGet, "/api/contacts", nil, token)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestContactFormValidation(t *testing.T) {
	app, _ := newTestServer(t)

	resp, body := doJSON(t, app, fiber.MethodPost, "/api/contact", fiber.Map{
		"name":    "Gulzar Dar",
		"email":   "not-an-email",
		"subject": "hello",
	}, "")
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "validation failed", body["error"])
	assert.NotEmpty(t, body["violations"])
}

func TestCartEndpoints(t *testing.T) {
	app, st := newTestServer(t)
	p := seedCatalogProduct(t, st, 40)

	add := fiber.Map{
		"session_id": "sess-1",
		"product_id": p.ProductID,
		"quantity":   2,
	}
	resp, _ := doJSON(t, app, fiber.MethodPost, "/api/cart", add, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp, body := doJSON(t, app, fiber.MethodPost, "/api/cart", add, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	item, ok := body["item"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(4), item["quantity"])

	resp, _ = doJSON(t, app, fiber.MethodGet, "/api/cart?sessionId=sess-1", nil, "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, app, fiber.MethodGet, "/api/cart", nil, "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, app, fiber.MethodDelete, "/api/cart/clear?sessionId=sess-1", nil, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	cart, err := st.GetCart("sess-1")
	require.NoError(t, err)
	assert.Empty(t, cart)
}

func TestOrderFlow(t *testing.T) {
	app, st := newTestServer(t)
	p := seedCatalogProduct(t, st, 10)
	token := adminToken(t, app)

	resp, body := doJSON(t, app, fiber.MethodPost, "/api/orders", fiber.Map{
		"customer_name":  "Bashir Ahmad",
		"customer_email": "bashir@example.com",
		"shipping_address": fiber.Map{
			"street":  "Hatchery Road 12",
			"city":    "Anantnag",
			"country": "India",
		},
		"items": []fiber.Map{
			{"product_id": p.ProductID, "quantity": 3},
		},
	}, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	order, ok := body["order"].(map[string]interface{})
	require.True(t, ok)
	orderID := order["order_id"].(float64)
	assert.Equal(t, "pending", order["status"])

	got, err := st.GetProduct(p.ProductID)
	require.NoError(t, err)
	assert.Equal(t, 7, got.StockQuantity)

	// Jumping straight to shipped is an illegal transition
	path := "/api/orders/" + strconv.Itoa(int(orderID)) + "/status"
	resp, _ = doJSON(t, app, fiber.MethodPut, path, fiber.Map{"status": "shipped"}, token)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	resp, body = doJSON(t, app, fiber.MethodPut, path, fiber.Map{"status": "confirmed"}, token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	order = body["order"].(map[string]interface{})
	assert.Equal(t, "confirmed", order["status"])

	// Status updates are admin-only
	resp, _ = doJSON(t, app, fiber.MethodPut, path, fiber.Map{"status": "shipped"}, "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestOrderInsufficientStock(t *testing.T) {
	app, st := newTestServer(t)
	p := seedCatalogProduct(t, st, 2)

	resp, _ := doJSON(t, app, fiber.MethodPost, "/api/orders", fiber.Map{
		"customer_name":  "Bashir Ahmad",
		"customer_email": "bashir@example.com",
		"shipping_address": fiber.Map{
			"street":  "Hatchery Road 12",
			"city":    "Anantnag",
			"country": "India",
		},
		"items": []fiber.Map{
			{"product_id": p.ProductID, "quantity": 5},
		},
	}, "")
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	got, err := st.GetProduct(p.ProductID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.StockQuantity)
}

func TestShowcasePublicListing(t *testing.T) {
	app, st := newTestServer(t)

	require.NoError(t, st.CreateShowcaseImage(&models.ShowcaseImage{
		Title: "hatchery", ImageURL: "/img/hatchery.jpg", DisplayOrder: 1, IsActive: true,
	}))
	require.NoError(t, st.CreateShowcaseImage(&models.ShowcaseImage{
		Title: "retired", ImageURL: "/img/retired.jpg", DisplayOrder: 0, IsActive: false,
	}))

	req := httptest.NewRequest(fiber.MethodGet, "/api/showcase-images?active=true", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var images []models.ShowcaseImage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&images))
	require.Len(t, images, 1)
	assert.Equal(t, "hatchery", images[0].Title)
}

func TestAnalyticsEndpoints(t *testing.T) {
	app, _ := newTestServer(t)
	token := adminToken(t, app)

	resp, _ := doJSON(t, app, fiber.MethodPost, "/api/analytics/pageview", fiber.Map{
		"visitor_token": "tok-1",
		"path":          "/products",
	}, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, body := doJSON(t, app, fiber.MethodGet, "/api/analytics/stats", nil, token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), body["total_visitors"])
	assert.Equal(t, float64(1), body["total_page_views"])
}

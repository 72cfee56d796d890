package database

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/nats-io/nuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/arbazessaqkhan/jktfeed/models"
)

// SimulationConfig holds traffic simulation parameters
type SimulationConfig struct {
	StartDate       time.Time
	EndDate         time.Time
	DB              *gorm.DB
	DailyVisitors   int     // New visitors arriving per day
	CartRate        float64 // Fraction of visitors that add something to a cart
	OrderRate       float64 // Fraction of carts that turn into an order
	MaxItemsPerCart int
}

// DefaultSimulationConfig returns parameters that produce a small but
// realistic month of storefront traffic.
func DefaultSimulationConfig(db *gorm.DB, start, end time.Time) SimulationConfig {
	return SimulationConfig{
		StartDate:       start,
		EndDate:         end,
		DB:              db,
		DailyVisitors:   25,
		CartRate:        0.3,
		OrderRate:       0.4,
		MaxItemsPerCart: 3,
	}
}

var simulationPaths = []string{
	"/",
	"/products",
	"/products/early-feed",
	"/products/grower-feed",
	"/products/stock-feed",
	"/about",
	"/contact",
}

// TrafficSimulation generates visitors, page views, carts and orders
// over a date range. Timestamps are backdated so analytics queries see
// a believable history.
type TrafficSimulation struct {
	config   SimulationConfig
	products []models.Product
	rng      *rand.Rand
}

// NewTrafficSimulation creates a simulation instance and loads the
// catalog it draws order lines from.
func NewTrafficSimulation(config SimulationConfig) (*TrafficSimulation, error) {
	sim := &TrafficSimulation{
		config: config,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	if err := config.DB.Where("is_active = ?", true).Find(&sim.products).Error; err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	if len(sim.products) == 0 {
		return nil, fmt.Errorf("no active products, seed the catalog first")
	}

	return sim, nil
}

// RunSimulation generates traffic for each day in [start, end]
func RunSimulation(db *gorm.DB, start, end time.Time) error {
	sim, err := NewTrafficSimulation(DefaultSimulationConfig(db, start, end))
	if err != nil {
		return err
	}
	return sim.Run()
}

// Run executes the simulation day by day
func (s *TrafficSimulation) Run() error {
	for day := s.config.StartDate; !day.After(s.config.EndDate); day = day.AddDate(0, 0, 1) {
		if err := s.processDay(day); err != nil {
			return fmt.Errorf("simulation failed on %s: %w", day.Format("2006-01-02"), err)
		}
	}
	return nil
}

func (s *TrafficSimulation) processDay(day time.Time) error {
	visitors := s.config.DailyVisitors + s.rng.Intn(s.config.DailyVisitors)

	var pageViews, carts, orders int
	for i := 0; i < visitors; i++ {
		at := day.Add(time.Duration(8+s.rng.Intn(13)) * time.Hour).
			Add(time.Duration(s.rng.Intn(60)) * time.Minute)

		sessionID, views, err := s.simulateVisit(at)
		if err != nil {
			return err
		}
		pageViews += views

		if s.rng.Float64() >= s.config.CartRate {
			continue
		}
		if err := s.simulateCart(sessionID, at); err != nil {
			return err
		}
		carts++

		if s.rng.Float64() >= s.config.OrderRate {
			continue
		}
		if err := s.simulateOrder(sessionID, at.Add(10*time.Minute)); err != nil {
			return err
		}
		orders++
	}

	log.Info().
		Str("date", day.Format("2006-01-02")).
		Int("visitors", visitors).
		Int("page_views", pageViews).
		Int("carts", carts).
		Int("orders", orders).
		Msg("simulated day")

	return nil
}

// simulateVisit creates a visitor with a short trail of page views and
// returns the session identifier used for any follow-up cart activity.
func (s *TrafficSimulation) simulateVisit(at time.Time) (string, int, error) {
	token := "sim-" + nuid.Next()

	visitor := models.Visitor{
		VisitorToken: token,
		FirstSeen:    at,
		LastSeen:     at,
	}
	if err := s.config.DB.Create(&visitor).Error; err != nil {
		return "", 0, fmt.Errorf("failed to create visitor: %w", err)
	}

	views := 1 + s.rng.Intn(4)
	for v := 0; v < views; v++ {
		pv := models.PageView{
			VisitorID: visitor.VisitorID,
			Path:      simulationPaths[s.rng.Intn(len(simulationPaths))],
			CreatedAt: at.Add(time.Duration(v) * time.Minute),
		}
		if err := s.config.DB.Create(&pv).Error; err != nil {
			return "", 0, fmt.Errorf("failed to create page view: %w", err)
		}
	}

	return token, views, nil
}

func (s *TrafficSimulation) simulateCart(sessionID string, at time.Time) error {
	product := s.products[s.rng.Intn(len(s.products))]

	item := models.CartItem{
		SessionID: sessionID,
		ProductID: product.ProductID,
		Quantity:  1 + s.rng.Intn(s.config.MaxItemsPerCart),
		CreatedAt: at,
		UpdatedAt: at,
	}
	if err := s.config.DB.Create(&item).Error; err != nil {
		return fmt.Errorf("failed to create cart item: %w", err)
	}
	return nil
}

// simulateOrder converts the session cart into a placed order,
// decrementing stock and writing ledger movements the same way the
// live order path does.
func (s *TrafficSimulation) simulateOrder(sessionID string, at time.Time) error {
	return s.config.DB.Transaction(func(tx *gorm.DB) error {
		var cartItems []models.CartItem
		if err := tx.Where("session_id = ?", sessionID).Find(&cartItems).Error; err != nil {
			return err
		}
		if len(cartItems) == 0 {
			return nil
		}

		order := models.Order{
			OrderNo:       fmt.Sprintf("JKT-%s-%s", at.Format("20060102"), nuid.Next()),
			CustomerName:  fmt.Sprintf("Test Buyer %d", s.rng.Intn(1000)),
			CustomerEmail: fmt.Sprintf("buyer%d@example.com", s.rng.Intn(100000)),
			CustomerPhone: fmt.Sprintf("+91900000%04d", s.rng.Intn(10000)),
			Shipping: models.ShippingAddress{
				Street:     "Simulated address",
				City:       "Srinagar",
				PostalCode: "190001",
				Country:    "India",
			},
			Status:        models.OrderStatusPending,
			PaymentStatus: models.PaymentStatusPending,
			TotalAmount:   decimal.Zero,
			CreatedAt:     at,
			UpdatedAt:     at,
		}
		if err := tx.Create(&order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		total := decimal.Zero
		for _, ci := range cartItems {
			var product models.Product
			if err := tx.First(&product, ci.ProductID).Error; err != nil {
				return err
			}
			if product.StockQuantity < ci.Quantity {
				continue
			}

			if err := tx.Model(&models.Product{}).
				Where("product_id = ?", product.ProductID).
				Update("stock_quantity", gorm.Expr("stock_quantity - ?", ci.Quantity)).Error; err != nil {
				return err
			}

			lineTotal := product.Price.Mul(decimal.NewFromInt(int64(ci.Quantity)))
			item := models.OrderItem{
				OrderID:    order.OrderID,
				ProductID:  product.ProductID,
				Quantity:   ci.Quantity,
				UnitPrice:  product.Price,
				TotalPrice: lineTotal,
				CreatedAt:  at,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}

			movement := models.InventoryMovement{
				ProductID:    product.ProductID,
				MovementType: models.MovementOut,
				Quantity:     ci.Quantity,
				Reason:       "order " + order.OrderNo,
				ReferenceID:  &order.OrderID,
				CreatedAt:    at,
			}
			if err := tx.Create(&movement).Error; err != nil {
				return err
			}

			total = total.Add(lineTotal)
		}

		if err := tx.Model(&models.Order{}).
			Where("order_id = ?", order.OrderID).
			Update("total_amount", total).Error; err != nil {
			return err
		}

		return tx.Where("session_id = ?", sessionID).Delete(&models.CartItem{}).Error
	})
}

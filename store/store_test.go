package store

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/arbazessaqkhan/jktfeed/models"
)

// newTestStore opens a fresh in-memory database with the full schema.
// A single connection keeps every query on the same database.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(models.AllModels()...))

	t.Cleanup(func() { sqlDB.Close() })
	return New(db)
}

func seedProduct(t *testing.T, s *Store, sku, price string, stock int) *models.Product {
	t.Helper()

	p := &models.Product{
		SKU:           sku,
		Name:          "Trout Feed " + sku,
		Category:      models.CategorySmall,
		Price:         decimal.RequireFromString(price),
		StockQuantity: stock,
		IsActive:      true,
	}
	require.NoError(t, s.CreateProduct(p))
	return p
}

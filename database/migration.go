package database

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/arbazessaqkhan/jktfeed/models"
)

// AutoMigrate runs auto migration for all models
func AutoMigrate(db *gorm.DB) error {
	log.Info().Msg("starting GORM AutoMigrate")

	allModels := models.AllModels()

	// First pass: create all tables without foreign keys
	migrator := db.Migrator()
	for _, model := range allModels {
		stmt := &gorm.Statement{DB: db}
		tableName := ""
		if err := stmt.Parse(model); err == nil {
			tableName = stmt.Schema.Table
		}

		if !migrator.HasTable(model) {
			if err := migrator.CreateTable(model); err != nil {
				log.Warn().Err(err).Str("table", tableName).Msg("could not create table")
				continue
			}
			log.Info().Str("table", tableName).Msg("created table")
		} else {
			if err := migrator.AutoMigrate(model); err != nil {
				log.Warn().Err(err).Str("table", tableName).Msg("could not migrate table")
			}
		}
	}

	// Second pass: foreign key constraints
	if err := CreateForeignKeys(db); err != nil {
		log.Warn().Err(err).Msg("some foreign keys could not be created")
	}

	// Indexes GORM's tags don't cover
	if err := CreateIndexes(db); err != nil {
		log.Warn().Err(err).Msg("some indexes could not be created")
	}

	log.Info().Msg("GORM AutoMigrate completed")
	return nil
}

// CreateForeignKeys creates all foreign key constraints
func CreateForeignKeys(db *gorm.DB) error {
	foreignKeys := []struct {
		table     string
		name      string
		column    string
		refTable  string
		refColumn string
	}{
		{"messages", "fk_messages_contact", "contact_id", "contacts", "contact_id"},
		{"cart_items", "fk_cart_items_product", "product_id", "products", "product_id"},
		{"order_items", "fk_order_items_order", "order_id", "orders", "order_id"},
		{"order_items", "fk_order_items_product", "product_id", "products", "product_id"},
		{"inventory_movements", "fk_inventory_movements_product", "product_id", "products", "product_id"},
		{"page_views", "fk_page_views_visitor", "visitor_id", "visitors", "visitor_id"},
	}

	for _, fk := range foreignKeys {
		var count int64
		db.Raw(`
			SELECT COUNT(*) FROM information_schema.table_constraints
			WHERE constraint_type = 'FOREIGN KEY'
			AND table_name = ?
			AND constraint_name = ?
		`, fk.table, fk.name).Scan(&count)

		if count > 0 {
			continue
		}

		query := fmt.Sprintf(
			"ALTER TABLE %s ADD CONSTRAINT %s FOREIGN KEY (%s) REFERENCES %s(%s)",
			fk.table, fk.name, fk.column, fk.refTable, fk.refColumn,
		)

		if err := db.Exec(query).Error; err != nil {
			if !strings.Contains(err.Error(), "already exists") {
				log.Warn().Err(err).Str("constraint", fk.name).Msg("failed to create foreign key")
			}
		} else {
			log.Info().Str("constraint", fk.name).Msg("created foreign key")
		}
	}

	return nil
}

// CreateIndexes creates performance indexes
func CreateIndexes(db *gorm.DB) error {
	indexes := []struct {
		name  string
		query string
	}{
		{"idx_contacts_created", "CREATE INDEX IF NOT EXISTS idx_contacts_created ON contacts(created_at)"},
		{"idx_orders_created", "CREATE INDEX IF NOT EXISTS idx_orders_created ON orders(created_at)"},
		{"idx_cart_items_updated", "CREATE INDEX IF NOT EXISTS idx_cart_items_updated ON cart_items(updated_at)"},
		{"idx_inventory_movements_created", "CREATE INDEX IF NOT EXISTS idx_inventory_movements_created ON inventory_movements(created_at)"},
		{"idx_page_views_created", "CREATE INDEX IF NOT EXISTS idx_page_views_created ON page_views(created_at)"},
		{"idx_page_views_path", "CREATE INDEX IF NOT EXISTS idx_page_views_path ON page_views(path)"},
		{"idx_showcase_images_order", "CREATE INDEX IF NOT EXISTS idx_showcase_images_order ON showcase_images(display_order)"},
	}

	for _, idx := range indexes {
		if err := db.Exec(idx.query).Error; err != nil {
			log.Warn().Err(err).Str("index", idx.name).Msg("failed to create index")
		}
	}

	return nil
}

package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/arbazessaqkhan/jktfeed/config"
	"github.com/arbazessaqkhan/jktfeed/database"
	"github.com/arbazessaqkhan/jktfeed/models"
)

func main() {
	// Parse command line flags
	var (
		startDate  = flag.String("start", "2026-08-01", "Simulation start date (YYYY-MM-DD)")
		endDate    = flag.String("end", "2026-08-31", "Simulation end date (YYYY-MM-DD)")
		clear      = flag.Bool("clear", false, "Clear existing simulation data before running")
		seed       = flag.Bool("seed", false, "Run initial seed if database is empty")
		noQueryLog = flag.Bool("no-query-log", false, "Disable query logging during simulation")
	)
	flag.Parse()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database
	if err := database.InitializeWithOptions(&cfg.Database, *noQueryLog); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	db := database.GetDB()
	log.Println("Connected to database")

	// Check if initial seed is needed
	if *seed {
		var productCount int64
		db.Model(&models.Product{}).Count(&productCount)

		if productCount == 0 {
			log.Println("Database is empty, running initial seed...")
			if err := database.SeedData(db, &cfg.Auth); err != nil {
				log.Fatalf("Failed to seed initial data: %v", err)
			}
			log.Println("Initial seed completed")
		} else {
			log.Printf("Database already has %d products, skipping seed", productCount)
		}
	}

	// Clear existing simulation data if requested
	if *clear {
		if err := clearSimulationData(db); err != nil {
			log.Fatalf("Failed to clear simulation data: %v", err)
		}
		log.Println("Cleared existing simulation data")
	}

	// Parse dates
	start, err := time.Parse("2006-01-02", *startDate)
	if err != nil {
		log.Fatalf("Invalid start date: %v", err)
	}

	end, err := time.Parse("2006-01-02", *endDate)
	if err != nil {
		log.Fatalf("Invalid end date: %v", err)
	}

	if end.Before(start) {
		log.Fatalf("End date must be after start date")
	}

	// Run simulation
	log.Printf("Starting simulation from %s to %s", start.Format("2006-01-02"), end.Format("2006-01-02"))

	if err := database.RunSimulation(db, start, end); err != nil {
		log.Fatalf("Simulation failed: %v", err)
	}

	log.Println("Simulation completed successfully")
	printStatistics(db, start, end)
}

// clearSimulationData removes generated traffic while preserving the
// catalog, settings and showcase content. Simulated rows are identified
// by the sim- token prefix and by order linkage.
func clearSimulationData(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`DELETE FROM page_views WHERE visitor_id IN
			(SELECT visitor_id FROM visitors WHERE visitor_token LIKE 'sim-%')`).Error; err != nil {
			return err
		}
		if err := tx.Where("visitor_token LIKE ?", "sim-%").Delete(&models.Visitor{}).Error; err != nil {
			return err
		}
		if err := tx.Where("session_id LIKE ?", "sim-%").Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		if err := tx.Exec(`DELETE FROM inventory_movements WHERE reference_id IN
			(SELECT order_id FROM orders WHERE customer_email LIKE 'buyer%@example.com')`).Error; err != nil {
			return err
		}
		if err := tx.Exec(`DELETE FROM order_items WHERE order_id IN
			(SELECT order_id FROM orders WHERE customer_email LIKE 'buyer%@example.com')`).Error; err != nil {
			return err
		}
		return tx.Where("customer_email LIKE ?", "buyer%@example.com").Delete(&models.Order{}).Error
	})
}

// printStatistics summarizes what the simulation produced
func printStatistics(db *gorm.DB, start, end time.Time) {
	endOfRange := end.AddDate(0, 0, 1)

	var visitorCount, viewCount int64
	db.Model(&models.Visitor{}).
		Where("first_seen >= ? AND first_seen < ?", start, endOfRange).
		Count(&visitorCount)
	db.Model(&models.PageView{}).
		Where("created_at >= ? AND created_at < ?", start, endOfRange).
		Count(&viewCount)

	var orderStats struct {
		Count int64
		Total float64
	}
	db.Model(&models.Order{}).
		Select("COUNT(*) as count, COALESCE(SUM(total_amount), 0) as total").
		Where("created_at >= ? AND created_at < ?", start, endOfRange).
		Scan(&orderStats)

	fmt.Println("\n=== Simulation statistics ===")
	fmt.Printf("Visitors:    %d\n", visitorCount)
	fmt.Printf("Page views:  %d\n", viewCount)
	fmt.Printf("Orders:      %d\n", orderStats.Count)
	fmt.Printf("Order value: %.2f\n", orderStats.Total)

	days := int(end.Sub(start).Hours()/24) + 1
	if days > 0 {
		fmt.Printf("Orders/day:  %.1f\n", float64(orderStats.Count)/float64(days))
	}
}

package main

import (
	"fmt"
	"log"

	"github.com/arbazessaqkhan/jktfeed/config"
	"github.com/arbazessaqkhan/jktfeed/database"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	fmt.Println("Seeding database")
	fmt.Printf("Database: %s@%s:%s/%s\n",
		cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Initialize database connection
	if err := database.Initialize(&cfg.Database); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	if err := database.CheckConnection(database.DB); err != nil {
		log.Fatalf("Database connection check failed: %v", err)
	}

	// Seed admin user, catalog, showcase and settings
	if err := database.SeedData(database.DB, &cfg.Auth); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	fmt.Println("Seed completed successfully")
}

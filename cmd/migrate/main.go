package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/arbazessaqkhan/jktfeed/config"
	"github.com/arbazessaqkhan/jktfeed/database"
	"github.com/arbazessaqkhan/jktfeed/models"
)

func main() {
	// Command line flags
	var (
		drop = flag.Bool("drop", false, "Drop all tables before migration")
		help = flag.Bool("help", false, "Show help")
	)

	flag.Parse()

	if *help {
		showHelp()
		return
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	fmt.Println("Starting database migration")
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

	// Drop tables if requested
	if *drop {
		fmt.Println("Dropping all tables...")
		if err := dropAllTables(); err != nil {
			log.Fatalf("Failed to drop tables: %v", err)
		}
		fmt.Println("All tables dropped")
	}

	// Run AutoMigrate
	fmt.Println("Running GORM AutoMigrate...")
	if err := database.AutoMigrate(database.DB); err != nil {
		log.Fatalf("Failed to run migration: %v", err)
	}

	fmt.Println("Migration completed successfully")
}

// dropAllTables drops every application table, children first so the
// foreign keys do not block the drops.
func dropAllTables() error {
	all := models.AllModels()
	for i := len(all) - 1; i >= 0; i-- {
		if err := database.DB.Migrator().DropTable(all[i]); err != nil {
			return err
		}
	}
	return nil
}

func showHelp() {
	fmt.Println(`
Database migration tool for the jktfeed backend

Usage:
  go run cmd/migrate/main.go [options]

Options:
  -drop     Drop all tables before migration (WARNING: data loss)
  -help     Show this help message

Examples:
  # Create or update tables
  go run cmd/migrate/main.go

  # Drop all tables and recreate
  go run cmd/migrate/main.go -drop

Environment:
  Requires .env file or environment variables for database configuration:
  - DB_HOST
  - DB_PORT
  - DB_USER
  - DB_PASSWORD
  - DB_NAME`)
}

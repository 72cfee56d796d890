package database

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/arbazessaqkhan/jktfeed/config"
	"github.com/arbazessaqkhan/jktfeed/models"
)

// SeedData populates the database with the admin account, the feed catalog
// and default settings. Safe to run repeatedly: existing rows are kept.
func SeedData(db *gorm.DB, authCfg *config.AuthConfig) error {
	if err := seedAdminUser(db, authCfg); err != nil {
		return err
	}
	if err := seedProducts(db); err != nil {
		return err
	}
	if err := seedShowcaseImages(db); err != nil {
		return err
	}
	if err := seedSettings(db); err != nil {
		return err
	}
	log.Info().Msg("database seeded")
	return nil
}

func seedAdminUser(db *gorm.DB, authCfg *config.AuthConfig) error {
	if authCfg.AdminPassword == "" {
		return fmt.Errorf("ADMIN_PASSWORD must be set to seed the admin user")
	}

	var count int64
	if err := db.Model(&models.User{}).Where("username = ?", authCfg.AdminUsername).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(authCfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		Username:     authCfg.AdminUsername,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Info().Str("username", admin.Username).Msg("seeded admin user")
	return nil
}

func seedProducts(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	products := []models.Product{
		{
			SKU:           "JKT-E-05",
			Name:          "Starter Crumble 0.5mm",
			Description:   "High-protein crumble for first-feeding trout fry.",
			Category:      models.CategoryEarly,
			Price:         decimal.NewFromFloat(24.90),
			StockQuantity: 200,
			Weight:        "5 kg",
			Specs: models.Specifications{
				Protein:    "54%",
				Fat:        "18%",
				Fiber:      "0.5%",
				Moisture:   "9%",
				Energy:     "21.5 MJ/kg",
				PelletSize: "0.5 mm",
			},
		},
		{
			SKU:           "JKT-S-20",
			Name:          "Fingerling Feed 2mm",
			Description:   "Balanced growth feed for fingerlings from 5 to 50 grams.",
			Category:      models.CategorySmall,
			Price:         decimal.NewFromFloat(39.50),
			StockQuantity: 150,
			Weight:        "15 kg",
			Specs: models.Specifications{
				Protein:    "48%",
				Fat:        "22%",
				Fiber:      "1.5%",
				Moisture:   "9%",
				Energy:     "22.0 MJ/kg",
				PelletSize: "2 mm",
			},
		},
		{
			SKU:           "JKT-K-45",
			Name:          "Grower Pellet 4.5mm",
			Description:   "Production feed for portion-size rainbow trout.",
			Category:      models.CategoryStock,
			Price:         decimal.NewFromFloat(54.00),
			StockQuantity: 300,
			Weight:        "25 kg",
			Specs: models.Specifications{
				Protein:    "42%",
				Fat:        "26%",
				Fiber:      "2.5%",
				Moisture:   "9%",
				Energy:     "23.5 MJ/kg",
				PelletSize: "4.5 mm",
			},
		},
	}

	for i := range products {
		if err := db.Create(&products[i]).Error; err != nil {
			return err
		}
	}
	log.Info().Int("count", len(products)).Msg("seeded products")
	return nil
}

func seedShowcaseImages(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.ShowcaseImage{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	images := []models.ShowcaseImage{
		{Title: "Production facility", ImageURL: "/uploads/showcase/facility.jpg", DisplayOrder: 0, IsActive: true},
		{Title: "Raceway trials", ImageURL: "/uploads/showcase/raceways.jpg", DisplayOrder: 1, IsActive: true},
		{Title: "Pellet extrusion line", ImageURL: "/uploads/showcase/extruder.jpg", DisplayOrder: 2, IsActive: true},
	}
	for i := range images {
		if err := db.Create(&images[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedSettings(db *gorm.DB) error {
	defaults := map[string]string{
		models.SettingCartTTLHours:  "168",
		models.SettingStoreEmail:    "sales@jktfeed.example",
		models.SettingStorePhone:    "+91 194 000 0000",
		models.SettingLowStockLevel: "20",
	}

	for key, value := range defaults {
		var count int64
		if err := db.Model(&models.Setting{}).Where("key = ?", key).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := db.Create(&models.Setting{Key: key, Value: value}).Error; err != nil {
			return err
		}
	}
	return nil
}

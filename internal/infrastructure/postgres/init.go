package postgres

import (
	"log"

	"github.com/craveo/marketplace-service/internal/config"
	"github.com/craveo/marketplace-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.MarketplaceConfig) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.MarketDB.Dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	if err := db.AutoMigrate(
		&models.UserModel{},
		&models.ProductModel{},
		&models.RequestPostModel{},
		&models.OfferModel{},
		&models.OrderModel{},
	); err != nil {
		log.Fatalf("failed to auto-migrate schema: %v\n", err.Error())
	}

	return db
}

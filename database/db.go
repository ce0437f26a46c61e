package database

import (
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"

	"github.com/thegera4/ecommerce-api/config"
	"github.com/thegera4/ecommerce-api/models"
)

// Connect opens the database and keeps the schema in sync with the models.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open("postgres", cfg.PostgresURL)
	if err != nil {
		return nil, err
	}

	db.AutoMigrate(&models.User{}, &models.Business{}, &models.Product{}, &models.Category{})

	return db, nil
}

// Ping reports whether the database connection is alive.
func Ping(db *gorm.DB) error {
	return db.DB().Ping()
}

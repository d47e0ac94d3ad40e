package config

import (
	"fmt"

	"github.com/Nathan-Chantiny/Fridge-Inventory/internal/utils"
	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ConnectDB opens the relational store. SQLite is the default for the
// single-user local install; postgres is available for shared deployments.
func ConnectDB() (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch utils.GetConfig("DB_TYPE") {
	case "postgres", "postgresql":
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
			utils.GetConfig("DB_HOST"),
			utils.GetConfig("DB_USER"),
			utils.GetConfig("DB_PASSWORD"),
			utils.GetConfig("DB_NAME"),
			utils.GetConfig("DB_PORT"),
		)
		dialector = postgres.Open(dsn)
	default:
		path := utils.GetConfig("SQLITE_PATH")
		if path == "" {
			path = "products.db"
		}
		dialector = sqlite.Open(path)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	return db, nil
}

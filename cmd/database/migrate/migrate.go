package migration

import (
	"fmt"
	"log"

	"github.com/Nathan-Chantiny/Fridge-Inventory/entities"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Product{}); err != nil {
		log.Fatalf("Error migrating product database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}

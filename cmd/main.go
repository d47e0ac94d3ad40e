package main

import (
	"log"

	"github.com/Nathan-Chantiny/Fridge-Inventory/cmd/config"
	migration "github.com/Nathan-Chantiny/Fridge-Inventory/cmd/database/migrate"
	"github.com/Nathan-Chantiny/Fridge-Inventory/internal/utils"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("failed to configure app: %v", err)
	}

	port := utils.GetConfig("PORT")
	if port == "" {
		port = "8080"
	}

	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

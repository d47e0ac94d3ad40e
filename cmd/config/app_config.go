package config

import (
	"os"
	"time"

	"github.com/Nathan-Chantiny/Fridge-Inventory/internal/api/handlers"
	"github.com/Nathan-Chantiny/Fridge-Inventory/internal/api/routes"
	"github.com/Nathan-Chantiny/Fridge-Inventory/internal/middleware"
	"github.com/Nathan-Chantiny/Fridge-Inventory/internal/utils"
	"github.com/Nathan-Chantiny/Fridge-Inventory/pkg/agreement"
	"github.com/Nathan-Chantiny/Fridge-Inventory/pkg/jwt"
	"github.com/Nathan-Chantiny/Fridge-Inventory/pkg/product"
	"github.com/Nathan-Chantiny/Fridge-Inventory/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// Repository
	userRepository := user.NewUserRepository(db)
	productRepository := newProductRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	agreementService := agreement.NewAgreementService(agreementPath())
	userService := user.NewUserService(userRepository, jwtService)
	productService := product.NewProductService(productRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	productHandler := handlers.NewProductHandler(productService, validator)
	agreementHandler := handlers.NewAgreementHandler(agreementService)

	// routes
	routesConfig := routes.Config{
		App:              app,
		UserHandler:      userHandler,
		ProductHandler:   productHandler,
		AgreementHandler: agreementHandler,
		Middleware:       middlewares,
		JWTService:       jwtService,
		AgreementService: agreementService,
	}
	routesConfig.Setup()
	return app, nil
}

// newProductRepository picks the inventory backend: the relational table
// by default, or the legacy single-file JSON document when configured.
func newProductRepository(db *gorm.DB) product.ProductRepository {
	if utils.GetConfig("STORE_TYPE") == "document" {
		path := utils.GetConfig("DOCUMENT_PATH")
		if path == "" {
			path = "products.json"
		}
		return product.NewDocumentStore(path)
	}
	return product.NewProductRepository(db)
}

func agreementPath() string {
	path := utils.GetConfig("AGREEMENT_PATH")
	if path == "" {
		path = "agreement.txt"
	}
	return path
}

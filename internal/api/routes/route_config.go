package routes

import (
	"github.com/Nathan-Chantiny/Fridge-Inventory/internal/api/handlers"
	"github.com/Nathan-Chantiny/Fridge-Inventory/internal/middleware"
	"github.com/Nathan-Chantiny/Fridge-Inventory/pkg/agreement"
	"github.com/Nathan-Chantiny/Fridge-Inventory/pkg/jwt"
	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App              *fiber.App
	UserHandler      handlers.UserHandler
	ProductHandler   handlers.ProductHandler
	AgreementHandler handlers.AgreementHandler
	Middleware       middleware.Middleware
	JWTService       jwt.JWTService
	AgreementService agreement.AgreementService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Agreement()
	c.User()
	c.Products()
	c.GuestRoute()
}

func (c *Config) Agreement() {
	agreementGroup := c.App.Group("/api/v1/agreement")
	{
		agreementGroup.Get("", c.AgreementHandler.GetStatus)
		agreementGroup.Post("", c.AgreementHandler.Respond)
	}
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
	}
}

func (c *Config) Products() {
	products := c.App.Group(
		"/api/v1/products",
		c.Middleware.AuthMiddleware(c.JWTService),
		c.Middleware.AgreementMiddleware(c.AgreementService),
	)

	products.Get("/dashboard", c.ProductHandler.GetDashboardStats)
	products.Get("/alerts", c.ProductHandler.GetStockAlerts)
	products.Get("/search", c.ProductHandler.SearchProducts)

	products.Post("", c.ProductHandler.AddProduct)
	products.Get("", c.ProductHandler.ListProducts)
	products.Put("", c.ProductHandler.UpdateProduct)
	products.Delete("", c.ProductHandler.DeleteProduct)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong, its works"})
	})
}

package middleware

import (
	"strings"

	"github.com/Nathan-Chantiny/Fridge-Inventory/domain"
	"github.com/Nathan-Chantiny/Fridge-Inventory/internal/api/presenters"
	"github.com/Nathan-Chantiny/Fridge-Inventory/pkg/agreement"
	"github.com/Nathan-Chantiny/Fridge-Inventory/pkg/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		AuthMiddleware(jwtService jwt.JWTService) fiber.Handler
		AgreementMiddleware(agreementService agreement.AgreementService) fiber.Handler
	}

	middleware struct{}
)

func NewMiddleware() Middleware {
	return &middleware{}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE",
	})
}

func (m *middleware) AuthMiddleware(jwtService jwt.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetToken, domain.ErrTokenNotFound)
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == authHeader {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetToken, domain.ErrTokenInvalid)
		}

		userID, err := jwtService.GetUserIDByToken(token)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedTokenInvalid, err)
		}

		c.Locals("user_id", userID)
		return c.Next()
	}
}

// AgreementMiddleware blocks inventory operations until the one-time
// legal acknowledgement has been accepted.
func (m *middleware) AgreementMiddleware(agreementService agreement.AgreementService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !agreementService.Accepted() {
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageFailedAgreement, domain.ErrAgreementRequired)
		}
		return c.Next()
	}
}

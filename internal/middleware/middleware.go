package middleware

import (
	"Recipe-Book-Backend/domain"
	"Recipe-Book-Backend/internal/api/presenters"
	"Recipe-Book-Backend/pkg/jwt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		AuthMiddleware(jwtService jwt.JWTService) fiber.Handler
		OptionalAuthMiddleware(jwtService jwt.JWTService) fiber.Handler
	}

	middleware struct{}
)

func NewMiddleware() Middleware {
	return &middleware{}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	})
}

func (m *middleware) AuthMiddleware(jwtService jwt.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, role, err := resolveToken(c, jwtService)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetToken, err)
		}

		c.Locals("user_id", userID)
		c.Locals("role", role)
		return c.Next()
	}
}

// OptionalAuthMiddleware resolves the identity when a token is sent but lets
// anonymous requests through; public recipes are readable without an account.
func (m *middleware) OptionalAuthMiddleware(jwtService jwt.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, role, err := resolveToken(c, jwtService)
		if err == nil {
			c.Locals("user_id", userID)
			c.Locals("role", role)
		}
		return c.Next()
	}
}

func resolveToken(c *fiber.Ctx, jwtService jwt.JWTService) (string, string, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return "", "", domain.ErrTokenNotFound
	}

	token := strings.TrimPrefix(authHeader, "Bearer ")
	return jwtService.GetUserIDByToken(token)
}

// IdentityFromLocals rebuilds the request identity set by the auth
// middleware; the zero value stands for an anonymous visitor.
func IdentityFromLocals(c *fiber.Ctx) domain.Identity {
	userID, ok := c.Locals("user_id").(string)
	if !ok || userID == "" {
		return domain.Identity{}
	}
	role, _ := c.Locals("role").(string)
	return domain.NewIdentity(userID, role)
}

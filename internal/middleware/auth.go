package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/example/bizcard/internal/authz"
	"github.com/example/bizcard/internal/config"
	"github.com/example/bizcard/internal/utils"
)

const claimsContextKey = "currentClaims"

// AuthMiddleware validates bearer JWTs and loads the decoded claims into
// context. It never touches the database: claims are trusted as issued.
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing authorization header")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid authorization header")
		}

		claims, err := utils.ParseToken(cfg.JWTSecret, parts[1])
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}

		c.Locals(claimsContextKey, claims)
		return c.Next()
	}
}

// CurrentClaims extracts the authenticated caller's claims from context.
func CurrentClaims(c *fiber.Ctx) (utils.Claims, bool) {
	value := c.Locals(claimsContextKey)
	if value == nil {
		return utils.Claims{}, false
	}

	if claims, ok := value.(utils.Claims); ok {
		return claims, true
	}

	return utils.Claims{}, false
}

// RequireBusiness rejects callers without the business capability.
func RequireBusiness() fiber.Handler {
	return requireCapability(authz.IsBusiness, "business account required")
}

// RequireAdmin rejects callers without the admin capability.
func RequireAdmin() fiber.Handler {
	return requireCapability(authz.IsAdmin, "admin privileges required")
}

// RequireBusinessOrAdmin rejects callers holding neither capability.
func RequireBusinessOrAdmin() fiber.Handler {
	return requireCapability(authz.IsBusinessOrAdmin, "business or admin account required")
}

func requireCapability(allowed func(utils.Claims) bool, message string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := CurrentClaims(c)
		if !ok || !authz.IsAuthenticated(claims) {
			return fiber.NewError(fiber.StatusUnauthorized, "missing authorization header")
		}

		if !allowed(claims) {
			return fiber.NewError(fiber.StatusForbidden, message)
		}

		return c.Next()
	}
}

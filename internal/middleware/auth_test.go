package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/bizcard/internal/config"
	"github.com/example/bizcard/internal/utils"
)

const testSecret = "test-secret"

func testApp(extra ...fiber.Handler) *fiber.App {
	cfg := &config.Config{JWTSecret: testSecret, TokenExpires: time.Hour}

	app := fiber.New()
	handlers := []fiber.Handler{AuthMiddleware(cfg)}
	handlers = append(handlers, extra...)
	handlers = append(handlers, func(c *fiber.Ctx) error {
		claims, ok := CurrentClaims(c)
		if !ok {
			return fiber.NewError(fiber.StatusInternalServerError, "claims missing from context")
		}
		return c.JSON(fiber.Map{"email": claims.Email})
	})
	app.Get("/protected", handlers...)
	return app
}

func request(t *testing.T, app *fiber.App, authHeader string) int {
	t.Helper()

	req := httptest.NewRequest("GET", "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	defer resp.Body.Close()

	return resp.StatusCode
}

func token(t *testing.T, claims utils.Claims, ttl time.Duration) string {
	t.Helper()

	tok, err := utils.GenerateToken(testSecret, claims, ttl)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	return tok
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	if status := request(t, testApp(), ""); status != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", status)
	}
}

func TestAuthMiddlewareMalformedHeader(t *testing.T) {
	if status := request(t, testApp(), "Token abc"); status != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", status)
	}
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	if status := request(t, testApp(), "Bearer not-a-token"); status != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", status)
	}
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	tok := token(t, utils.Claims{UserID: uuid.New()}, -time.Minute)
	if status := request(t, testApp(), "Bearer "+tok); status != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", status)
	}
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	tok := token(t, utils.Claims{UserID: uuid.New(), Email: "a@b.c"}, time.Hour)
	if status := request(t, testApp(), "Bearer "+tok); status != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
}

func TestCapabilityGates(t *testing.T) {
	cases := []struct {
		name       string
		gate       fiber.Handler
		isBusiness bool
		isAdmin    bool
		want       int
	}{
		{"business gate allows business", RequireBusiness(), true, false, fiber.StatusOK},
		{"business gate rejects regular", RequireBusiness(), false, false, fiber.StatusForbidden},
		{"business gate rejects plain admin", RequireBusiness(), false, true, fiber.StatusForbidden},
		{"admin gate allows admin", RequireAdmin(), false, true, fiber.StatusOK},
		{"admin gate rejects business", RequireAdmin(), true, false, fiber.StatusForbidden},
		{"either gate allows business", RequireBusinessOrAdmin(), true, false, fiber.StatusOK},
		{"either gate allows admin", RequireBusinessOrAdmin(), false, true, fiber.StatusOK},
		{"either gate rejects regular", RequireBusinessOrAdmin(), false, false, fiber.StatusForbidden},
	}

	for _, tc := range cases {
		app := testApp(tc.gate)
		tok := token(t, utils.Claims{
			UserID:     uuid.New(),
			IsBusiness: tc.isBusiness,
			IsAdmin:    tc.isAdmin,
		}, time.Hour)

		if status := request(t, app, "Bearer "+tok); status != tc.want {
			t.Fatalf("%s: status = %d, want %d", tc.name, status, tc.want)
		}
	}
}

package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/bizcard/internal/config"
	"github.com/example/bizcard/internal/handlers"
	"github.com/example/bizcard/internal/middleware"
)

// Register wires up all HTTP routes.
func Register(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	userHandler := handlers.NewUserHandler(db, cfg)
	cardHandler := handlers.NewCardHandler(db)
	adminHandler := handlers.NewAdminHandler(db)

	auth := middleware.AuthMiddleware(cfg)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"success": true, "msg": "bizcard api is up"})
	})

	// Users
	users := app.Group("/users")
	users.Post("/", userHandler.Register)
	users.Post("/login", userHandler.Login)
	users.Get("/me", auth, userHandler.Me)

	// Cards
	cards := app.Group("/cards")
	cards.Get("/", cardHandler.List)
	cards.Get("/my/cards", auth, middleware.RequireBusiness(), cardHandler.ListMine)
	cards.Get("/:id", cardHandler.Get)
	cards.Post("/", auth, middleware.RequireBusiness(), cardHandler.Create)
	cards.Put("/:id", auth, middleware.RequireBusinessOrAdmin(), cardHandler.Update)
	cards.Delete("/:id", auth, middleware.RequireBusinessOrAdmin(), cardHandler.Delete)
	cards.Patch("/:id/like", auth, cardHandler.ToggleLike)

	// Admin
	admin := app.Group("/admin", auth, middleware.RequireAdmin())
	admin.Get("/users", adminHandler.ListUsers)
	admin.Delete("/users/:id", adminHandler.DeleteUser)
	admin.Patch("/users/:id/toggle-admin", adminHandler.ToggleAdmin)
	admin.Get("/stats", adminHandler.Stats)
}

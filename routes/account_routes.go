package routes

import (
	"github.com/coachledger/marketplace/handlers"
	"github.com/gofiber/fiber/v2"
)

func AccountRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	auth := api.Group("/auth")
	auth.Post("/register", handlers.RegisterAccount)
	auth.Post("/login", handlers.LoginAccount)
}

package routes

import (
	"github.com/coachledger/marketplace/handlers"
	"github.com/gofiber/fiber/v2"
)

func PublicRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/height", handlers.GetChainHeight)
	api.Get("/fees", handlers.GetFees)
}

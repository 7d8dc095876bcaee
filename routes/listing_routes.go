package routes

import (
	"github.com/coachledger/marketplace/handlers"
	"github.com/coachledger/marketplace/middleware"
	"github.com/gofiber/fiber/v2"
)

func ListingRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	listings := api.Group("/listings")
	listings.Get("/:coach/next-id", handlers.GetNextListingID)
	listings.Get("/:coach/:listingId", handlers.GetListing)

	protected := api.Group("/listings", middleware.Protected())
	protected.Post("", handlers.CreateListing)
	protected.Put("/:listingId", handlers.UpdateListing)
	protected.Delete("/:listingId", handlers.DeleteListing)
}

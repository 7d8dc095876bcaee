package routes

import (
	"github.com/coachledger/marketplace/handlers"
	"github.com/coachledger/marketplace/middleware"
	"github.com/gofiber/fiber/v2"
)

func BookingRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	bookings := api.Group("/bookings")
	bookings.Get("/:coach/:listingId/next-session", handlers.GetNextSessionID)
	bookings.Get("/:coach/:listingId/:sessionId", handlers.GetBooking)

	protected := api.Group("/bookings", middleware.Protected())
	protected.Post("", handlers.BookSession)
	protected.Post("/:coach/:listingId/:sessionId/confirm", handlers.ConfirmSession)
	protected.Post("/:coach/:listingId/:sessionId/cancel", handlers.CancelSession)
}

package routes

import (
	"github.com/coachledger/marketplace/handlers"
	"github.com/coachledger/marketplace/middleware"
	"github.com/gofiber/fiber/v2"
)

// Admin routes require a valid token; the stores enforce that the caller is
// the configured owner principal.
func AdminRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	admin := api.Group("/admin", middleware.Protected())

	admin.Put("/credentials/fee", handlers.SetVerificationFee)
	admin.Post("/credentials/pause", handlers.PauseCredentials)
	admin.Post("/credentials/unpause", handlers.UnpauseCredentials)
	admin.Put("/credentials/:coach/:credentialId/status", handlers.UpdateCredentialStatus)

	admin.Post("/attesters", handlers.AddTrustedAttester)
	admin.Delete("/attesters/:attester", handlers.RemoveTrustedAttester)

	admin.Put("/listings/fee", handlers.SetListingFee)
	admin.Post("/listings/pause", handlers.PauseListings)
	admin.Post("/listings/unpause", handlers.UnpauseListings)

	admin.Put("/bookings/fee", handlers.SetBookingFee)
	admin.Put("/bookings/max", handlers.SetMaxBookings)
	admin.Post("/bookings/pause", handlers.PauseBookings)
	admin.Post("/bookings/unpause", handlers.UnpauseBookings)

	admin.Get("/escrow", handlers.GetEscrowLedger)
}

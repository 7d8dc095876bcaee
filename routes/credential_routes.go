package routes

import (
	"github.com/coachledger/marketplace/handlers"
	"github.com/coachledger/marketplace/middleware"
	"github.com/gofiber/fiber/v2"
)

func CredentialRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	credentials := api.Group("/credentials")
	credentials.Get("/:coach/verified", handlers.GetCoachVerification)
	credentials.Get("/:coach/:credentialId", handlers.GetCredentialDetails)

	protected := api.Group("/credentials", middleware.Protected())
	protected.Post("", handlers.SubmitCredential)
	protected.Post("/:coach/:credentialId/attest", handlers.AttestCredential)
	protected.Post("/:coach/:credentialId/revoke", handlers.RevokeAttestation)
}

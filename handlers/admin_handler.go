package handlers

import (
	config "github.com/coachledger/marketplace/configs"
	"github.com/coachledger/marketplace/models"
	"github.com/coachledger/marketplace/state"
	"github.com/gofiber/fiber/v2"
)

// The admin surface is owner-gated by the stores themselves: every operation
// passes the caller principal through and the store compares it against its
// configured owner.

type SetFeeRequest struct {
	Fee uint64 `json:"fee"`
}

func SetVerificationFee(c *fiber.Ctx) error {
	var req SetFeeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := state.Credentials.SetVerificationFee(callerPrincipal(c), req.Fee); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Verification fee updated"})
}

func SetListingFee(c *fiber.Ctx) error {
	var req SetFeeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := state.Listings.SetListingFee(callerPrincipal(c), req.Fee); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Listing fee updated"})
}

func SetBookingFee(c *fiber.Ctx) error {
	var req SetFeeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := state.Bookings.SetBookingFee(callerPrincipal(c), req.Fee); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Booking fee updated"})
}

type AttesterRequest struct {
	Attester string `json:"attester" validate:"required"`
}

func AddTrustedAttester(c *fiber.Ctx) error {
	var req AttesterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := state.Credentials.AddTrustedAttester(callerPrincipal(c), models.Principal(req.Attester)); err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Attester added"})
}

func RemoveTrustedAttester(c *fiber.Ctx) error {
	attester := models.Principal(c.Params("attester"))
	if err := state.Credentials.RemoveTrustedAttester(callerPrincipal(c), attester); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Attester removed"})
}

type UpdateCredentialStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=unverified verified"`
}

func UpdateCredentialStatus(c *fiber.Ctx) error {
	coach := models.Principal(c.Params("coach"))
	id, err := c.ParamsInt("credentialId")
	if err != nil || id < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid credential id"})
	}

	var req UpdateCredentialStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	status := models.CredentialStatus(req.Status)
	if err := state.Credentials.UpdateCredentialStatus(callerPrincipal(c), coach, uint(id), status); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Credential status updated"})
}

type SetMaxBookingsRequest struct {
	Max uint `json:"max" validate:"required"`
}

func SetMaxBookings(c *fiber.Ctx) error {
	var req SetMaxBookingsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := state.Bookings.SetMaxBookings(callerPrincipal(c), req.Max); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Booking cap updated"})
}

func PauseCredentials(c *fiber.Ctx) error {
	if err := state.Credentials.Pause(callerPrincipal(c)); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Credential verifier paused"})
}

func UnpauseCredentials(c *fiber.Ctx) error {
	if err := state.Credentials.Unpause(callerPrincipal(c)); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Credential verifier unpaused"})
}

func PauseListings(c *fiber.Ctx) error {
	if err := state.Listings.Pause(callerPrincipal(c)); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Listing service paused"})
}

func UnpauseListings(c *fiber.Ctx) error {
	if err := state.Listings.Unpause(callerPrincipal(c)); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Listing service unpaused"})
}

func PauseBookings(c *fiber.Ctx) error {
	if err := state.Bookings.Pause(callerPrincipal(c)); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Booking manager paused"})
}

func UnpauseBookings(c *fiber.Ctx) error {
	if err := state.Bookings.Unpause(callerPrincipal(c)); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Booking manager unpaused"})
}

// GetEscrowLedger lists every recorded fee-transfer intent, oldest first. The
// ledger has no gate of its own, so the owner check lives here.
func GetEscrowLedger(c *fiber.Ctx) error {
	owner := models.Principal(config.ConfigOr("OWNER_PRINCIPAL", "owner"))
	if callerPrincipal(c) != owner {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "caller is not authorized"})
	}
	return c.JSON(state.Escrow.Entries())
}

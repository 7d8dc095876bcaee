package handlers

import (
	"github.com/coachledger/marketplace/models"
	"github.com/coachledger/marketplace/state"
	"github.com/gofiber/fiber/v2"
)

type BookSessionRequest struct {
	Coach       string `json:"coach" validate:"required"`
	ListingID   uint   `json:"listing_id"`
	SessionTime uint64 `json:"session_time" validate:"required"`
	Duration    uint   `json:"duration" validate:"required"`
	Amount      uint64 `json:"amount" validate:"required"`
	Timezone    string `json:"timezone"`
}

func BookSession(c *fiber.Ctx) error {
	caller := callerPrincipal(c)

	var req BookSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	sessionID, err := state.Bookings.BookSession(
		caller,
		models.Principal(req.Coach),
		req.ListingID,
		req.SessionTime,
		req.Duration,
		req.Amount,
		req.Timezone,
	)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"session_id": sessionID})
}

func ConfirmSession(c *fiber.Ctx) error {
	caller := callerPrincipal(c)
	coach, listingID, sessionID, err := bookingParams(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := state.Bookings.ConfirmSession(caller, coach, listingID, sessionID); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Session confirmed"})
}

func CancelSession(c *fiber.Ctx) error {
	caller := callerPrincipal(c)
	coach, listingID, sessionID, err := bookingParams(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := state.Bookings.CancelSession(caller, coach, listingID, sessionID); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Session cancelled"})
}

func GetBooking(c *fiber.Ctx) error {
	coach, listingID, sessionID, err := bookingParams(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	booking, ok := state.Bookings.GetBooking(coach, listingID, sessionID)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}
	return c.JSON(booking)
}

func GetNextSessionID(c *fiber.Ctx) error {
	coach := models.Principal(c.Params("coach"))
	listingID, err := c.ParamsInt("listingId")
	if err != nil || listingID < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid listing id"})
	}
	return c.JSON(fiber.Map{"next_session_id": state.Bookings.NextSessionID(coach, uint(listingID))})
}

func bookingParams(c *fiber.Ctx) (models.Principal, uint, uint, error) {
	coach := models.Principal(c.Params("coach"))
	listingID, err := c.ParamsInt("listingId")
	if err != nil || listingID < 0 {
		return "", 0, 0, fiber.NewError(fiber.StatusBadRequest, "Invalid listing id")
	}
	sessionID, err := c.ParamsInt("sessionId")
	if err != nil || sessionID < 0 {
		return "", 0, 0, fiber.NewError(fiber.StatusBadRequest, "Invalid session id")
	}
	return coach, uint(listingID), uint(sessionID), nil
}

package handlers

import (
	"github.com/coachledger/marketplace/state"
	"github.com/gofiber/fiber/v2"
)

func GetChainHeight(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"height": state.Chain.Height()})
}

func GetFees(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"verification_fee": state.Credentials.VerificationFee(),
		"listing_fee":      state.Listings.ListingFee(),
		"booking_fee":      state.Bookings.BookingFee(),
	})
}

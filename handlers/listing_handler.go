package handlers

import (
	"github.com/coachledger/marketplace/listings"
	"github.com/coachledger/marketplace/models"
	"github.com/coachledger/marketplace/state"
	"github.com/gofiber/fiber/v2"
)

type CreateListingRequest struct {
	Title        string `json:"title" validate:"required"`
	Description  string `json:"description"`
	Price        uint64 `json:"price" validate:"required"`
	Duration     uint   `json:"duration" validate:"required"`
	Category     string `json:"category" validate:"required"`
	Availability []uint `json:"availability"`
	Currency     string `json:"currency" validate:"required"`
	MaxSessions  uint   `json:"max_sessions" validate:"required"`
	Location     string `json:"location"`
	Timezone     string `json:"timezone"`
}

func CreateListing(c *fiber.Ctx) error {
	caller := callerPrincipal(c)

	var req CreateListingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	id, err := state.Listings.CreateListing(caller, listings.Draft{
		Title:        req.Title,
		Description:  req.Description,
		Price:        req.Price,
		Duration:     req.Duration,
		Category:     req.Category,
		Availability: req.Availability,
		Currency:     req.Currency,
		MaxSessions:  req.MaxSessions,
		Location:     req.Location,
		Timezone:     req.Timezone,
	})
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"listing_id": id})
}

type UpdateListingRequest struct {
	Title        string `json:"title" validate:"required"`
	Description  string `json:"description"`
	Price        uint64 `json:"price" validate:"required"`
	Duration     uint   `json:"duration" validate:"required"`
	Category     string `json:"category" validate:"required"`
	Availability []uint `json:"availability"`
	Active       bool   `json:"active"`
}

func UpdateListing(c *fiber.Ctx) error {
	caller := callerPrincipal(c)
	id, err := c.ParamsInt("listingId")
	if err != nil || id < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid listing id"})
	}

	var req UpdateListingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := state.Listings.UpdateListing(caller, uint(id), listings.Update{
		Title:        req.Title,
		Description:  req.Description,
		Price:        req.Price,
		Duration:     req.Duration,
		Category:     req.Category,
		Availability: req.Availability,
		Active:       req.Active,
	}); err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"message": "Listing updated"})
}

func DeleteListing(c *fiber.Ctx) error {
	caller := callerPrincipal(c)
	id, err := c.ParamsInt("listingId")
	if err != nil || id < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid listing id"})
	}

	if err := state.Listings.DeleteListing(caller, uint(id)); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Listing deleted"})
}

func GetListing(c *fiber.Ctx) error {
	coach := models.Principal(c.Params("coach"))
	id, err := c.ParamsInt("listingId")
	if err != nil || id < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid listing id"})
	}

	listing, ok := state.Listings.GetListing(coach, uint(id))
	if !ok {
		return fail(c, listings.ErrListingNotFound)
	}
	return c.JSON(listing)
}

func GetNextListingID(c *fiber.Ctx) error {
	coach := models.Principal(c.Params("coach"))
	return c.JSON(fiber.Map{"next_listing_id": state.Listings.NextListingID(coach)})
}

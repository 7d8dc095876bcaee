package handlers

import (
	"errors"

	"github.com/coachledger/marketplace/models"
	"github.com/coachledger/marketplace/policy"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

var validate = validator.New()

// callerPrincipal reads the authenticated principal from the verified JWT.
func callerPrincipal(c *fiber.Ctx) models.Principal {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	principal, _ := claims["principal"].(string)
	return models.Principal(principal)
}

// fail renders a store rejection with its enumerated code, or a plain 500 for
// anything unexpected.
func fail(c *fiber.Ctx, err error) error {
	var rejection *policy.Error
	if errors.As(err, &rejection) {
		return c.Status(rejection.Status).JSON(fiber.Map{
			"error": rejection.Message,
			"code":  rejection.Code,
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}

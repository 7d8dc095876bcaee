package handlers

import (
	"encoding/hex"

	"github.com/coachledger/marketplace/credentials"
	"github.com/coachledger/marketplace/models"
	"github.com/coachledger/marketplace/state"
	"github.com/gofiber/fiber/v2"
)

type SubmitCredentialRequest struct {
	Hash        string  `json:"hash" validate:"required,hexadecimal"`
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description"`
	Issuer      string  `json:"issuer" validate:"required"`
	Expiry      *uint64 `json:"expiry,omitempty"`
	Category    string  `json:"category" validate:"required"`
	Level       uint    `json:"level" validate:"required"`
	Score       uint    `json:"score"`
	Metadata    string  `json:"metadata,omitempty" validate:"omitempty,hexadecimal"`
}

func SubmitCredential(c *fiber.Ctx) error {
	caller := callerPrincipal(c)

	var req SubmitCredentialRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	hash, err := hex.DecodeString(req.Hash)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Hash must be hex encoded"})
	}
	var metadata []byte
	if req.Metadata != "" {
		metadata, err = hex.DecodeString(req.Metadata)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Metadata must be hex encoded"})
		}
	}

	id, err := state.Credentials.SubmitCredential(caller, credentials.Submission{
		Hash:        hash,
		Title:       req.Title,
		Description: req.Description,
		Issuer:      req.Issuer,
		Expiry:      req.Expiry,
		Category:    req.Category,
		Level:       req.Level,
		Score:       req.Score,
		Metadata:    metadata,
	})
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"credential_id": id})
}

type AttestCredentialRequest struct {
	Signature string `json:"signature" validate:"required,hexadecimal"`
}

func AttestCredential(c *fiber.Ctx) error {
	caller := callerPrincipal(c)
	coach := models.Principal(c.Params("coach"))
	id, err := c.ParamsInt("credentialId")
	if err != nil || id < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid credential id"})
	}

	var req AttestCredentialRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	signature, err := hex.DecodeString(req.Signature)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Signature must be hex encoded"})
	}

	if err := state.Credentials.AttestCredential(caller, coach, uint(id), signature); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Credential attested"})
}

func RevokeAttestation(c *fiber.Ctx) error {
	caller := callerPrincipal(c)
	coach := models.Principal(c.Params("coach"))
	id, err := c.ParamsInt("credentialId")
	if err != nil || id < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid credential id"})
	}

	if err := state.Credentials.RevokeAttestation(caller, coach, uint(id)); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Attestation revoked"})
}

func GetCredentialDetails(c *fiber.Ctx) error {
	coach := models.Principal(c.Params("coach"))
	id, err := c.ParamsInt("credentialId")
	if err != nil || id < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid credential id"})
	}

	return c.JSON(state.Credentials.GetCredentialDetails(coach, uint(id)))
}

func GetCoachVerification(c *fiber.Ctx) error {
	coach := models.Principal(c.Params("coach"))
	return c.JSON(fiber.Map{
		"coach":    coach,
		"verified": state.Credentials.IsCoachVerified(coach),
	})
}

package handlers

import (
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"leafmarket/internal/middleware"
	"leafmarket/internal/models"
	"leafmarket/internal/services"
)

// EligibilityHandler handles HTTP requests for the age/jurisdiction gate.
type EligibilityHandler struct {
	eligibility *services.EligibilityService
	validate    *validator.Validate
}

// NewEligibilityHandler creates a new EligibilityHandler.
func NewEligibilityHandler(eligibility *services.EligibilityService) *EligibilityHandler {
	return &EligibilityHandler{
		eligibility: eligibility,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the eligibility routes with the Fiber app.
func (h *EligibilityHandler) RegisterRoutes(router fiber.Router) {
	routes := router.Group("/eligibility")
	routes.Post("/verify", h.HandleVerify)
	routes.Get("/status", h.HandleStatus)
	routes.Delete("/", h.HandleReset)
}

// VerifyRequest is the eligibility form payload. BirthDate uses the
// 2006-01-02 wire format.
type VerifyRequest struct {
	BirthDate string `json:"birthDate" validate:"required"`
	State     string `json:"state" validate:"required"`
}

// HandleVerify runs the gate and, on success, hands the visitor a session
// token (also set as a cookie for browser clients).
func (h *EligibilityHandler) HandleVerify(c *fiber.Ctx) error {
	var req VerifyRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing verify request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}

	birthDate, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid birth date, expected YYYY-MM-DD",
			"error":   err.Error(),
		})
	}

	session, token, err := h.eligibility.Verify(birthDate, req.State)
	if err != nil {
		log.Printf("Eligibility verification failed: %v", err)
		return errorResponse(c, "Verification failed", err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.EligibilityTokenCookie,
		Value:    token,
		Expires:  time.Now().Add(models.SessionTTL),
		HTTPOnly: true,
	})

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Verification successful",
		"token":   token,
		"session": session,
	})
}

// HandleStatus reports the current eligibility session, if one is valid.
func (h *EligibilityHandler) HandleStatus(c *fiber.Ctx) error {
	session, err := h.eligibility.Check(middleware.EligibilityToken(c))
	if err != nil {
		return errorResponse(c, "No valid verification session", err)
	}
	return c.JSON(fiber.Map{"session": session})
}

// HandleReset discards the visitor's eligibility session.
func (h *EligibilityHandler) HandleReset(c *fiber.Ctx) error {
	if err := h.eligibility.Revoke(middleware.EligibilityToken(c)); err != nil {
		log.Printf("Error revoking eligibility session: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not reset verification",
			"error":   err.Error(),
		})
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.EligibilityTokenCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
	return c.JSON(fiber.Map{"message": "Verification reset"})
}

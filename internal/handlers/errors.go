package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"leafmarket/internal/models"
)

// statusForError maps service-layer errors onto HTTP status codes. Anything
// unrecognized is a 500.
func statusForError(err error) int {
	switch {
	case errors.Is(err, models.ErrUserNotFound),
		errors.Is(err, models.ErrStrainNotFound),
		errors.Is(err, models.ErrTierNotFound),
		errors.Is(err, models.ErrSubscriptionNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, models.ErrEmailTaken):
		return fiber.StatusConflict
	case errors.Is(err, models.ErrInvalidCredentials),
		errors.Is(err, models.ErrSessionNotFound):
		return fiber.StatusUnauthorized
	case errors.Is(err, models.ErrUnderage),
		errors.Is(err, models.ErrStateNotLegal),
		errors.Is(err, models.ErrVerificationRequired),
		errors.Is(err, models.ErrNotListingOwner):
		return fiber.StatusForbidden
	case errors.Is(err, models.ErrIncompleteForm),
		errors.Is(err, models.ErrInvalidBirthDate),
		errors.Is(err, models.ErrDowngradeNotAllowed),
		errors.Is(err, models.ErrSameTier):
		return fiber.StatusBadRequest
	case errors.Is(err, models.ErrPaymentFailed):
		return fiber.StatusPaymentRequired
	default:
		return fiber.StatusInternalServerError
	}
}

// errorResponse writes the standard error body for a failed operation.
func errorResponse(c *fiber.Ctx, message string, err error) error {
	return c.Status(statusForError(err)).JSON(fiber.Map{
		"message": message,
		"error":   err.Error(),
	})
}

// currentUserID reads the authenticated user's ID from the request context.
// JWT claims decode numbers as float64.
func currentUserID(c *fiber.Ctx) int {
	switch v := c.Locals("user_id").(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return 0
	}
}

// currentRole reads the authenticated user's role, least-privileged when
// the claim is missing or unrecognized.
func currentRole(c *fiber.Ctx) string {
	role, _ := c.Locals("role").(string)
	return models.NormalizeRole(role)
}

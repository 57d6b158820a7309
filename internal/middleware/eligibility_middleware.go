package middleware

import (
	"github.com/gofiber/fiber/v2"

	"leafmarket/internal/services"
)

// EligibilityTokenHeader carries the eligibility session key; a cookie of
// the same purpose is accepted as fallback.
const (
	EligibilityTokenHeader = "X-Eligibility-Token"
	EligibilityTokenCookie = "eligibility_token"
)

// EligibilityToken extracts the session key from the request.
func EligibilityToken(c *fiber.Ctx) string {
	if token := c.Get(EligibilityTokenHeader); token != "" {
		return token
	}
	return c.Cookies(EligibilityTokenCookie)
}

// EligibilityRequired blocks marketplace content until the visitor holds a
// valid eligibility session. Expired or corrupt sessions read as absent.
func EligibilityRequired(eligibility *services.EligibilityService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, err := eligibility.Check(EligibilityToken(c))
		if err != nil {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Age verification required",
			})
		}

		c.Locals("eligibility", session)
		return c.Next()
	}
}

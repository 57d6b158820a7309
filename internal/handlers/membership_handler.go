package handlers

import (
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"leafmarket/internal/services"
)

// MembershipHandler handles HTTP requests for membership tiers, upgrades,
// and the simulated payment flow.
type MembershipHandler struct {
	service  *services.MembershipService
	validate *validator.Validate
}

// NewMembershipHandler creates a new MembershipHandler.
func NewMembershipHandler(service *services.MembershipService) *MembershipHandler {
	return &MembershipHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterPublicRoutes exposes the tier catalog.
func (h *MembershipHandler) RegisterPublicRoutes(router fiber.Router) {
	router.Get("/membership/tiers", h.HandleGetTiers)
}

// RegisterMemberRoutes registers the member surface behind JWT auth.
func (h *MembershipHandler) RegisterMemberRoutes(router fiber.Router) {
	routes := router.Group("/membership")
	routes.Get("/", h.HandleGetMembership)
	routes.Post("/upgrade", h.HandleUpgrade)
}

// RegisterAdminRoutes registers the stats endpoint behind admin role.
func (h *MembershipHandler) RegisterAdminRoutes(router fiber.Router) {
	router.Get("/membership/stats", h.HandleStats)
}

// HandleGetTiers returns the static tier catalog.
func (h *MembershipHandler) HandleGetTiers(c *fiber.Ctx) error {
	return c.JSON(h.service.GetAllTiers())
}

// HandleGetMembership returns the authenticated user's current tier.
func (h *MembershipHandler) HandleGetMembership(c *fiber.Ctx) error {
	info, err := h.service.GetUserMembership(currentUserID(c))
	if err != nil {
		log.Printf("Error getting membership: %v", err)
		return errorResponse(c, "Could not retrieve membership", err)
	}
	return c.JSON(info)
}

// UpgradeRequest is the membership upgrade payload. Card details are only
// echoed into the simulated payment and never stored.
type UpgradeRequest struct {
	Tier string `json:"tier" validate:"required,oneof=Basic Pro Premium"`
}

// HandleUpgrade charges for the target tier (free tiers skip the charge)
// and then moves the user up. A payment failure leaves the membership
// unchanged and can be retried.
func (h *MembershipHandler) HandleUpgrade(c *fiber.Ctx) error {
	var req UpgradeRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing upgrade request body: %v", err)
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

	userID := currentUserID(c)

	user, payment, err := h.service.PurchaseUpgrade(userID, req.Tier)
	if err != nil {
		log.Printf("Error upgrading membership for user %d: %v", userID, err)
		return errorResponse(c, "Could not upgrade membership", err)
	}

	return c.JSON(fiber.Map{
		"message":     fmt.Sprintf("Successfully upgraded to %s membership!", req.Tier),
		"user":        user,
		"transaction": payment,
	})
}

// HandleStats returns the tier distribution across all users.
func (h *MembershipHandler) HandleStats(c *fiber.Ctx) error {
	stats, err := h.service.GetMembershipStats()
	if err != nil {
		log.Printf("Error getting membership stats: %v", err)
		return errorResponse(c, "Could not retrieve stats", err)
	}
	return c.JSON(stats)
}

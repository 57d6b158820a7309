package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"leafmarket/internal/models"
	"leafmarket/internal/services"
)

// SubscriptionHandler handles HTTP requests for seller dashboard
// subscriptions.
type SubscriptionHandler struct {
	service *services.SubscriptionService
}

// NewSubscriptionHandler creates a new SubscriptionHandler.
func NewSubscriptionHandler(service *services.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{
		service: service,
	}
}

// RegisterRoutes registers the subscription routes. The caller is expected
// to mount these behind JWT auth with seller or admin role.
func (h *SubscriptionHandler) RegisterRoutes(router fiber.Router) {
	routes := router.Group("/subscription")
	routes.Get("/", h.HandleGetSubscription)
	routes.Put("/", h.HandleUpdateSubscription)
}

// HandleGetSubscription returns the authenticated seller's subscription,
// or an expired placeholder when none exists.
func (h *SubscriptionHandler) HandleGetSubscription(c *fiber.Ctx) error {
	sub, err := h.service.GetSellerSubscription(currentUserID(c))
	if err != nil {
		log.Printf("Error getting subscription: %v", err)
		return errorResponse(c, "Could not retrieve subscription", err)
	}
	return c.JSON(sub)
}

// HandleUpdateSubscription upserts the authenticated seller's subscription.
func (h *SubscriptionHandler) HandleUpdateSubscription(c *fiber.Ctx) error {
	var update models.SubscriptionUpdate
	if err := c.BodyParser(&update); err != nil {
		log.Printf("Error parsing subscription update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	sub, err := h.service.UpdateSubscription(currentUserID(c), update)
	if err != nil {
		log.Printf("Error updating subscription: %v", err)
		return errorResponse(c, "Could not update subscription", err)
	}
	return c.JSON(sub)
}

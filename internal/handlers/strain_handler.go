package handlers

import (
	"fmt"
	"log"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"leafmarket/internal/models"
	"leafmarket/internal/services"
)

// StrainHandler handles HTTP requests for the strain catalog: the public
// browse surface and the seller dashboard.
type StrainHandler struct {
	service  *services.StrainService
	validate *validator.Validate
}

// NewStrainHandler creates a new StrainHandler.
func NewStrainHandler(service *services.StrainService) *StrainHandler {
	return &StrainHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterPublicRoutes registers the browse surface. The caller is expected
// to mount these behind the eligibility gate.
func (h *StrainHandler) RegisterPublicRoutes(router fiber.Router) {
	routes := router.Group("/strains")
	routes.Get("/", h.HandleBrowse)
	routes.Get("/:id", h.HandleGetByID)
}

// RegisterSellerRoutes registers the dashboard CRUD flow. The caller is
// expected to mount these behind JWT auth with seller or admin role.
func (h *StrainHandler) RegisterSellerRoutes(router fiber.Router) {
	router.Get("/dashboard/strains", h.HandleSellerStrains)
	routes := router.Group("/strains")
	routes.Post("/", h.HandleCreate)
	routes.Put("/:id", h.HandleUpdate)
	routes.Delete("/:id", h.HandleDelete)
}

// HandleBrowse lists active strains, narrowed by optional term, category,
// and priceRange ("min-max" or "min+") query parameters.
func (h *StrainHandler) HandleBrowse(c *fiber.Ctx) error {
	filter := services.StrainFilter{
		Term:       c.Query("term"),
		Category:   c.Query("category"),
		PriceRange: c.Query("priceRange"),
	}

	strains, err := h.service.FilterStrains(filter)
	if err != nil {
		log.Printf("Error browsing strains: %v", err)
		return errorResponse(c, "Could not retrieve strains", err)
	}
	if strains == nil {
		strains = []models.Strain{}
	}
	return c.JSON(strains)
}

// HandleGetByID retrieves a single listing.
func (h *StrainHandler) HandleGetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid strain ID",
		})
	}

	strain, err := h.service.GetStrainByID(id)
	if err != nil {
		log.Printf("Error getting strain %d: %v", id, err)
		return errorResponse(c, "Could not retrieve strain", err)
	}
	return c.JSON(strain)
}

// HandleSellerStrains lists every listing owned by the authenticated
// seller, including inactive ones.
func (h *StrainHandler) HandleSellerStrains(c *fiber.Ctx) error {
	strains, err := h.service.GetSellerStrains(currentUserID(c))
	if err != nil {
		log.Printf("Error getting seller strains: %v", err)
		return errorResponse(c, "Could not retrieve listings", err)
	}
	if strains == nil {
		strains = []models.Strain{}
	}
	return c.JSON(strains)
}

// HandleCreate creates a listing owned by the authenticated seller.
func (h *StrainHandler) HandleCreate(c *fiber.Ctx) error {
	var strain models.Strain
	if err := c.BodyParser(&strain); err != nil {
		log.Printf("Error parsing strain request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.StructExcept(strain, "ID", "SellerID"); err != nil {
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

	// Ownership comes from the token, not the payload. Admins may create
	// on behalf of a seller.
	if strain.SellerID == 0 || currentRole(c) != models.RoleAdmin {
		strain.SellerID = currentUserID(c)
	}
	strain.ID = 0

	if err := h.service.CreateStrain(&strain); err != nil {
		log.Printf("Error creating strain: %v", err)
		return errorResponse(c, "Could not create strain", err)
	}
	return c.Status(fiber.StatusCreated).JSON(strain)
}

// HandleUpdate merges a partial payload onto a listing after checking the
// caller owns it (admins bypass the check).
func (h *StrainHandler) HandleUpdate(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid strain ID",
		})
	}

	var update models.StrainUpdate
	if err := c.BodyParser(&update); err != nil {
		log.Printf("Error parsing strain update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(update); err != nil {
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

	if err := h.checkOwnership(c, id); err != nil {
		return errorResponse(c, "Cannot modify listing", err)
	}

	strain, err := h.service.UpdateStrain(id, update)
	if err != nil {
		log.Printf("Error updating strain %d: %v", id, err)
		return errorResponse(c, "Could not update strain", err)
	}
	return c.JSON(strain)
}

// HandleDelete removes a listing after the ownership check.
func (h *StrainHandler) HandleDelete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid strain ID",
		})
	}

	if err := h.checkOwnership(c, id); err != nil {
		return errorResponse(c, "Cannot delete listing", err)
	}

	if err := h.service.DeleteStrain(id); err != nil {
		log.Printf("Error deleting strain %d: %v", id, err)
		return errorResponse(c, "Could not delete strain", err)
	}
	return c.JSON(fiber.Map{"message": "Strain deleted successfully"})
}

func (h *StrainHandler) checkOwnership(c *fiber.Ctx, strainID int) error {
	strain, err := h.service.GetStrainByID(strainID)
	if err != nil {
		return err
	}
	if currentRole(c) != models.RoleAdmin && strain.SellerID != currentUserID(c) {
		return models.ErrNotListingOwner
	}
	return nil
}

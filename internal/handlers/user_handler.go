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

// UserHandler handles HTTP requests for user administration and the
// self-service profile.
type UserHandler struct {
	userService *services.UserService
	authService *services.AuthService
	validate    *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService, authService *services.AuthService) *UserHandler {
	return &UserHandler{
		userService: userService,
		authService: authService,
		validate:    validator.New(),
	}
}

// RegisterAdminRoutes registers the user administration surface. The caller
// is expected to mount these behind JWT auth with admin role.
func (h *UserHandler) RegisterAdminRoutes(router fiber.Router) {
	routes := router.Group("/users")
	routes.Get("/", h.HandleGetUsers)
	routes.Get("/:id", h.HandleGetUserByID)
	routes.Put("/:id", h.HandleUpdateUser)
	routes.Delete("/:id", h.HandleDeleteUser)
}

// RegisterProfileRoutes registers the self-service profile surface behind
// JWT auth for any role.
func (h *UserHandler) RegisterProfileRoutes(router fiber.Router) {
	routes := router.Group("/profile")
	routes.Get("/", h.HandleGetProfile)
	routes.Put("/", h.HandleUpdateProfile)
	routes.Put("/password", h.HandleChangePassword)
}

// HandleGetUsers lists all users, credentials stripped.
func (h *UserHandler) HandleGetUsers(c *fiber.Ctx) error {
	users, err := h.userService.GetAllUsers()
	if err != nil {
		log.Printf("Error getting all users: %v", err)
		return errorResponse(c, "Could not retrieve users", err)
	}
	return c.JSON(users)
}

// HandleGetUserByID retrieves a single user record.
func (h *UserHandler) HandleGetUserByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid user ID",
		})
	}

	user, err := h.userService.GetUserByID(id)
	if err != nil {
		log.Printf("Error getting user %d: %v", id, err)
		return errorResponse(c, "Could not retrieve user", err)
	}
	return c.JSON(user)
}

// HandleUpdateUser merges a partial payload onto a user record. The record
// ID cannot be changed through the payload.
func (h *UserHandler) HandleUpdateUser(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid user ID",
		})
	}

	var update models.UserUpdate
	if err := c.BodyParser(&update); err != nil {
		log.Printf("Error parsing user update body: %v", err)
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

	user, err := h.userService.UpdateUser(id, update)
	if err != nil {
		log.Printf("Error updating user %d: %v", id, err)
		return errorResponse(c, "Could not update user", err)
	}
	return c.JSON(user)
}

// HandleDeleteUser removes a user record.
func (h *UserHandler) HandleDeleteUser(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid user ID",
		})
	}

	if err := h.userService.DeleteUser(id); err != nil {
		log.Printf("Error deleting user %d: %v", id, err)
		return errorResponse(c, "Could not delete user", err)
	}
	return c.JSON(fiber.Map{"message": "User deleted successfully"})
}

// HandleGetProfile returns the authenticated user's own record.
func (h *UserHandler) HandleGetProfile(c *fiber.Ctx) error {
	user, err := h.userService.GetUserByID(currentUserID(c))
	if err != nil {
		log.Printf("Error getting profile: %v", err)
		return errorResponse(c, "Could not retrieve profile", err)
	}
	return c.JSON(user)
}

// HandleUpdateProfile updates the authenticated user's own profile fields.
func (h *UserHandler) HandleUpdateProfile(c *fiber.Ctx) error {
	var update models.UserUpdate
	if err := c.BodyParser(&update); err != nil {
		log.Printf("Error parsing profile update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	user, err := h.userService.UpdateProfile(currentUserID(c), update)
	if err != nil {
		log.Printf("Error updating profile: %v", err)
		return errorResponse(c, "Could not update profile", err)
	}
	return c.JSON(user)
}

// ChangePasswordRequest is the password change payload.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
}

// HandleChangePassword replaces the authenticated user's credential.
func (h *UserHandler) HandleChangePassword(c *fiber.Ctx) error {
	var req ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing password change body: %v", err)
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

	if err := h.authService.ChangePassword(currentUserID(c), req.CurrentPassword, req.NewPassword); err != nil {
		log.Printf("Error changing password: %v", err)
		return errorResponse(c, "Could not change password", err)
	}
	return c.JSON(fiber.Map{"message": "Password updated successfully"})
}

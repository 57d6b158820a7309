package repositories

import "leafmarket/internal/models"

// UserRepository defines the interface for user data access.
// Email lookups are case-insensitive; stored emails keep their
// original casing.
type UserRepository interface {
	GetAll() ([]models.User, error)
	GetByID(id int) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Create(user *models.User) error
	Update(user *models.User) error
	Delete(id int) error
}

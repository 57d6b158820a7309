package services

import (
	"fmt"

	"leafmarket/internal/models"
	"leafmarket/internal/repositories"
)

// UserService handles business logic for user administration and profiles.
// Every record it returns has the credential field stripped, including the
// administrative list operation.
type UserService struct {
	repo repositories.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(repo repositories.UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

// GetAllUsers retrieves all users, stripped of credentials.
func (s *UserService) GetAllUsers() ([]models.User, error) {
	users, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	sanitized := make([]models.User, 0, len(users))
	for _, u := range users {
		sanitized = append(sanitized, u.Sanitized())
	}
	return sanitized, nil
}

// GetUserByID retrieves a single user, stripped of credentials.
func (s *UserService) GetUserByID(id int) (*models.User, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	sanitized := user.Sanitized()
	return &sanitized, nil
}

// UpdateUser merges the partial payload onto the stored record. The ID is
// never overwritten; an empty payload returns the record unchanged.
func (s *UserService) UpdateUser(id int, update models.UserUpdate) (*models.User, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	update.ApplyTo(user)
	user.ID = id

	if err := s.repo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user %d: %w", id, err)
	}
	sanitized := user.Sanitized()
	return &sanitized, nil
}

// UpdateProfile is UpdateUser restricted to self-service profile fields.
// Role, tier, email, and the active flag in the payload are ignored.
func (s *UserService) UpdateProfile(id int, update models.UserUpdate) (*models.User, error) {
	return s.UpdateUser(id, update.ProfileFields())
}

// DeleteUser removes a user record.
func (s *UserService) DeleteUser(id int) error {
	return s.repo.Delete(id)
}

package repositories

import (
	"fmt"
	"strings"
	"sync"

	"leafmarket/internal/models"
)

// MockUserRepository is an in-memory implementation of UserRepository.
type MockUserRepository struct {
	users map[int]models.User
	mu    sync.RWMutex
}

// NewMockUserRepository creates a new instance of MockUserRepository.
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[int]models.User),
	}
}

// GetAll returns all users.
func (r *MockUserRepository) GetAll() ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	userList := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		userList = append(userList, u)
	}
	return userList, nil
}

// GetByID returns a user by their ID.
func (r *MockUserRepository) GetByID(id int) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("user %d: %w", id, models.ErrUserNotFound)
	}
	return &user, nil
}

// GetByEmail returns a user by email, compared case-insensitively.
func (r *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			user := u
			return &user, nil
		}
	}
	return nil, fmt.Errorf("user %s: %w", email, models.ErrUserNotFound)
}

// Create adds a new user, assigning the next integer ID when none is set.
func (r *MockUserRepository) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user.ID == 0 {
		user.ID = r.nextID()
	}
	r.users[user.ID] = *user
	return nil
}

// Update modifies an existing user.
func (r *MockUserRepository) Update(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.ID]; !ok {
		return fmt.Errorf("user %d: %w", user.ID, models.ErrUserNotFound)
	}
	r.users[user.ID] = *user
	return nil
}

// Delete removes a user by their ID.
func (r *MockUserRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return fmt.Errorf("user %d: %w", id, models.ErrUserNotFound)
	}
	delete(r.users, id)
	return nil
}

// nextID assigns IDs as max(existing)+1, starting at 1 for an empty store.
// Callers must hold the write lock.
func (r *MockUserRepository) nextID() int {
	max := 0
	for id := range r.users {
		if id > max {
			max = id
		}
	}
	return max + 1
}

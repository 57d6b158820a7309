package repositories

import (
	"fmt"
	"sync"

	"leafmarket/internal/models"
)

// MockStrainRepository is an in-memory implementation of StrainRepository.
type MockStrainRepository struct {
	strains map[int]models.Strain
	mu      sync.RWMutex
}

// NewMockStrainRepository creates a new instance of MockStrainRepository.
func NewMockStrainRepository() *MockStrainRepository {
	return &MockStrainRepository{
		strains: make(map[int]models.Strain),
	}
}

// GetAll returns every listing, active or not.
func (r *MockStrainRepository) GetAll() ([]models.Strain, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	strainList := make([]models.Strain, 0, len(r.strains))
	for _, s := range r.strains {
		strainList = append(strainList, s)
	}
	return strainList, nil
}

// GetActive returns listings with the active flag set. Inactive listings
// stay in the store but are excluded here.
func (r *MockStrainRepository) GetActive() ([]models.Strain, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var strainList []models.Strain
	for _, s := range r.strains {
		if s.Active {
			strainList = append(strainList, s)
		}
	}
	return strainList, nil
}

// GetBySeller returns all listings owned by the seller, including inactive
// ones, and never anyone else's.
func (r *MockStrainRepository) GetBySeller(sellerID int) ([]models.Strain, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var strainList []models.Strain
	for _, s := range r.strains {
		if s.SellerID == sellerID {
			strainList = append(strainList, s)
		}
	}
	return strainList, nil
}

// GetByID returns a strain by its ID.
func (r *MockStrainRepository) GetByID(id int) (*models.Strain, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	strain, ok := r.strains[id]
	if !ok {
		return nil, fmt.Errorf("strain %d: %w", id, models.ErrStrainNotFound)
	}
	return &strain, nil
}

// Create adds a new listing, assigning the next integer ID when none is set.
func (r *MockStrainRepository) Create(strain *models.Strain) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strain.ID == 0 {
		max := 0
		for id := range r.strains {
			if id > max {
				max = id
			}
		}
		strain.ID = max + 1
	}
	r.strains[strain.ID] = *strain
	return nil
}

// Update modifies an existing listing.
func (r *MockStrainRepository) Update(strain *models.Strain) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.strains[strain.ID]; !ok {
		return fmt.Errorf("strain %d: %w", strain.ID, models.ErrStrainNotFound)
	}
	r.strains[strain.ID] = *strain
	return nil
}

// Delete removes a listing by its ID.
func (r *MockStrainRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.strains[id]; !ok {
		return fmt.Errorf("strain %d: %w", id, models.ErrStrainNotFound)
	}
	delete(r.strains, id)
	return nil
}

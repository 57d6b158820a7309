package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"leafmarket/internal/models"
)

// GORMStrainRepository is a GORM implementation of StrainRepository.
type GORMStrainRepository struct {
	db *gorm.DB
}

// NewGORMStrainRepository creates a new instance of GORMStrainRepository.
func NewGORMStrainRepository(db *gorm.DB) *GORMStrainRepository {
	return &GORMStrainRepository{
		db: db,
	}
}

// GetAll retrieves every listing from the database.
func (r *GORMStrainRepository) GetAll() ([]models.Strain, error) {
	var strains []models.Strain
	if err := r.db.Find(&strains).Error; err != nil {
		return nil, fmt.Errorf("failed to get all strains: %w", err)
	}
	return strains, nil
}

// GetActive retrieves listings with the active flag set.
func (r *GORMStrainRepository) GetActive() ([]models.Strain, error) {
	var strains []models.Strain
	if err := r.db.Where("active = ?", true).Find(&strains).Error; err != nil {
		return nil, fmt.Errorf("failed to get active strains: %w", err)
	}
	return strains, nil
}

// GetBySeller retrieves all listings owned by the seller, active or not.
func (r *GORMStrainRepository) GetBySeller(sellerID int) ([]models.Strain, error) {
	var strains []models.Strain
	if err := r.db.Where("seller_id = ?", sellerID).Find(&strains).Error; err != nil {
		return nil, fmt.Errorf("failed to get strains for seller %d: %w", sellerID, err)
	}
	return strains, nil
}

// GetByID retrieves a single listing by its ID.
func (r *GORMStrainRepository) GetByID(id int) (*models.Strain, error) {
	var strain models.Strain
	if err := r.db.First(&strain, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("strain %d: %w", id, models.ErrStrainNotFound)
		}
		return nil, fmt.Errorf("failed to get strain by ID %d: %w", id, err)
	}
	return &strain, nil
}

// Create creates a new listing, assigning max(existing)+1 when no ID is set.
func (r *GORMStrainRepository) Create(strain *models.Strain) error {
	if strain.ID == 0 {
		var maxID int
		if err := r.db.Model(&models.Strain{}).Select("COALESCE(MAX(id), 0)").Scan(&maxID).Error; err != nil {
			return fmt.Errorf("failed to assign strain ID: %w", err)
		}
		strain.ID = maxID + 1
	}
	if err := r.db.Create(strain).Error; err != nil {
		return fmt.Errorf("failed to create strain: %w", err)
	}
	return nil
}

// Update updates an existing listing in the database.
func (r *GORMStrainRepository) Update(strain *models.Strain) error {
	res := r.db.Save(strain)
	if res.Error != nil {
		return fmt.Errorf("failed to update strain: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("strain %d: %w", strain.ID, models.ErrStrainNotFound)
	}
	return nil
}

// Delete deletes a listing by its ID from the database.
func (r *GORMStrainRepository) Delete(id int) error {
	res := r.db.Delete(&models.Strain{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete strain: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("strain %d: %w", id, models.ErrStrainNotFound)
	}
	return nil
}

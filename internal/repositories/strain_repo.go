package repositories

import "leafmarket/internal/models"

// StrainRepository defines the interface for strain listing data access.
// The store only knows identity and ownership lookups; free-text and price
// filtering live in the service layer.
type StrainRepository interface {
	GetAll() ([]models.Strain, error)
	GetActive() ([]models.Strain, error)
	GetBySeller(sellerID int) ([]models.Strain, error)
	GetByID(id int) (*models.Strain, error)
	Create(strain *models.Strain) error
	Update(strain *models.Strain) error
	Delete(id int) error
}

package services

import (
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"
	"time"

	"leafmarket/internal/models"
	"leafmarket/internal/repositories"
)

// StrainService handles business logic for the strain catalog: the public
// browse surface and the seller dashboard CRUD flow.
type StrainService struct {
	repo   repositories.StrainRepository
	events EventPublisher
}

// NewStrainService creates a new StrainService.
func NewStrainService(repo repositories.StrainRepository, events EventPublisher) *StrainService {
	return &StrainService{
		repo:   repo,
		events: events,
	}
}

// StrainFilter narrows the public browse surface. Zero values mean "no
// filter". PriceRange accepts "min-max" or "min+" for an unbounded upper
// band.
type StrainFilter struct {
	Term       string
	Category   string
	PriceRange string
}

// GetActiveStrains returns all publicly visible listings.
func (s *StrainService) GetActiveStrains() ([]models.Strain, error) {
	return s.repo.GetActive()
}

// GetSellerStrains returns every listing owned by the seller, active or not.
func (s *StrainService) GetSellerStrains(sellerID int) ([]models.Strain, error) {
	return s.repo.GetBySeller(sellerID)
}

// GetStrainByID retrieves a single listing by its ID.
func (s *StrainService) GetStrainByID(id int) (*models.Strain, error) {
	return s.repo.GetByID(id)
}

// CreateStrain creates a new listing, stamps its creation time, and
// publishes a listing.created event.
func (s *StrainService) CreateStrain(strain *models.Strain) error {
	now := time.Now()
	strain.CreatedAt = now
	strain.UpdatedAt = now

	if err := s.repo.Create(strain); err != nil {
		return fmt.Errorf("failed to create strain: %w", err)
	}

	s.publish(EventListingCreated, map[string]interface{}{
		"strainId": strain.ID,
		"sellerId": strain.SellerID,
		"name":     strain.Name,
		"category": strain.Category,
	})
	return nil
}

// UpdateStrain merges the partial payload onto the stored listing and
// stamps the modification time. ID, owner, and creation time are preserved.
func (s *StrainService) UpdateStrain(id int, update models.StrainUpdate) (*models.Strain, error) {
	strain, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	update.ApplyTo(strain)
	strain.ID = id
	strain.UpdatedAt = time.Now()

	if err := s.repo.Update(strain); err != nil {
		return nil, fmt.Errorf("failed to update strain %d: %w", id, err)
	}
	return strain, nil
}

// DeleteStrain removes a listing and publishes a listing.deleted event.
func (s *StrainService) DeleteStrain(id int) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.publish(EventListingDeleted, map[string]interface{}{"strainId": id})
	return nil
}

// FilterStrains applies the browse filters over the active listings. The
// filtering deliberately happens here, against GetActiveStrains, rather
// than inside the repository.
func (s *StrainService) FilterStrains(filter StrainFilter) ([]models.Strain, error) {
	strains, err := s.repo.GetActive()
	if err != nil {
		return nil, err
	}

	minPrice, maxPrice := 0.0, math.Inf(1)
	if filter.PriceRange != "" {
		minPrice, maxPrice, err = parsePriceBand(filter.PriceRange)
		if err != nil {
			return nil, err
		}
	}

	term := strings.ToLower(filter.Term)
	category := strings.ToLower(filter.Category)

	var matched []models.Strain
	for _, strain := range strains {
		if category != "" && category != "all" && strings.ToLower(strain.Category) != category {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(strain.Name), term) &&
			!strings.Contains(strings.ToLower(strain.Description), term) {
			continue
		}
		if strain.Price < minPrice || strain.Price > maxPrice {
			continue
		}
		matched = append(matched, strain)
	}
	return matched, nil
}

// parsePriceBand parses "min-max" or "min+" into inclusive bounds.
func parsePriceBand(band string) (float64, float64, error) {
	if strings.HasSuffix(band, "+") {
		min, err := strconv.ParseFloat(strings.TrimSuffix(band, "+"), 64)
		if err != nil {
			return 0, 0, fmt.Errorf("price range %q: %w", band, models.ErrIncompleteForm)
		}
		return min, math.Inf(1), nil
	}

	parts := strings.SplitN(band, "-", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("price range %q: %w", band, models.ErrIncompleteForm)
	}
	min, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("price range %q: %w", band, models.ErrIncompleteForm)
	}
	max, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("price range %q: %w", band, models.ErrIncompleteForm)
	}
	return min, max, nil
}

func (s *StrainService) publish(name string, payload map[string]interface{}) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishEvent(name, payload); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", name, err)
	}
}

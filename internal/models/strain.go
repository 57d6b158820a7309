package models

import "time"

// Strain categories form a closed set. Unrecognized values get the default
// display treatment rather than an error.
const (
	CategorySativa = "sativa"
	CategoryIndica = "indica"
	CategoryHybrid = "hybrid"
	CategoryExotic = "exotic"
)

// Strain represents a seller's listing in the catalog.
type Strain struct {
	ID          int       `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" validate:"required,min=2,max=100"`
	Category    string    `json:"category" validate:"required,oneof=sativa indica hybrid exotic"`
	Price       float64   `json:"price" validate:"required,gt=0"`
	THCLevel    float64   `json:"thcLevel" validate:"gte=0"`
	CBDLevel    float64   `json:"cbdLevel" validate:"gte=0"`
	Description string    `json:"description" validate:"omitempty,max=1000"`
	Effects     []string  `json:"effects" gorm:"serializer:json"`
	Images      []string  `json:"images" gorm:"serializer:json" validate:"max=3"`
	SellerID    int       `json:"sellerId"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// DisplayTHC clamps the THC percentage to [0,100] for progress-bar style
// rendering. The stored value is left as-is.
func (s *Strain) DisplayTHC() float64 { return clampPercent(s.THCLevel) }

// DisplayCBD clamps the CBD percentage to [0,100] for display.
func (s *Strain) DisplayCBD() float64 { return clampPercent(s.CBDLevel) }

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// BadgeVariant maps a category to its visual treatment. Unknown categories
// fall back to the default badge.
func BadgeVariant(category string) string {
	switch category {
	case CategorySativa:
		return "sativa"
	case CategoryIndica:
		return "indica"
	case CategoryHybrid:
		return "hybrid"
	case CategoryExotic:
		return "exotic"
	default:
		return "default"
	}
}

// StrainUpdate is a partial update payload for a listing. Nil fields are
// left untouched; ID, SellerID, and CreatedAt are never overwritten.
type StrainUpdate struct {
	Name        *string   `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Category    *string   `json:"category,omitempty" validate:"omitempty,oneof=sativa indica hybrid exotic"`
	Price       *float64  `json:"price,omitempty" validate:"omitempty,gt=0"`
	THCLevel    *float64  `json:"thcLevel,omitempty" validate:"omitempty,gte=0"`
	CBDLevel    *float64  `json:"cbdLevel,omitempty" validate:"omitempty,gte=0"`
	Description *string   `json:"description,omitempty" validate:"omitempty,max=1000"`
	Effects     *[]string `json:"effects,omitempty"`
	Images      *[]string `json:"images,omitempty" validate:"omitempty,max=3"`
	Active      *bool     `json:"active,omitempty"`
}

// ApplyTo merges the non-nil fields onto the given strain.
func (p StrainUpdate) ApplyTo(s *Strain) {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Category != nil {
		s.Category = *p.Category
	}
	if p.Price != nil {
		s.Price = *p.Price
	}
	if p.THCLevel != nil {
		s.THCLevel = *p.THCLevel
	}
	if p.CBDLevel != nil {
		s.CBDLevel = *p.CBDLevel
	}
	if p.Description != nil {
		s.Description = *p.Description
	}
	if p.Effects != nil {
		s.Effects = *p.Effects
	}
	if p.Images != nil {
		s.Images = *p.Images
	}
	if p.Active != nil {
		s.Active = *p.Active
	}
}

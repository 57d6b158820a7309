package models

import "time"

// Subscription statuses.
const (
	SubscriptionActive  = "active"
	SubscriptionExpired = "expired"
)

// Subscription tracks a seller's dashboard subscription.
type Subscription struct {
	ID            int       `json:"id" gorm:"primaryKey"`
	SellerID      int       `json:"sellerId" gorm:"index"`
	Plan          string    `json:"plan"`
	Status        string    `json:"status"`
	DaysRemaining int       `json:"daysRemaining"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// SubscriptionUpdate is a partial update payload for a seller subscription.
type SubscriptionUpdate struct {
	Plan          *string `json:"plan,omitempty"`
	Status        *string `json:"status,omitempty"`
	DaysRemaining *int    `json:"daysRemaining,omitempty"`
}

// ApplyTo merges the non-nil fields onto the given subscription.
func (p SubscriptionUpdate) ApplyTo(s *Subscription) {
	if p.Plan != nil {
		s.Plan = *p.Plan
	}
	if p.Status != nil {
		s.Status = *p.Status
	}
	if p.DaysRemaining != nil {
		s.DaysRemaining = *p.DaysRemaining
	}
}

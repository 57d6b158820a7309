package repositories

import "leafmarket/internal/models"

// SubscriptionRepository defines the interface for seller subscription data
// access. A seller has at most one subscription record.
type SubscriptionRepository interface {
	GetBySeller(sellerID int) (*models.Subscription, error)
	Create(sub *models.Subscription) error
	Update(sub *models.Subscription) error
}

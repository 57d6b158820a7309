package repositories

import (
	"fmt"
	"sync"

	"leafmarket/internal/models"
)

// MockSubscriptionRepository is an in-memory implementation of
// SubscriptionRepository.
type MockSubscriptionRepository struct {
	subs map[int]models.Subscription // keyed by subscription ID
	mu   sync.RWMutex
}

// NewMockSubscriptionRepository creates a new instance of
// MockSubscriptionRepository.
func NewMockSubscriptionRepository() *MockSubscriptionRepository {
	return &MockSubscriptionRepository{
		subs: make(map[int]models.Subscription),
	}
}

// GetBySeller returns the seller's subscription record, if any.
func (r *MockSubscriptionRepository) GetBySeller(sellerID int) (*models.Subscription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, sub := range r.subs {
		if sub.SellerID == sellerID {
			s := sub
			return &s, nil
		}
	}
	return nil, fmt.Errorf("seller %d: %w", sellerID, models.ErrSubscriptionNotFound)
}

// Create adds a subscription record, assigning the next integer ID when
// none is set.
func (r *MockSubscriptionRepository) Create(sub *models.Subscription) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if sub.ID == 0 {
		max := 0
		for id := range r.subs {
			if id > max {
				max = id
			}
		}
		sub.ID = max + 1
	}
	r.subs[sub.ID] = *sub
	return nil
}

// Update modifies an existing subscription record.
func (r *MockSubscriptionRepository) Update(sub *models.Subscription) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.subs[sub.ID]; !ok {
		return fmt.Errorf("subscription %d: %w", sub.ID, models.ErrSubscriptionNotFound)
	}
	r.subs[sub.ID] = *sub
	return nil
}

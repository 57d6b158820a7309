package services

import (
	"errors"
	"fmt"
	"time"

	"leafmarket/internal/models"
	"leafmarket/internal/repositories"
)

// SubscriptionService handles seller dashboard subscriptions.
type SubscriptionService struct {
	repo repositories.SubscriptionRepository
}

// NewSubscriptionService creates a new SubscriptionService.
func NewSubscriptionService(repo repositories.SubscriptionRepository) *SubscriptionService {
	return &SubscriptionService{
		repo: repo,
	}
}

// GetSellerSubscription returns the seller's subscription. A seller without
// a record gets an expired placeholder rather than an error.
func (s *SubscriptionService) GetSellerSubscription(sellerID int) (*models.Subscription, error) {
	sub, err := s.repo.GetBySeller(sellerID)
	if err != nil {
		if errors.Is(err, models.ErrSubscriptionNotFound) {
			return &models.Subscription{
				SellerID:      sellerID,
				Status:        models.SubscriptionExpired,
				Plan:          "none",
				DaysRemaining: 0,
			}, nil
		}
		return nil, err
	}
	return sub, nil
}

// UpdateSubscription upserts the seller's subscription: merge when a record
// exists, create otherwise. Either way the modification time is stamped.
func (s *SubscriptionService) UpdateSubscription(sellerID int, update models.SubscriptionUpdate) (*models.Subscription, error) {
	sub, err := s.repo.GetBySeller(sellerID)
	if err != nil {
		if !errors.Is(err, models.ErrSubscriptionNotFound) {
			return nil, err
		}
		sub = &models.Subscription{SellerID: sellerID}
		update.ApplyTo(sub)
		sub.UpdatedAt = time.Now()
		if err := s.repo.Create(sub); err != nil {
			return nil, fmt.Errorf("failed to create subscription for seller %d: %w", sellerID, err)
		}
		return sub, nil
	}

	update.ApplyTo(sub)
	sub.UpdatedAt = time.Now()
	if err := s.repo.Update(sub); err != nil {
		return nil, fmt.Errorf("failed to update subscription for seller %d: %w", sellerID, err)
	}
	return sub, nil
}

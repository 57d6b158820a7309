package services

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"leafmarket/internal/models"
	"leafmarket/internal/repositories"
)

// MembershipService handles the tier catalog, upgrades, and the simulated
// payment flow. The payment failure probability is injected so tests can
// pin the outcome (0 never fails, 1 always fails).
type MembershipService struct {
	userRepo        repositories.UserRepository
	events          EventPublisher
	paymentFailRate float64
}

// NewMembershipService creates a new MembershipService.
func NewMembershipService(userRepo repositories.UserRepository, events EventPublisher, paymentFailRate float64) *MembershipService {
	return &MembershipService{
		userRepo:        userRepo,
		events:          events,
		paymentFailRate: paymentFailRate,
	}
}

// MembershipInfo bundles a user with their current tier.
type MembershipInfo struct {
	User        models.User            `json:"user"`
	CurrentTier *models.MembershipTier `json:"currentTier"`
	JoinDate    string                 `json:"joinDate"`
	CanUpgrade  bool                   `json:"canUpgrade"`
}

// PaymentResult is the receipt of a successful simulated payment.
type PaymentResult struct {
	TransactionID string    `json:"transactionId"`
	Amount        float64   `json:"amount"`
	Currency      string    `json:"currency"`
	Timestamp     time.Time `json:"timestamp"`
}

// MembershipStats summarizes tier distribution across all users.
type MembershipStats struct {
	TotalMembers     int            `json:"totalMembers"`
	TierDistribution map[string]int `json:"tierDistribution"`
	ActiveMembers    int            `json:"activeMembers"`
}

// GetAllTiers returns the static tier catalog.
func (s *MembershipService) GetAllTiers() []models.MembershipTier {
	return models.MembershipTiers()
}

// GetUserMembership returns the user's current tier and whether a higher
// one exists.
func (s *MembershipService) GetUserMembership(userID int) (*MembershipInfo, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	tier, err := models.TierByName(user.MembershipTier)
	if err != nil {
		return nil, fmt.Errorf("user %d tier %q: %w", userID, user.MembershipTier, err)
	}

	return &MembershipInfo{
		User:        user.Sanitized(),
		CurrentTier: tier,
		JoinDate:    user.JoinDate,
		CanUpgrade:  tier.Name != models.TierPremium,
	}, nil
}

// checkUpgrade rejects moves to the same or a lower tier.
func checkUpgrade(user *models.User, target *models.MembershipTier) error {
	currentRank := models.TierRank(user.MembershipTier)
	targetRank := models.TierRank(target.Name)
	if targetRank == currentRank {
		return models.ErrSameTier
	}
	if targetRank < currentRank {
		return models.ErrDowngradeNotAllowed
	}
	return nil
}

// UpgradeMembership moves the user to a strictly higher tier. Requests for
// the same or a lower tier are rejected, never silently ignored.
func (s *MembershipService) UpgradeMembership(userID int, targetTier string) (*models.User, error) {
	target, err := models.TierByName(targetTier)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	if err := checkUpgrade(user, target); err != nil {
		return nil, err
	}

	user.MembershipTier = target.Name
	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to upgrade membership for user %d: %w", userID, err)
	}

	if s.events != nil {
		payload := map[string]interface{}{
			"userId": userID,
			"tier":   target.Name,
		}
		if err := s.events.PublishEvent(EventMembershipUpgraded, payload); err != nil {
			log.Printf("Warning: failed to publish %s event: %v", EventMembershipUpgraded, err)
		}
	}

	upgraded := user.Sanitized()
	return &upgraded, nil
}

// PurchaseUpgrade validates the tier change, runs the simulated charge for
// paid tiers, then applies the upgrade. A payment failure leaves the
// membership unchanged; the caller may retry.
func (s *MembershipService) PurchaseUpgrade(userID int, tierName string) (*models.User, *PaymentResult, error) {
	target, err := models.TierByName(tierName)
	if err != nil {
		return nil, nil, err
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, nil, err
	}
	if err := checkUpgrade(user, target); err != nil {
		return nil, nil, err
	}

	var payment *PaymentResult
	if target.Price > 0 {
		payment, err = s.ProcessPayment(userID, tierName)
		if err != nil {
			return nil, nil, err
		}
	}

	upgraded, err := s.UpgradeMembership(userID, tierName)
	if err != nil {
		return nil, nil, err
	}
	return upgraded, payment, nil
}

// ProcessPayment runs the simulated charge for a tier. The outcome is drawn
// against the injected failure probability; failures are transient and the
// caller may retry.
func (s *MembershipService) ProcessPayment(userID int, tierName string) (*PaymentResult, error) {
	tier, err := models.TierByName(tierName)
	if err != nil {
		return nil, err
	}

	if _, err := s.userRepo.GetByID(userID); err != nil {
		return nil, err
	}

	if rand.Float64() < s.paymentFailRate {
		return nil, models.ErrPaymentFailed
	}

	return &PaymentResult{
		TransactionID: "txn_" + uuid.New().String(),
		Amount:        tier.Price,
		Currency:      "USD",
		Timestamp:     time.Now(),
	}, nil
}

// GetMembershipStats tallies users per tier.
func (s *MembershipService) GetMembershipStats() (*MembershipStats, error) {
	users, err := s.userRepo.GetAll()
	if err != nil {
		return nil, err
	}

	stats := &MembershipStats{
		TotalMembers:     len(users),
		TierDistribution: make(map[string]int),
	}
	for _, tier := range models.MembershipTiers() {
		stats.TierDistribution[tier.Name] = 0
	}
	for _, u := range users {
		stats.TierDistribution[u.MembershipTier]++
		if u.IsActive {
			stats.ActiveMembers++
		}
	}
	return stats, nil
}

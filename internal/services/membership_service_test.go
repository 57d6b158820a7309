package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"leafmarket/internal/models"
	"leafmarket/internal/repositories"
	"leafmarket/internal/services"
)

func seedMember(t *testing.T, repo *repositories.MockUserRepository, tier string) int {
	t.Helper()
	user := models.User{
		Email: "member@example.com", Password: "hashed", FirstName: "Mem", LastName: "Ber",
		Role: models.RoleUser, MembershipTier: tier, IsActive: true, JoinDate: "2024-01-01",
	}
	assert.NoError(t, repo.Create(&user))
	return user.ID
}

func TestMembershipService_TierCatalog(t *testing.T) {
	service := services.NewMembershipService(repositories.NewMockUserRepository(), nil, 0)

	tiers := service.GetAllTiers()
	assert.Len(t, tiers, 3)
	assert.Equal(t, models.TierBasic, tiers[0].Name)
	assert.Equal(t, models.TierPro, tiers[1].Name)
	assert.Equal(t, models.TierPremium, tiers[2].Name)
	assert.True(t, tiers[1].IsPopular)
	assert.Zero(t, tiers[0].Price)
}

func TestMembershipService_UpgradePath(t *testing.T) {
	repo := repositories.NewMockUserRepository()
	service := services.NewMembershipService(repo, nil, 0)
	id := seedMember(t, repo, models.TierBasic)

	// Basic -> Pro succeeds.
	user, err := service.UpgradeMembership(id, models.TierPro)
	assert.NoError(t, err)
	assert.Equal(t, models.TierPro, user.MembershipTier)
	assert.Empty(t, user.Password)

	// Pro -> Basic is rejected, not silently ignored.
	_, err = service.UpgradeMembership(id, models.TierBasic)
	assert.ErrorIs(t, err, models.ErrDowngradeNotAllowed)

	// Pro -> Pro is rejected too.
	_, err = service.UpgradeMembership(id, models.TierPro)
	assert.ErrorIs(t, err, models.ErrSameTier)

	// The stored tier is untouched by the rejected requests.
	stored, err := repo.GetByID(id)
	assert.NoError(t, err)
	assert.Equal(t, models.TierPro, stored.MembershipTier)

	// Unknown tier.
	_, err = service.UpgradeMembership(id, "Platinum")
	assert.ErrorIs(t, err, models.ErrTierNotFound)
}

func TestMembershipService_PaymentOutcomeIsInjected(t *testing.T) {
	repo := repositories.NewMockUserRepository()
	id := seedMember(t, repo, models.TierBasic)

	// Failure rate 0: the charge always succeeds.
	always := services.NewMembershipService(repo, nil, 0)
	result, err := always.ProcessPayment(id, models.TierPro)
	assert.NoError(t, err)
	assert.Contains(t, result.TransactionID, "txn_")
	assert.Equal(t, 29.99, result.Amount)
	assert.Equal(t, "USD", result.Currency)

	// Failure rate 1: the charge always fails, transiently.
	never := services.NewMembershipService(repo, nil, 1)
	_, err = never.ProcessPayment(id, models.TierPro)
	assert.ErrorIs(t, err, models.ErrPaymentFailed)
}

func TestMembershipService_PurchaseUpgrade(t *testing.T) {
	repo := repositories.NewMockUserRepository()
	id := seedMember(t, repo, models.TierBasic)

	// A failed charge leaves the membership unchanged.
	failing := services.NewMembershipService(repo, nil, 1)
	_, _, err := failing.PurchaseUpgrade(id, models.TierPro)
	assert.ErrorIs(t, err, models.ErrPaymentFailed)

	stored, err := repo.GetByID(id)
	assert.NoError(t, err)
	assert.Equal(t, models.TierBasic, stored.MembershipTier)

	// A downgrade request is rejected before any charge is attempted.
	service := services.NewMembershipService(repo, nil, 0)
	_, _, err = service.PurchaseUpgrade(id, models.TierPremium)
	assert.NoError(t, err)
	_, _, err = service.PurchaseUpgrade(id, models.TierPro)
	assert.ErrorIs(t, err, models.ErrDowngradeNotAllowed)
}

func TestMembershipService_GetUserMembership(t *testing.T) {
	repo := repositories.NewMockUserRepository()
	service := services.NewMembershipService(repo, nil, 0)
	id := seedMember(t, repo, models.TierPro)

	info, err := service.GetUserMembership(id)
	assert.NoError(t, err)
	assert.Equal(t, models.TierPro, info.CurrentTier.Name)
	assert.True(t, info.CanUpgrade)
	assert.Empty(t, info.User.Password)

	_, err = service.UpgradeMembership(id, models.TierPremium)
	assert.NoError(t, err)

	info, err = service.GetUserMembership(id)
	assert.NoError(t, err)
	assert.False(t, info.CanUpgrade)
}

func TestMembershipService_Stats(t *testing.T) {
	repo := repositories.NewMockUserRepository()
	service := services.NewMembershipService(repo, nil, 0)

	users := []models.User{
		{Email: "a@example.com", Password: "x", MembershipTier: models.TierBasic, IsActive: true},
		{Email: "b@example.com", Password: "x", MembershipTier: models.TierBasic, IsActive: false},
		{Email: "c@example.com", Password: "x", MembershipTier: models.TierPremium, IsActive: true},
	}
	for i := range users {
		assert.NoError(t, repo.Create(&users[i]))
	}

	stats, err := service.GetMembershipStats()
	assert.NoError(t, err)
	assert.Equal(t, 3, stats.TotalMembers)
	assert.Equal(t, 2, stats.ActiveMembers)
	assert.Equal(t, 2, stats.TierDistribution[models.TierBasic])
	assert.Equal(t, 0, stats.TierDistribution[models.TierPro])
	assert.Equal(t, 1, stats.TierDistribution[models.TierPremium])
}

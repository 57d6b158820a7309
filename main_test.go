package main

import (
	"io"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"leafmarket/internal/models"
	"leafmarket/internal/repositories"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func TestSeedFixtures(t *testing.T) {
	userRepo := repositories.NewMockUserRepository()
	strainRepo := repositories.NewMockStrainRepository()
	subscriptionRepo := repositories.NewMockSubscriptionRepository()

	seedFixtures(userRepo, strainRepo, subscriptionRepo)

	users, err := userRepo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, users, 3)

	admin, err := userRepo.GetByEmail("admin@leafmarket.test")
	assert.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.Equal(t, models.TierPremium, admin.MembershipTier)

	// Seed passwords are stored hashed, never verbatim.
	assert.NotEqual(t, "admin123", admin.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte("admin123")))

	seller, err := userRepo.GetByEmail("seller@leafmarket.test")
	assert.NoError(t, err)
	assert.Equal(t, models.RoleSeller, seller.Role)

	// All sample listings belong to the seed seller, and only the active
	// ones are browsable.
	all, err := strainRepo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, all, 4)
	for _, s := range all {
		assert.Equal(t, seller.ID, s.SellerID)
	}

	active, err := strainRepo.GetActive()
	assert.NoError(t, err)
	assert.Len(t, active, 3)

	sub, err := subscriptionRepo.GetBySeller(seller.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.SubscriptionActive, sub.Status)
}

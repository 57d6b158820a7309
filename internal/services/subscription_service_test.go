package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"leafmarket/internal/models"
	"leafmarket/internal/repositories"
	"leafmarket/internal/services"
)

func TestSubscriptionService_AbsentRecordIsExpiredPlaceholder(t *testing.T) {
	service := services.NewSubscriptionService(repositories.NewMockSubscriptionRepository())

	sub, err := service.GetSellerSubscription(42)

	assert.NoError(t, err)
	assert.Equal(t, 42, sub.SellerID)
	assert.Equal(t, models.SubscriptionExpired, sub.Status)
	assert.Equal(t, "none", sub.Plan)
	assert.Equal(t, 0, sub.DaysRemaining)
}

func TestSubscriptionService_UpdateCreatesThenMerges(t *testing.T) {
	service := services.NewSubscriptionService(repositories.NewMockSubscriptionRepository())

	plan := "pro-monthly"
	status := models.SubscriptionActive
	days := 30
	created, err := service.UpdateSubscription(7, models.SubscriptionUpdate{
		Plan: &plan, Status: &status, DaysRemaining: &days,
	})
	assert.NoError(t, err)
	assert.Equal(t, 7, created.SellerID)
	assert.Equal(t, models.SubscriptionActive, created.Status)
	assert.False(t, created.UpdatedAt.IsZero())

	// A partial update merges into the existing record.
	fewer := 5
	merged, err := service.UpdateSubscription(7, models.SubscriptionUpdate{DaysRemaining: &fewer})
	assert.NoError(t, err)
	assert.Equal(t, created.ID, merged.ID)
	assert.Equal(t, "pro-monthly", merged.Plan)
	assert.Equal(t, 5, merged.DaysRemaining)

	stored, err := service.GetSellerSubscription(7)
	assert.NoError(t, err)
	assert.Equal(t, 5, stored.DaysRemaining)
}

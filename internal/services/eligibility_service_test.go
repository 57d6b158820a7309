package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"leafmarket/internal/models"
	"leafmarket/internal/repositories"
	"leafmarket/internal/services"
)

func TestAgeAt(t *testing.T) {
	date := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name  string
		birth time.Time
		now   time.Time
		want  int
	}{
		{"birthday today", date(2005, 8, 28), date(2026, 8, 28), 21},
		{"day before birthday", date(2005, 8, 29), date(2026, 8, 28), 20},
		{"day after birthday", date(2005, 8, 27), date(2026, 8, 28), 21},
		{"earlier month", date(2005, 3, 1), date(2026, 8, 28), 21},
		{"later month", date(2005, 12, 31), date(2026, 8, 28), 20},
		{"leap day birth, non-leap Feb 28", date(2004, 2, 29), date(2025, 2, 28), 20},
		{"leap day birth, non-leap Mar 1", date(2004, 2, 29), date(2025, 3, 1), 21},
		{"leap day birth, leap year birthday", date(2004, 2, 29), date(2028, 2, 29), 24},
		{"year boundary", date(2005, 1, 1), date(2026, 12, 31), 21},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, services.AgeAt(tt.birth, tt.now))
		})
	}
}

func TestEligibilityService_Verify_ExactTwentyFirstBirthday(t *testing.T) {
	store := repositories.NewMockSessionStore()
	service := services.NewEligibilityService(store)

	// Boundary-inclusive: turning 21 today passes.
	birth := time.Now().AddDate(-21, 0, 0)
	session, token, err := service.Verify(birth, "California")

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, 21, session.AgeAtVerification)
	assert.Equal(t, "California", session.Jurisdiction)
	assert.WithinDuration(t, time.Now(), session.VerifiedAt, time.Minute)
}

func TestEligibilityService_Verify_OneDayUnderThreshold(t *testing.T) {
	store := repositories.NewMockSessionStore()
	service := services.NewEligibilityService(store)

	birth := time.Now().AddDate(-21, 0, 1)
	session, token, err := service.Verify(birth, "California")

	assert.ErrorIs(t, err, models.ErrUnderage)
	assert.Nil(t, session)
	assert.Empty(t, token)
}

func TestEligibilityService_Verify_JurisdictionNotAllowed(t *testing.T) {
	store := repositories.NewMockSessionStore()
	service := services.NewEligibilityService(store)

	// Age passes, jurisdiction does not.
	birth := time.Now().AddDate(-25, 0, 0)
	_, _, err := service.Verify(birth, "Texas")
	assert.ErrorIs(t, err, models.ErrStateNotLegal)

	_, _, err = service.Verify(birth, "")
	assert.ErrorIs(t, err, models.ErrIncompleteForm)
}

func TestEligibilityService_Verify_MissingAndFutureBirthDate(t *testing.T) {
	store := repositories.NewMockSessionStore()
	service := services.NewEligibilityService(store)

	_, _, err := service.Verify(time.Time{}, "California")
	assert.ErrorIs(t, err, models.ErrIncompleteForm)

	_, _, err = service.Verify(time.Now().AddDate(0, 0, 1), "California")
	assert.ErrorIs(t, err, models.ErrInvalidBirthDate)
}

func TestEligibilityService_SessionRoundTrip(t *testing.T) {
	store := repositories.NewMockSessionStore()
	service := services.NewEligibilityService(store)

	birth := time.Now().AddDate(-30, 0, 0)
	created, token, err := service.Verify(birth, "Oregon")
	assert.NoError(t, err)

	read, err := service.Check(token)
	assert.NoError(t, err)
	assert.Equal(t, created.Jurisdiction, read.Jurisdiction)
	assert.Equal(t, created.AgeAtVerification, read.AgeAtVerification)
	assert.WithinDuration(t, created.VerifiedAt, read.VerifiedAt, time.Second)
}

func TestEligibilityService_ExpiredSessionReadsAsAbsent(t *testing.T) {
	store := repositories.NewMockSessionStore()
	service := services.NewEligibilityService(store)

	stale := &models.EligibilitySession{
		Jurisdiction:      "Nevada",
		AgeAtVerification: 30,
		VerifiedAt:        time.Now().Add(-25 * time.Hour),
	}
	assert.NoError(t, store.Write("stale-key", stale))

	_, err := service.Check("stale-key")
	assert.ErrorIs(t, err, models.ErrSessionNotFound)

	// The record is gone on a subsequent read, not just filtered.
	_, err = store.Read("stale-key")
	assert.ErrorIs(t, err, models.ErrSessionNotFound)
}

func TestEligibilityService_ReverificationReplacesSession(t *testing.T) {
	store := repositories.NewMockSessionStore()
	service := services.NewEligibilityService(store)

	birth := time.Now().AddDate(-40, 0, 0)
	_, firstToken, err := service.Verify(birth, "Maine")
	assert.NoError(t, err)

	_, secondToken, err := service.Verify(birth, "Vermont")
	assert.NoError(t, err)
	assert.NotEqual(t, firstToken, secondToken)

	session, err := service.Check(secondToken)
	assert.NoError(t, err)
	assert.Equal(t, "Vermont", session.Jurisdiction)
}

func TestEligibilityService_CheckAndRevoke(t *testing.T) {
	store := repositories.NewMockSessionStore()
	service := services.NewEligibilityService(store)

	_, err := service.Check("")
	assert.ErrorIs(t, err, models.ErrSessionNotFound)

	birth := time.Now().AddDate(-22, 0, 0)
	_, token, err := service.Verify(birth, "Illinois")
	assert.NoError(t, err)

	assert.NoError(t, service.Revoke(token))
	_, err = service.Check(token)
	assert.ErrorIs(t, err, models.ErrSessionNotFound)
}

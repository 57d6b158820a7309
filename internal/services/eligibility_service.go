package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"leafmarket/internal/models"
	"leafmarket/internal/repositories"
)

// MinimumAge is the age threshold for marketplace access. A visitor whose
// 21st birthday is today is eligible.
const MinimumAge = 21

// EligibilityService decides whether a visitor may view marketplace content
// from two self-reported facts: birth date and declared jurisdiction. The
// service holds no state of its own; the outcome lives in the session store.
type EligibilityService struct {
	sessions repositories.SessionStore
}

// NewEligibilityService creates a new EligibilityService.
func NewEligibilityService(sessions repositories.SessionStore) *EligibilityService {
	return &EligibilityService{
		sessions: sessions,
	}
}

// Verify checks the birth date and jurisdiction against the access rules.
// On success it writes a fresh session to the store and returns it along
// with its opaque key. Failures mutate nothing.
func (s *EligibilityService) Verify(birthDate time.Time, jurisdiction string) (*models.EligibilitySession, string, error) {
	now := time.Now()

	if birthDate.IsZero() || jurisdiction == "" {
		return nil, "", models.ErrIncompleteForm
	}
	if birthDate.After(now) {
		return nil, "", models.ErrInvalidBirthDate
	}

	age := AgeAt(birthDate, now)
	if age < MinimumAge {
		return nil, "", models.ErrUnderage
	}
	if !models.IsLegalState(jurisdiction) {
		return nil, "", models.ErrStateNotLegal
	}

	session := &models.EligibilitySession{
		Jurisdiction:      jurisdiction,
		AgeAtVerification: age,
		VerifiedAt:        now,
	}
	key := uuid.New().String()
	if err := s.sessions.Write(key, session); err != nil {
		return nil, "", fmt.Errorf("failed to persist eligibility session: %w", err)
	}
	return session, key, nil
}

// Check returns the session stored under the key if it is still valid.
// Expiry and corrupt-record cleanup happen inside the store's read.
func (s *EligibilityService) Check(key string) (*models.EligibilitySession, error) {
	if key == "" {
		return nil, models.ErrSessionNotFound
	}
	return s.sessions.Read(key)
}

// Revoke discards the session stored under the key.
func (s *EligibilityService) Revoke(key string) error {
	if key == "" {
		return nil
	}
	return s.sessions.Clear(key)
}

// AgeAt computes whole years between birth and now using exact month/day
// comparison: if the current month/day precedes the birth month/day, the
// naive year difference is reduced by one. This keeps Feb 29 births correct
// in non-leap years.
func AgeAt(birth, now time.Time) int {
	years := now.Year() - birth.Year()
	if now.Month() < birth.Month() ||
		(now.Month() == birth.Month() && now.Day() < birth.Day()) {
		years--
	}
	return years
}

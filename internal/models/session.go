package models

import "time"

// SessionTTL is the validity window of an eligibility session. A session
// past the window is treated as absent, never partially honored.
const SessionTTL = 24 * time.Hour

// LegalStates is the jurisdiction allow-list. Both the eligibility gate and
// registration validation read from this single list so the two call sites
// cannot drift apart.
var LegalStates = []string{
	"California", "Colorado", "Connecticut", "Delaware", "Illinois", "Maine",
	"Massachusetts", "Michigan", "Nevada", "New Jersey", "New Mexico",
	"New York", "Oregon", "Rhode Island", "Vermont", "Virginia", "Washington",
}

// IsLegalState reports whether the jurisdiction is on the allow-list.
func IsLegalState(state string) bool {
	for _, s := range LegalStates {
		if s == state {
			return true
		}
	}
	return false
}

// EligibilitySession is the verified age/jurisdiction claim. It is created
// once at verification time and never mutated; re-verification replaces it.
type EligibilitySession struct {
	Jurisdiction      string    `json:"jurisdiction"`
	AgeAtVerification int       `json:"ageAtVerification"`
	VerifiedAt        time.Time `json:"verifiedAt"`
}

// Expired reports whether the session has aged out of its validity window.
func (s *EligibilitySession) Expired(now time.Time) bool {
	return now.Sub(s.VerifiedAt) >= SessionTTL
}

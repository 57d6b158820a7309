package repositories

import "leafmarket/internal/models"

// SessionStore persists eligibility sessions keyed by an opaque token.
// Sessions are stored as serialized text; a record that fails to parse or
// has aged past its validity window is deleted on read and reported as
// absent, never surfaced as an error distinct from a missing session.
type SessionStore interface {
	// Write persists the session, fully replacing any prior one under the key.
	Write(key string, session *models.EligibilitySession) error
	// Read returns the session if present and still inside its validity
	// window. Expired or corrupt records are deleted and reported via
	// models.ErrSessionNotFound.
	Read(key string) (*models.EligibilitySession, error)
	// Clear explicitly deletes the persisted record.
	Clear(key string) error
}

package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"leafmarket/internal/models"
)

// SessionRecord is the persisted form of an eligibility session: an opaque
// key plus the serialized session payload.
type SessionRecord struct {
	Key     string `gorm:"primaryKey;column:session_key;type:varchar(64)"`
	Payload string `gorm:"type:text"`
}

// TableName keeps eligibility sessions namespaced away from other tables.
func (SessionRecord) TableName() string { return "eligibility_sessions" }

// GORMSessionStore is a GORM implementation of SessionStore.
type GORMSessionStore struct {
	db *gorm.DB
}

// NewGORMSessionStore creates a new instance of GORMSessionStore.
func NewGORMSessionStore(db *gorm.DB) *GORMSessionStore {
	return &GORMSessionStore{
		db: db,
	}
}

// Write persists the session, fully replacing any prior record under the key.
func (s *GORMSessionStore) Write(key string, session *models.EligibilitySession) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to serialize eligibility session: %w", err)
	}

	record := SessionRecord{Key: key, Payload: string(payload)}
	if err := s.db.Save(&record).Error; err != nil {
		return fmt.Errorf("failed to write eligibility session: %w", err)
	}
	return nil
}

// Read returns the session under the key if it is parseable and inside its
// validity window. Expired or malformed records are deleted here.
func (s *GORMSessionStore) Read(key string) (*models.EligibilitySession, error) {
	var record SessionRecord
	if err := s.db.First(&record, "session_key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to read eligibility session: %w", err)
	}

	var session models.EligibilitySession
	if err := json.Unmarshal([]byte(record.Payload), &session); err != nil {
		s.db.Delete(&SessionRecord{}, "session_key = ?", key)
		return nil, models.ErrSessionNotFound
	}

	if session.Expired(time.Now()) {
		s.db.Delete(&SessionRecord{}, "session_key = ?", key)
		return nil, models.ErrSessionNotFound
	}
	return &session, nil
}

// Clear deletes the persisted record. Clearing an absent key is not an error.
func (s *GORMSessionStore) Clear(key string) error {
	if err := s.db.Delete(&SessionRecord{}, "session_key = ?", key).Error; err != nil {
		return fmt.Errorf("failed to clear eligibility session: %w", err)
	}
	return nil
}

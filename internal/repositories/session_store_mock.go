package repositories

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"leafmarket/internal/models"
)

// MockSessionStore is an in-memory implementation of SessionStore. Payloads
// are kept as serialized JSON so the corrupt-record path behaves the same
// as a durable backend.
type MockSessionStore struct {
	entries map[string][]byte
	mu      sync.Mutex
}

// NewMockSessionStore creates a new instance of MockSessionStore.
func NewMockSessionStore() *MockSessionStore {
	return &MockSessionStore{
		entries: make(map[string][]byte),
	}
}

// Write persists the session, replacing any prior one under the key.
func (s *MockSessionStore) Write(key string, session *models.EligibilitySession) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to serialize eligibility session: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = payload
	return nil
}

// Read returns the session under the key if it is parseable and inside its
// validity window. Expired or malformed records are deleted here.
func (s *MockSessionStore) Read(key string) (*models.EligibilitySession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	payload, ok := s.entries[key]
	if !ok {
		return nil, models.ErrSessionNotFound
	}

	var session models.EligibilitySession
	if err := json.Unmarshal(payload, &session); err != nil {
		delete(s.entries, key)
		return nil, models.ErrSessionNotFound
	}

	if session.Expired(time.Now()) {
		delete(s.entries, key)
		return nil, models.ErrSessionNotFound
	}
	return &session, nil
}

// Clear deletes the persisted record. Clearing an absent key is not an error.
func (s *MockSessionStore) Clear(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}

package session

import (
	"sync"
	"time"

	"learninghub/models"
)

// Store is the pluggable backing store for sessions. A missing token is
// reported as a nil session, not an error; errors are reserved for storage
// failures.
type Store interface {
	Get(token string) (*models.Session, error)
	Save(s *models.Session) error
	Delete(token string) error
	DeleteExpired(before time.Time) error
}

// MemoryStore keeps sessions in an in-process map. Used for tests and
// single-node development; sessions do not survive a restart.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]models.Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]models.Session)}
}

func (m *MemoryStore) Get(token string) (*models.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[token]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (m *MemoryStore) Save(s *models.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[s.Token] = *s
	return nil
}

func (m *MemoryStore) Delete(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, token)
	return nil
}

func (m *MemoryStore) DeleteExpired(before time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for token, s := range m.sessions {
		if s.ExpiresAt.Before(before) {
			delete(m.sessions, token)
		}
	}
	return nil
}

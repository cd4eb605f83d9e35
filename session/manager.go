package session

import (
	"log"
	"time"

	"learninghub/models"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

// Manager owns the session lifecycle: an opaque uuid token maps to a
// server-side {user_id, username} record until logout or expiry. Handlers
// receive the Manager by injection; there is no package-level session state.
type Manager struct {
	store      Store
	cookieName string
	ttl        time.Duration
}

func NewManager(store Store, cookieName string, ttl time.Duration) *Manager {
	return &Manager{store: store, cookieName: cookieName, ttl: ttl}
}

// CookieName is the name of the cookie carrying the session token.
func (m *Manager) CookieName() string {
	return m.cookieName
}

// TTL is the lifetime of a newly created session.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Create starts a session for the user and returns the opaque token.
func (m *Manager) Create(userID uint, username string) (string, error) {
	s := &models.Session{
		Token:     uuid.NewString(),
		UserID:    userID,
		Username:  username,
		ExpiresAt: time.Now().Add(m.ttl),
	}
	if err := m.store.Save(s); err != nil {
		return "", err
	}
	return s.Token, nil
}

// Resolve returns the live session for a token, or nil when the token is
// empty, unknown or expired. Absence is a normal result, never an error;
// a storage failure is logged and treated as no session.
func (m *Manager) Resolve(token string) *models.Session {
	if token == "" {
		return nil
	}

	s, err := m.store.Get(token)
	if err != nil {
		log.Printf("Error resolving session: %v", err)
		return nil
	}
	if s == nil {
		return nil
	}

	if time.Now().After(s.ExpiresAt) {
		if err := m.store.Delete(token); err != nil {
			log.Printf("Error deleting expired session: %v", err)
		}
		return nil
	}

	return s
}

// Destroy ends a session. Destroying an absent session is not an error.
func (m *Manager) Destroy(token string) error {
	if token == "" {
		return nil
	}
	return m.store.Delete(token)
}

// StartSweeper schedules a periodic purge of expired sessions and returns
// the running cron so the caller can stop it on shutdown.
func (m *Manager) StartSweeper() *cron.Cron {
	c := cron.New()

	_, err := c.AddFunc("@every 10m", func() {
		if err := m.store.DeleteExpired(time.Now()); err != nil {
			log.Printf("[SESSION-SWEEPER] Error purging expired sessions: %v", err)
		}
	})
	if err != nil {
		log.Printf("[SESSION-SWEEPER] Failed to schedule sweep: %v", err)
		return c
	}

	c.Start()
	log.Println("[SESSION-SWEEPER] Started. Purging expired sessions every 10 minutes.")
	return c
}

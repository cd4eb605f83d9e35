package session

import (
	"testing"
	"time"

	"learninghub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestManagerLifecycle(t *testing.T) {
	mgr := NewManager(NewMemoryStore(), "test_session", time.Hour)

	token, err := mgr.Create(42, "alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	s := mgr.Resolve(token)
	require.NotNil(t, s)
	assert.Equal(t, uint(42), s.UserID)
	assert.Equal(t, "alice", s.Username)

	assert.Nil(t, mgr.Resolve(""), "empty token resolves to no session")
	assert.Nil(t, mgr.Resolve("no-such-token"), "unknown token resolves to no session")

	require.NoError(t, mgr.Destroy(token))
	assert.Nil(t, mgr.Resolve(token), "destroyed session no longer resolves")

	// Destroy is idempotent
	require.NoError(t, mgr.Destroy(token))
	require.NoError(t, mgr.Destroy(""))
}

func TestManagerExpiry(t *testing.T) {
	store := NewMemoryStore()
	mgr := NewManager(store, "test_session", -time.Second)

	token, err := mgr.Create(7, "bob")
	require.NoError(t, err)

	assert.Nil(t, mgr.Resolve(token), "expired session does not resolve")

	// Expired session is removed on resolution
	s, err := store.Get(token)
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestMemoryStoreDeleteExpired(t *testing.T) {
	store := NewMemoryStore()

	require.NoError(t, store.Save(&models.Session{Token: "old", UserID: 1, ExpiresAt: time.Now().Add(-time.Hour)}))
	require.NoError(t, store.Save(&models.Session{Token: "live", UserID: 2, ExpiresAt: time.Now().Add(time.Hour)}))

	require.NoError(t, store.DeleteExpired(time.Now()))

	s, err := store.Get("old")
	require.NoError(t, err)
	assert.Nil(t, s)

	s, err = store.Get("live")
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, uint(2), s.UserID)
}

func TestGormStore(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:gormstore?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Session{}))

	store := NewGormStore(db)

	require.NoError(t, store.Save(&models.Session{Token: "tok-1", UserID: 9, Username: "carol", ExpiresAt: time.Now().Add(time.Hour)}))

	s, err := store.Get("tok-1")
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, "carol", s.Username)

	s, err = store.Get("missing")
	require.NoError(t, err)
	assert.Nil(t, s, "missing token is not an error")

	require.NoError(t, store.Save(&models.Session{Token: "tok-2", UserID: 9, ExpiresAt: time.Now().Add(-time.Hour)}))
	require.NoError(t, store.DeleteExpired(time.Now()))

	s, err = store.Get("tok-2")
	require.NoError(t, err)
	assert.Nil(t, s)

	require.NoError(t, store.Delete("tok-1"))
	s, err = store.Get("tok-1")
	require.NoError(t, err)
	assert.Nil(t, s)
}

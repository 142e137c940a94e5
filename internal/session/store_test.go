package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacesedan/sentiview/internal/models"
)

func TestStoreSaveLoadClear(t *testing.T) {
	store := NewStoreAt(filepath.Join(t.TempDir(), "nested", "session.json"))

	user := models.User{ID: 7, Email: "ana@example.com", Name: "Ana García", Token: "jwt"}
	require.NoError(t, store.Save(user))

	loaded, found, err := store.Load()
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, user, loaded)

	require.NoError(t, store.Clear())
	_, found, err = store.Load()
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStoreLoadMissingFile(t *testing.T) {
	store := NewStoreAt(filepath.Join(t.TempDir(), "session.json"))

	user, found, err := store.Load()
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, models.User{}, user)
}

func TestStoreLoadCorruptFileStartsFresh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, found, err := NewStoreAt(path).Load()
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStoreClearMissingFile(t *testing.T) {
	store := NewStoreAt(filepath.Join(t.TempDir(), "session.json"))
	assert.NoError(t, store.Clear())
}

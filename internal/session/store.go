package session

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spacesedan/sentiview/internal/models"
)

const SESSION_FILE = "session.json"

// Store persists the authenticated user record across restarts, the
// terminal counterpart of the browser's single local-storage key.
// Demo sessions are never written.
type Store struct {
	path string
}

func NewStore() (*Store, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, err
	}
	return NewStoreAt(filepath.Join(dir, "sentiview", SESSION_FILE)), nil
}

func NewStoreAt(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Save(user models.User) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}

	data, err := json.Marshal(user)
	if err != nil {
		return err
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return err
	}

	slog.Info("[SessionStore] Saved user record",
		slog.String("email", user.Email))
	return nil
}

// Load returns the stored user record. A missing file is a normal
// unauthenticated start, not an error.
func (s *Store) Load() (models.User, bool, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return models.User{}, false, nil
		}
		return models.User{}, false, err
	}

	var user models.User
	if err := json.Unmarshal(data, &user); err != nil {
		slog.Warn("[SessionStore] Corrupt session file, starting fresh",
			slog.String("error", err.Error()))
		return models.User{}, false, nil
	}

	return user, true, nil
}

func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// Package session persists the sign-on state between client runs: the
// bearer token and the current user, held together under two fixed keys in
// one JSON file and always cleared together.
package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"usermgmt/internal/client"
)

// data mirrors the two fixed storage keys, "user_token" and "current_user".
type data struct {
	Token       string              `json:"user_token"`
	CurrentUser *client.SessionUser `json:"current_user,omitempty"`
}

type Store struct {
	path string
	mu   sync.Mutex
}

// DefaultPath resolves the session file location: USERMGMT_SESSION_FILE
// when set, else ~/.usermgmt/session.json.
func DefaultPath() string {
	if p := strings.TrimSpace(os.Getenv("USERMGMT_SESSION_FILE")); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "session.json"
	}
	return filepath.Join(home, ".usermgmt", "session.json")
}

func NewStore(path string) *Store {
	if path == "" {
		path = DefaultPath()
	}
	return &Store{path: path}
}

// Save writes the token and current user in one document.
func (s *Store) Save(token string, user client.SessionUser) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	raw, err := json.Marshal(data{Token: token, CurrentUser: &user})
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o600)
}

// Token returns the stored token, or "" when signed out. Corrupt stored
// state is treated as signed out and removed.
func (s *Store) Token() string {
	d, ok := s.load()
	if !ok {
		return ""
	}
	return d.Token
}

// CurrentUser returns the signed-on user when present.
func (s *Store) CurrentUser() (client.SessionUser, bool) {
	d, ok := s.load()
	if !ok || d.CurrentUser == nil {
		return client.SessionUser{}, false
	}
	return *d.CurrentUser, true
}

// Clear removes both keys at once (sign-out).
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remove()
}

func (s *Store) load() (data, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if err != nil {
		return data{}, false
	}
	var d data
	if err := json.Unmarshal(raw, &d); err != nil {
		// unparsable stored state invalidates the whole session
		_ = s.remove()
		return data{}, false
	}
	return d, true
}

func (s *Store) remove() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

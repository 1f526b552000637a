package client

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const (
	RealmUser  = "user"
	RealmAdmin = "admin"
)

// Session is one realm's persisted credential. RequiresPasswordChange
// is only ever set on the admin realm; keeping it next to the token is
// what lets the gate re-derive the pending-rotation state after a
// process restart instead of losing it with the login response.
type Session struct {
	Token                  string `json:"token"`
	RequiresPasswordChange bool   `json:"requires_password_change,omitempty"`
}

// SessionStore persists zero or one Session in a file. The two realms
// are two instances with distinct file names, so clearing one can never
// touch the other.
type SessionStore struct {
	path string
}

func NewSessionStore(dir, realm string) *SessionStore {
	return &SessionStore{path: filepath.Join(dir, realm+"_token.json")}
}

// Save persists the session. The parent directory is created on demand.
func (s *SessionStore) Save(session Session) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	encoded, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, encoded, 0o600)
}

// Load returns the stored session. Missing or unreadable storage reads
// as an empty session: the gate fails closed to Anonymous.
func (s *SessionStore) Load() Session {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return Session{}
	}
	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return Session{}
	}
	return session
}

// Token returns the stored token, or "" when absent.
func (s *SessionStore) Token() string {
	return s.Load().Token
}

// Clear removes the credential. Idempotent.
func (s *SessionStore) Clear() {
	_ = os.Remove(s.path)
}

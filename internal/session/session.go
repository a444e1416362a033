// Package session holds runtime state for the active controller.
package session

import (
	"crypto/subtle"
	"sync"
)

// Snapshot represents a read-only view of the current session state.
type Snapshot struct {
	Authenticated bool   `json:"authenticated"`
	InputEnabled  bool   `json:"inputEnabled"`
	Connection    string `json:"connection,omitempty"`
	Device        string `json:"device,omitempty"`
}

// Session holds runtime state for the active controller.
type Session struct {
	mu            sync.RWMutex
	password      string
	open          bool
	authenticated bool
	inputEnabled  bool
	connection    string
	device        string
}

// New returns an initialized session guarded by password.
func New(password string) *Session {
	return &Session{
		password:     password,
		inputEnabled: true,
	}
}

// NewOpen returns a session that never asks for a password.
func NewOpen() *Session {
	return &Session{
		open:          true,
		authenticated: true,
		inputEnabled:  true,
	}
}

// Authenticate validates the password and marks the session as authenticated.
func (s *Session) Authenticate(pass string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.open {
		return true
	}
	if pass != "" && subtle.ConstantTimeCompare([]byte(pass), []byte(s.password)) == 1 {
		s.authenticated = true
		return true
	}
	s.authenticated = false
	return false
}

// Logout clears authentication state.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.open {
		return
	}
	s.authenticated = false
}

// IsAuthenticated reports whether the session is authenticated.
func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

// SetInputEnabled toggles whether inputs are forwarded to the target.
func (s *Session) SetInputEnabled(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inputEnabled = enabled
}

// InputEnabled reports whether inputs are forwarded to the target.
func (s *Session) InputEnabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inputEnabled
}

// Attach records the active input connection and the device it drives.
func (s *Session) Attach(connID, device string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.connection = connID
	s.device = device
}

// Detach clears the active connection when connID is still the current one.
func (s *Session) Detach(connID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.connection != connID {
		return
	}
	s.connection = ""
	s.device = ""
}

// Snapshot returns a copy of the current session state.
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Authenticated: s.authenticated,
		InputEnabled:  s.inputEnabled,
		Connection:    s.connection,
		Device:        s.device,
	}
}

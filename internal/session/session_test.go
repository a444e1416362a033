package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestAuthenticate_Success verifies successful authentication.
func TestAuthenticate_Success(t *testing.T) {
	s := New("secret")
	assert.True(t, s.Authenticate("secret"))
	assert.True(t, s.IsAuthenticated())
}

// TestAuthenticate_Fail verifies failed authentication.
func TestAuthenticate_Fail(t *testing.T) {
	s := New("secret")
	assert.False(t, s.Authenticate("nope"))
	assert.False(t, s.IsAuthenticated())
	assert.False(t, s.Authenticate(""))
}

// TestLogout verifies logout clears auth state.
func TestLogout(t *testing.T) {
	s := New("secret")
	s.Authenticate("secret")
	s.Logout()
	assert.False(t, s.IsAuthenticated())
}

// TestOpen_AlwaysAuthenticated verifies password-less sessions ignore logout.
func TestOpen_AlwaysAuthenticated(t *testing.T) {
	s := NewOpen()
	assert.True(t, s.IsAuthenticated())
	assert.True(t, s.Authenticate("anything"))
	s.Logout()
	assert.True(t, s.IsAuthenticated())
}

// TestInputEnabled_Toggle verifies input enabled toggle.
func TestInputEnabled_Toggle(t *testing.T) {
	s := New("secret")
	assert.True(t, s.InputEnabled())
	s.SetInputEnabled(false)
	assert.False(t, s.InputEnabled())
	s.SetInputEnabled(true)
	assert.True(t, s.InputEnabled())
}

// TestDetach_OnlyCurrent verifies a stale connection cannot clear its replacement.
func TestDetach_OnlyCurrent(t *testing.T) {
	s := New("secret")
	s.Attach("a", "local")
	s.Attach("b", "relay")
	s.Detach("a")
	assert.Equal(t, "b", s.Snapshot().Connection)
	s.Detach("b")
	assert.Empty(t, s.Snapshot().Connection)
	assert.Empty(t, s.Snapshot().Device)
}

// TestSnapshot verifies snapshot content.
func TestSnapshot(t *testing.T) {
	s := New("secret")
	s.Authenticate("secret")
	s.SetInputEnabled(false)
	s.Attach("conn-1", "local")
	assert.Equal(t, Snapshot{Authenticated: true, Connection: "conn-1", Device: "local"}, s.Snapshot())
}

// Package prefs builds the pipeline configuration from a key/value settings snapshot.
package prefs

import (
	"strings"

	"github.com/frudas24/deskpad/internal/remote"
)

// ClickBinding is the button a tap gesture class is bound to.
type ClickBinding int

const (
	// BindingNone swallows the gesture.
	BindingNone ClickBinding = iota
	// BindingLeft sends a left click.
	BindingLeft
	// BindingRight sends a right click.
	BindingRight
	// BindingMiddle sends a middle click.
	BindingMiddle
)

// ParseClickBinding maps a setting value to a binding; unknown values are BindingNone.
func ParseClickBinding(s string) ClickBinding {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return BindingLeft
	case "right":
		return BindingRight
	case "middle":
		return BindingMiddle
	default:
		return BindingNone
	}
}

// Button returns the remote button for the binding; ok is false for BindingNone.
func (b ClickBinding) Button() (remote.Button, bool) {
	switch b {
	case BindingLeft:
		return remote.ButtonLeft, true
	case BindingRight:
		return remote.ButtonRight, true
	case BindingMiddle:
		return remote.ButtonMiddle, true
	default:
		return 0, false
	}
}

// String returns the setting value for the binding.
func (b ClickBinding) String() string {
	switch b {
	case BindingLeft:
		return "left"
	case BindingRight:
		return "right"
	case BindingMiddle:
		return "middle"
	default:
		return "none"
	}
}

// MarshalText encodes the binding as its setting value.
func (b ClickBinding) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText decodes a setting value; unknown values become BindingNone.
func (b *ClickBinding) UnmarshalText(text []byte) error {
	*b = ParseClickBinding(string(text))
	return nil
}

// Package remote delivers normalized pointer commands to a target machine.
package remote

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSinkUnavailable reports that the target of a session has gone away.
var ErrSinkUnavailable = errors.New("remote sink not available")

// Button identifies a remote mouse button.
type Button int

const (
	// ButtonLeft is the primary button.
	ButtonLeft Button = iota
	// ButtonRight is the secondary button.
	ButtonRight
	// ButtonMiddle is the wheel button.
	ButtonMiddle
)

// String returns the wire name of the button.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonMiddle:
		return "middle"
	default:
		return fmt.Sprintf("button(%d)", int(b))
	}
}

// ParseButton maps a wire name to a button.
func ParseButton(s string) (Button, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return ButtonLeft, nil
	case "right":
		return ButtonRight, nil
	case "middle":
		return ButtonMiddle, nil
	default:
		return 0, fmt.Errorf("unknown button %q", s)
	}
}

// Key identifies a special key sent from the keyboard panel.
type Key int

// Special keys. KeySelectAll selects everything in the focused control.
const (
	KeyEnter Key = iota + 1
	KeyBackspace
	KeyDelete
	KeyTab
	KeyEscape
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeySelectAll
)

var keyNames = map[Key]string{
	KeyEnter:     "enter",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeyTab:       "tab",
	KeyEscape:    "escape",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeySelectAll: "selectall",
}

// String returns the wire name of the key.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("key(%d)", int(k))
}

// ParseKey maps a wire name to a key. Names are case-insensitive.
func ParseKey(s string) (Key, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range keyNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown key %q", s)
}

// Sink receives pointer and keyboard commands for one remote desktop.
type Sink interface {
	SendMoveDelta(x, y float64) error
	SendClick(b Button) error
	SendDoubleClick() error
	SendHold() error
	SendScroll(x, y float64) error
	SendText(text string) error
	SendKey(k Key) error
}

// Provider looks up the current sink; it returns ErrSinkUnavailable once the target is gone.
type Provider func() (Sink, error)

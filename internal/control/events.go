// Package control routes classified input gestures to remote pointer commands.
package control

import (
	"github.com/frudas24/deskpad/internal/pointer"
	"github.com/frudas24/deskpad/internal/remote"
)

// InputEvent is one input delivered to the router.
type InputEvent interface {
	inputEvent()
}

// TouchDown starts a drag at a surface position.
type TouchDown struct {
	X float64
	Y float64
}

// TouchMove reports the new position of the dragging contact.
type TouchMove struct {
	X           float64
	Y           float64
	TimestampMs uint64
}

// TouchUp ends the current gesture.
type TouchUp struct{}

// DragScroll is a scroll callback from the gesture detector with the number of contacts.
type DragScroll struct {
	DistanceX    float64
	DistanceY    float64
	PointerCount int
}

// GenericScroll is a physical wheel event.
type GenericScroll struct {
	DistanceY float64
}

// GyroTick is one gyroscope reading.
type GyroTick struct {
	Sample pointer.GyroSample
}

// SingleTap is a confirmed single tap.
type SingleTap struct{}

// DoubleTap is a platform double tap.
type DoubleTap struct{}

// DoubleFingerTap is a tap with two fingers.
type DoubleFingerTap struct{}

// TripleFingerTap is a tap with three fingers.
type TripleFingerTap struct{}

// LongPress is a press held past the long-press timeout.
type LongPress struct{}

// Fling is a fast swipe; it is not routed.
type Fling struct{}

// ButtonPress is a tap on one of the on-screen mouse buttons.
type ButtonPress struct {
	Button remote.Button
}

// TextInput is text typed on the keyboard panel.
type TextInput struct {
	Text string
}

// KeyPress is a special key from the keyboard panel.
type KeyPress struct {
	Key remote.Key
}

func (TouchDown) inputEvent()       {}
func (TouchMove) inputEvent()       {}
func (TouchUp) inputEvent()         {}
func (DragScroll) inputEvent()      {}
func (GenericScroll) inputEvent()   {}
func (GyroTick) inputEvent()        {}
func (SingleTap) inputEvent()       {}
func (DoubleTap) inputEvent()       {}
func (DoubleFingerTap) inputEvent() {}
func (TripleFingerTap) inputEvent() {}
func (LongPress) inputEvent()       {}
func (Fling) inputEvent()           {}
func (ButtonPress) inputEvent()     {}
func (TextInput) inputEvent()       {}
func (KeyPress) inputEvent()        {}

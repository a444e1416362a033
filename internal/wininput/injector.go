// Package wininput injects relative mouse and keyboard input into the local desktop.
package wininput

// Button identifies a mouse button.
type Button int

const (
	// Left is the primary button.
	Left Button = iota
	// Right is the secondary button.
	Right
	// Middle is the wheel button.
	Middle
)

// Key identifies a special key or shortcut.
type Key int

// Special keys. KeySelectAll is the Ctrl+A chord.
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

// Injector defines the mouse and keyboard operations used by the remote sink.
type Injector interface {
	MoveRel(dx, dy int) error
	ButtonDown(b Button) error
	ButtonUp(b Button) error
	Click(b Button) error
	DoubleClick() error
	Wheel(delta int) error
	HWheel(delta int) error
	TypeUnicode(text string) error
	PressKey(k Key) error
}

// WheelDelta is one wheel notch.
const WheelDelta = 120

//go:build !windows

// Package wininput injects relative mouse and keyboard input into the local desktop.
package wininput

import "errors"

// ErrUnsupported indicates WinAPI input injection is not available.
var ErrUnsupported = errors.New("wininput is only supported on Windows")

// NoopInjector is a placeholder injector for non-Windows builds.
type NoopInjector struct{}

// NewInjector returns a non-functional injector on non-Windows platforms.
func NewInjector() (Injector, error) {
	return &NoopInjector{}, ErrUnsupported
}

// MoveRel returns ErrUnsupported.
func (n *NoopInjector) MoveRel(dx, dy int) error {
	_ = dx
	_ = dy
	return ErrUnsupported
}

// ButtonDown returns ErrUnsupported.
func (n *NoopInjector) ButtonDown(b Button) error {
	_ = b
	return ErrUnsupported
}

// ButtonUp returns ErrUnsupported.
func (n *NoopInjector) ButtonUp(b Button) error {
	_ = b
	return ErrUnsupported
}

// Click returns ErrUnsupported.
func (n *NoopInjector) Click(b Button) error {
	_ = b
	return ErrUnsupported
}

// DoubleClick returns ErrUnsupported.
func (n *NoopInjector) DoubleClick() error {
	return ErrUnsupported
}

// Wheel returns ErrUnsupported.
func (n *NoopInjector) Wheel(delta int) error {
	_ = delta
	return ErrUnsupported
}

// HWheel returns ErrUnsupported.
func (n *NoopInjector) HWheel(delta int) error {
	_ = delta
	return ErrUnsupported
}

// TypeUnicode returns ErrUnsupported.
func (n *NoopInjector) TypeUnicode(text string) error {
	_ = text
	return ErrUnsupported
}

// PressKey returns ErrUnsupported.
func (n *NoopInjector) PressKey(k Key) error {
	_ = k
	return ErrUnsupported
}

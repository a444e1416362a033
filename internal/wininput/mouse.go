//go:build windows

// Package wininput injects relative mouse and keyboard input into the local desktop.
package wininput

import (
	"fmt"

	"github.com/lxn/win"
)

// mouseeventfHWheel is MOUSEEVENTF_HWHEEL.
const mouseeventfHWheel = 0x01000

// MoveRel moves the cursor by a relative amount.
func (w *WinInjector) MoveRel(dx, dy int) error {
	if dx == 0 && dy == 0 {
		return nil
	}
	return sendMouseInput(win.MOUSEEVENTF_MOVE, int32(dx), int32(dy), 0)
}

// ButtonDown presses a mouse button.
func (w *WinInjector) ButtonDown(b Button) error {
	down, _, err := buttonFlags(b)
	if err != nil {
		return err
	}
	return sendMouseInput(down, 0, 0, 0)
}

// ButtonUp releases a mouse button.
func (w *WinInjector) ButtonUp(b Button) error {
	_, up, err := buttonFlags(b)
	if err != nil {
		return err
	}
	return sendMouseInput(up, 0, 0, 0)
}

// Click presses and releases a mouse button.
func (w *WinInjector) Click(b Button) error {
	if err := w.ButtonDown(b); err != nil {
		return err
	}
	return w.ButtonUp(b)
}

// DoubleClick sends two left clicks.
func (w *WinInjector) DoubleClick() error {
	if err := w.Click(Left); err != nil {
		return err
	}
	return w.Click(Left)
}

// Wheel scrolls vertically by the provided delta.
func (w *WinInjector) Wheel(delta int) error {
	if delta == 0 {
		return nil
	}
	return sendMouseInput(win.MOUSEEVENTF_WHEEL, 0, 0, uint32(int32(delta)))
}

// HWheel scrolls horizontally by the provided delta.
func (w *WinInjector) HWheel(delta int) error {
	if delta == 0 {
		return nil
	}
	return sendMouseInput(mouseeventfHWheel, 0, 0, uint32(int32(delta)))
}

// buttonFlags returns the down/up flags for a button.
func buttonFlags(b Button) (uint32, uint32, error) {
	switch b {
	case Left:
		return win.MOUSEEVENTF_LEFTDOWN, win.MOUSEEVENTF_LEFTUP, nil
	case Right:
		return win.MOUSEEVENTF_RIGHTDOWN, win.MOUSEEVENTF_RIGHTUP, nil
	case Middle:
		return win.MOUSEEVENTF_MIDDLEDOWN, win.MOUSEEVENTF_MIDDLEUP, nil
	default:
		return 0, 0, fmt.Errorf("unknown button %d", b)
	}
}

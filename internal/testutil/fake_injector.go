// Package testutil provides recording fakes for tests.
package testutil

import (
	"sync"

	"github.com/frudas24/deskpad/internal/wininput"
)

// Call records a single injected action.
type Call struct {
	Name   string
	X      int
	Y      int
	Button wininput.Button
	Text   string
	Key    wininput.Key
}

// FakeInjector implements wininput.Injector and records calls for tests.
type FakeInjector struct {
	mu    sync.Mutex
	Calls []Call
	Err   error
}

// Ensure FakeInjector implements the interface.
var _ wininput.Injector = (*FakeInjector)(nil)

// MoveRel records a relative move.
func (f *FakeInjector) MoveRel(dx, dy int) error {
	return f.record(Call{Name: "MoveRel", X: dx, Y: dy})
}

// ButtonDown records a button press.
func (f *FakeInjector) ButtonDown(b wininput.Button) error {
	return f.record(Call{Name: "ButtonDown", Button: b})
}

// ButtonUp records a button release.
func (f *FakeInjector) ButtonUp(b wininput.Button) error {
	return f.record(Call{Name: "ButtonUp", Button: b})
}

// Click records a click.
func (f *FakeInjector) Click(b wininput.Button) error {
	return f.record(Call{Name: "Click", Button: b})
}

// DoubleClick records a double click.
func (f *FakeInjector) DoubleClick() error {
	return f.record(Call{Name: "DoubleClick"})
}

// Wheel records a vertical wheel delta.
func (f *FakeInjector) Wheel(delta int) error {
	return f.record(Call{Name: "Wheel", Y: delta})
}

// HWheel records a horizontal wheel delta.
func (f *FakeInjector) HWheel(delta int) error {
	return f.record(Call{Name: "HWheel", X: delta})
}

// TypeUnicode records typed text.
func (f *FakeInjector) TypeUnicode(text string) error {
	return f.record(Call{Name: "TypeUnicode", Text: text})
}

// PressKey records a special key.
func (f *FakeInjector) PressKey(k wininput.Key) error {
	return f.record(Call{Name: "PressKey", Key: k})
}

// Snapshot returns a copy of the recorded calls.
func (f *FakeInjector) Snapshot() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Call(nil), f.Calls...)
}

// record appends a call and returns the configured error.
func (f *FakeInjector) record(c Call) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, c)
	return f.Err
}

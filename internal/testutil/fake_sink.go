// Package testutil provides recording fakes for tests.
package testutil

import (
	"sync"

	"github.com/frudas24/deskpad/internal/remote"
)

// FakeSink implements remote.Sink and records commands.
type FakeSink struct {
	mu       sync.Mutex
	Commands []remote.Command
	Err      error
}

// Ensure FakeSink implements the interface.
var _ remote.Sink = (*FakeSink)(nil)

// SendMoveDelta records a move.
func (f *FakeSink) SendMoveDelta(x, y float64) error {
	return f.record(remote.Command{T: remote.CmdMove, X: x, Y: y})
}

// SendClick records a click.
func (f *FakeSink) SendClick(b remote.Button) error {
	return f.record(remote.Command{T: remote.CmdClick, Button: b.String()})
}

// SendDoubleClick records a double click.
func (f *FakeSink) SendDoubleClick() error {
	return f.record(remote.Command{T: remote.CmdDoubleClick})
}

// SendHold records a hold.
func (f *FakeSink) SendHold() error {
	return f.record(remote.Command{T: remote.CmdHold})
}

// SendScroll records a scroll.
func (f *FakeSink) SendScroll(x, y float64) error {
	return f.record(remote.Command{T: remote.CmdScroll, X: x, Y: y})
}

// SendText records typed text.
func (f *FakeSink) SendText(text string) error {
	return f.record(remote.Command{T: remote.CmdText, Text: text})
}

// SendKey records a special key.
func (f *FakeSink) SendKey(k remote.Key) error {
	return f.record(remote.Command{T: remote.CmdKey, Key: k.String()})
}

// Snapshot returns a copy of the recorded commands.
func (f *FakeSink) Snapshot() []remote.Command {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]remote.Command(nil), f.Commands...)
}

// Reset clears recorded commands.
func (f *FakeSink) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Commands = nil
}

// record appends a command and returns the configured error.
func (f *FakeSink) record(c remote.Command) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Commands = append(f.Commands, c)
	return f.Err
}

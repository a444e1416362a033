package control

import (
	"encoding/json"
	"testing"

	"github.com/frudas24/deskpad/internal/pointer"
	"github.com/frudas24/deskpad/internal/remote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decode unmarshals raw and maps it to an event.
func decode(t *testing.T, raw string) InputEvent {
	t.Helper()
	var msg Message
	require.NoError(t, json.Unmarshal([]byte(raw), &msg))
	ev, err := DecodeEvent(msg)
	require.NoError(t, err)
	return ev
}

// TestProtocol_Move verifies decoding a move message with its timestamp.
func TestProtocol_Move(t *testing.T) {
	ev := decode(t, `{"t":"move","x":12.5,"y":-3,"ts":1200}`)
	assert.Equal(t, TouchMove{X: 12.5, Y: -3, TimestampMs: 1200}, ev)
}

// TestProtocol_Scroll verifies decoding a multi-finger scroll.
func TestProtocol_Scroll(t *testing.T) {
	ev := decode(t, `{"t":"scroll","dx":1,"dy":2.5,"pointers":2}`)
	assert.Equal(t, DragScroll{DistanceX: 1, DistanceY: 2.5, PointerCount: 2}, ev)
}

// TestProtocol_Gyro verifies decoding a gyroscope sample.
func TestProtocol_Gyro(t *testing.T) {
	ev := decode(t, `{"t":"gyro","rx":0.1,"ry":0.2,"rz":-0.3}`)
	assert.Equal(t, GyroTick{Sample: pointer.GyroSample{RateX: 0.1, RateY: 0.2, RateZ: -0.3}}, ev)
}

// TestProtocol_Button verifies decoding an on-screen button and rejecting unknown ones.
func TestProtocol_Button(t *testing.T) {
	assert.Equal(t, ButtonPress{Button: remote.ButtonRight}, decode(t, `{"t":"button","button":"right"}`))

	_, err := DecodeEvent(Message{T: "button", Button: "fourth"})
	assert.Error(t, err)
}

// TestProtocol_Taps verifies the gesture-only message kinds.
func TestProtocol_Taps(t *testing.T) {
	assert.Equal(t, SingleTap{}, decode(t, `{"t":"tap"}`))
	assert.Equal(t, DoubleTap{}, decode(t, `{"t":"doubleTap"}`))
	assert.Equal(t, DoubleFingerTap{}, decode(t, `{"t":"doubleFingerTap"}`))
	assert.Equal(t, TripleFingerTap{}, decode(t, `{"t":"tripleFingerTap"}`))
	assert.Equal(t, LongPress{}, decode(t, `{"t":"longPress"}`))
	assert.Equal(t, Fling{}, decode(t, `{"t":"fling"}`))
}

// TestProtocol_Unknown verifies unknown kinds are rejected.
func TestProtocol_Unknown(t *testing.T) {
	_, err := DecodeEvent(Message{T: "type"})
	assert.EqualError(t, err, `unknown message type "type"`)
}

// TestProtocol_GyroNotice verifies the server notice keeps an explicit false.
func TestProtocol_GyroNotice(t *testing.T) {
	raw, err := json.Marshal(gyroNotice(false))
	require.NoError(t, err)
	assert.JSONEq(t, `{"t":"gyro","enabled":false}`, string(raw))
}

// TestProtocol_Keyboard verifies text and special key messages.
func TestProtocol_Keyboard(t *testing.T) {
	assert.Equal(t, TextInput{Text: "héllo"}, decode(t, `{"t":"text","text":"héllo"}`))
	assert.Equal(t, KeyPress{Key: remote.KeyEnter}, decode(t, `{"t":"key","key":"enter"}`))

	_, err := DecodeEvent(Message{T: "key", Key: "hyper"})
	assert.Error(t, err)
}

package remote_test

import (
	"testing"

	"github.com/frudas24/deskpad/internal/remote"
	"github.com/frudas24/deskpad/internal/testutil"
	"github.com/frudas24/deskpad/internal/wininput"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInjectorSink_CarriesFractions verifies sub-pixel moves accumulate.
func TestInjectorSink_CarriesFractions(t *testing.T) {
	inj := &testutil.FakeInjector{}
	s := remote.NewInjectorSink(inj)

	require.NoError(t, s.SendMoveDelta(0.4, -0.6))
	assert.Empty(t, inj.Snapshot())
	require.NoError(t, s.SendMoveDelta(0.7, -0.6))
	assert.Equal(t, []testutil.Call{{Name: "MoveRel", X: 1, Y: -1}}, inj.Snapshot())
}

// TestInjectorSink_HoldReleasedByClick verifies a hold ends on the next click.
func TestInjectorSink_HoldReleasedByClick(t *testing.T) {
	inj := &testutil.FakeInjector{}
	s := remote.NewInjectorSink(inj)

	require.NoError(t, s.SendHold())
	require.NoError(t, s.SendHold())
	require.NoError(t, s.SendClick(remote.ButtonLeft))
	require.NoError(t, s.SendClick(remote.ButtonRight))

	assert.Equal(t, []testutil.Call{
		{Name: "ButtonDown", Button: wininput.Left},
		{Name: "ButtonUp", Button: wininput.Left},
		{Name: "Click", Button: wininput.Right},
	}, inj.Snapshot())
}

// TestInjectorSink_Scroll verifies scroll units map to inverted wheel deltas.
func TestInjectorSink_Scroll(t *testing.T) {
	inj := &testutil.FakeInjector{}
	s := remote.NewInjectorSink(inj)

	require.NoError(t, s.SendScroll(0, 3))
	require.NoError(t, s.SendScroll(0.5, 0))
	assert.Equal(t, []testutil.Call{
		{Name: "Wheel", Y: -3 * remote.WheelStep},
		{Name: "HWheel", X: remote.WheelStep / 2},
	}, inj.Snapshot())
}

// TestInjectorSink_DoubleClick verifies double clicks reach the injector.
func TestInjectorSink_DoubleClick(t *testing.T) {
	inj := &testutil.FakeInjector{}
	s := remote.NewInjectorSink(inj)
	require.NoError(t, s.SendDoubleClick())
	assert.Equal(t, []testutil.Call{{Name: "DoubleClick"}}, inj.Snapshot())
}

// TestInjectorSink_WheelStepIsThirdOfNotch verifies three scroll units make one wheel notch.
func TestInjectorSink_WheelStepIsThirdOfNotch(t *testing.T) {
	inj := &testutil.FakeInjector{}
	s := remote.NewInjectorSink(inj)
	require.NoError(t, s.SendScroll(0, -3))
	assert.Equal(t, []testutil.Call{{Name: "Wheel", Y: wininput.WheelDelta}}, inj.Snapshot())
}

// TestInjectorSink_Keyboard verifies text and special keys reach the injector.
func TestInjectorSink_Keyboard(t *testing.T) {
	inj := &testutil.FakeInjector{}
	s := remote.NewInjectorSink(inj)

	require.NoError(t, s.SendText(""))
	require.NoError(t, s.SendText("ok ✓"))
	require.NoError(t, s.SendKey(remote.KeyEnter))
	require.NoError(t, s.SendKey(remote.KeySelectAll))
	assert.Error(t, s.SendKey(remote.Key(99)))

	assert.Equal(t, []testutil.Call{
		{Name: "TypeUnicode", Text: "ok ✓"},
		{Name: "PressKey", Key: wininput.KeyEnter},
		{Name: "PressKey", Key: wininput.KeySelectAll},
	}, inj.Snapshot())
}

package pointer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDragScroll_FiresAfterThreshold verifies the 1.0/2.0/3.0 accumulation scenario.
func TestDragScroll_FiresAfterThreshold(t *testing.T) {
	for _, sign := range []int{1, -1} {
		s := NewDragScroll(100, sign)

		_, fired := s.Accumulate(1.0)
		require.False(t, fired)
		assert.Equal(t, 1.0, s.Pending())

		_, fired = s.Accumulate(1.0)
		require.False(t, fired)
		assert.Equal(t, 2.0, s.Pending())

		out, fired := s.Accumulate(1.0)
		require.True(t, fired)
		assert.Equal(t, 3.0*float64(sign), out)
		assert.Equal(t, 0.0, s.Pending())
	}
}

// TestDragScroll_ThresholdIsExclusive verifies exactly the threshold does not fire.
func TestDragScroll_ThresholdIsExclusive(t *testing.T) {
	s := NewDragScroll(100, 1)
	_, fired := s.Accumulate(DragScrollThreshold)
	assert.False(t, fired)
	_, fired = s.Accumulate(-2 * DragScrollThreshold)
	assert.False(t, fired, "-2.5 sits on the threshold")
	out, fired := s.Accumulate(-0.5)
	require.True(t, fired)
	assert.InDelta(t, -3.0, out, 1e-9)
}

// TestWheelScroll_IgnoresDirectionAndCoefficient verifies the wheel source fires raw distance.
func TestWheelScroll_IgnoresDirectionAndCoefficient(t *testing.T) {
	s := NewWheelScroll()
	_, fired := s.Accumulate(0.05)
	require.False(t, fired)
	out, fired := s.Accumulate(0.1)
	require.True(t, fired)
	assert.InDelta(t, 0.15, out, 1e-9)
}

// TestScrollCoefficient_ClampsZero verifies 0 percent behaves like 1 percent.
func TestScrollCoefficient_ClampsZero(t *testing.T) {
	assert.Equal(t, ScrollCoefficient(1), ScrollCoefficient(0))
	assert.InDelta(t, 1.0, ScrollCoefficient(100), 1e-12)
	assert.InDelta(t, math.Pow(2, 1.5), ScrollCoefficient(200), 1e-12)
}

// TestDragScroll_SumConverges verifies fired output tracks input within one threshold.
func TestDragScroll_SumConverges(t *testing.T) {
	inputs := []float64{0.3, 1.7, -0.4, 2.2, 0.9, 0.05, 3.1, -1.2, -2.9, 0.6, 1.1, 0.8, -0.2, 4.4}
	for _, percent := range []int{25, 100, 180} {
		s := NewDragScroll(percent, 1)
		coef := ScrollCoefficient(percent)
		var in, out float64
		for _, d := range inputs {
			in += d * coef
			if v, ok := s.Accumulate(d); ok {
				out += v
				assert.Less(t, math.Abs(s.Pending()), DragScrollThreshold)
			}
		}
		assert.InDelta(t, in, out+s.Pending(), 1e-9)
		assert.LessOrEqual(t, math.Abs(in-out), DragScrollThreshold)
	}
}

// TestScrollReset_DropsPending verifies Reset clears accumulated distance.
func TestScrollReset_DropsPending(t *testing.T) {
	s := NewDragScroll(100, 1)
	s.Accumulate(2)
	s.Reset()
	_, fired := s.Accumulate(1)
	assert.False(t, fired)
}

// TestDragScroll_ConfigureKeepsPending verifies retuning keeps the accumulated distance.
func TestDragScroll_ConfigureKeepsPending(t *testing.T) {
	s := NewDragScroll(100, 1)
	_, fired := s.Accumulate(2)
	require.False(t, fired)

	s.Configure(200, -1)
	assert.Equal(t, 2.0, s.Pending())
	out, fired := s.Accumulate(0.5)
	require.True(t, fired)
	assert.InDelta(t, -(2+0.5*math.Pow(2, 1.5)), out, 1e-9)
}

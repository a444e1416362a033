package accel

import (
	"testing"

	"github.com/frudas24/deskpad/internal/pointer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// replay feeds samples through a fresh profile, committing after each one.
func replay(p Profile, samples [][3]float64) []pointer.Delta {
	out := make([]pointer.Delta, 0, len(samples))
	for _, s := range samples {
		p.TouchMoved(s[0], s[1], uint64(s[2]))
		out = append(out, p.Commit())
	}
	return out
}

var drag = [][3]float64{
	{1, 0, 1000}, {3, -1, 1008}, {6, -2, 1016}, {12, -4, 1024}, {2, 1, 1040}, {0.5, 0.5, 1300},
}

// TestIdentity_Idempotent verifies the same sample always yields the same delta.
func TestIdentity_Idempotent(t *testing.T) {
	p := ByName(NameNone)
	for i := 0; i < 5; i++ {
		p.TouchMoved(3.5, -2, uint64(100+i))
		assert.Equal(t, pointer.Delta{X: 3.5, Y: -2}, p.Commit())
	}
}

// TestCommit_ConsumesPending verifies a second commit without samples is zero.
func TestCommit_ConsumesPending(t *testing.T) {
	for _, name := range Names() {
		p := ByName(name)
		p.TouchMoved(4, 4, 10)
		require.False(t, p.Commit().IsZero(), name)
		assert.True(t, p.Commit().IsZero(), name)
	}
}

// TestByName_UnknownFallsBackToDefault verifies fallback output matches the default profile.
func TestByName_UnknownFallsBackToDefault(t *testing.T) {
	want := replay(ByName(DefaultName), drag)
	for _, name := range []string{"", "turbo", "MEDIUMISH"} {
		assert.Equal(t, want, replay(ByName(name), drag), name)
	}
	assert.Equal(t, want, replay(ByName("  Medium "), drag))
	assert.False(t, Known("turbo"))
	assert.True(t, Known("stronger"))
	assert.True(t, Known(NameNone))
}

// TestSpeedCurve_Monotonic verifies faster motion never yields a smaller delta.
func TestSpeedCurve_Monotonic(t *testing.T) {
	for _, name := range Names() {
		prev := 0.0
		for _, dx := range []float64{0.1, 0.5, 1, 2, 5, 10, 40, 120} {
			p := ByName(name)
			p.TouchMoved(1, 0, 0)
			p.Commit()
			p.TouchMoved(dx, 0, 8)
			out := p.Commit()
			assert.GreaterOrEqual(t, out.X, prev, "%s dx=%v", name, dx)
			assert.GreaterOrEqual(t, out.X, dx, "%s never decelerates", name)
			prev = out.X
		}
	}
}

// TestSpeedCurve_PreservesSign verifies acceleration never flips direction.
func TestSpeedCurve_PreservesSign(t *testing.T) {
	for _, name := range Names() {
		for i, d := range replay(ByName(name), [][3]float64{{-3, 2, 0}, {-9, 7, 5}, {4, -6, 9}}) {
			switch i {
			case 0, 1:
				assert.Less(t, d.X, 0.0, name)
				assert.Greater(t, d.Y, 0.0, name)
			case 2:
				assert.Greater(t, d.X, 0.0, name)
				assert.Less(t, d.Y, 0.0, name)
			}
		}
	}
}

// TestSpeedCurve_StrongerAcceleratesMore verifies curve ordering for a fast swipe.
func TestSpeedCurve_StrongerAcceleratesMore(t *testing.T) {
	prev := 0.0
	for _, name := range []string{"weaker", "weak", "medium", "strong", "stronger"} {
		out := replay(ByName(name), drag)
		assert.Greater(t, out[3].X, prev, name)
		prev = out[3].X
	}
}

// TestSpeedCurve_ClockReset verifies a backwards timestamp does not blow up speed.
func TestSpeedCurve_ClockReset(t *testing.T) {
	p := ByName("stronger")
	p.TouchMoved(5, 0, 5000)
	p.Commit()
	p.TouchMoved(1, 0, 10)
	out := p.Commit()
	assert.Greater(t, out.X, 1.0)
	assert.Less(t, out.X, 2.0)
}

// TestSpeedCurve_FirstSampleSpanIsFixed verifies an early timestamp does not shorten the first span.
func TestSpeedCurve_FirstSampleSpanIsFixed(t *testing.T) {
	early, late := ByName("stronger"), ByName("stronger")
	early.TouchMoved(4, 3, 2)
	late.TouchMoved(4, 3, 5000)
	assert.Equal(t, late.Commit(), early.Commit())

	c := newSpeedCurve(1)
	c.TouchMoved(4, 3, 0)
	assert.InDelta(t, 5.0/firstSampleMs, c.speed, 1e-12)
}

package accel

import (
	"math"

	"github.com/frudas24/deskpad/internal/pointer"
)

const (
	historySize     = 32
	historyWindowMs = 100
	// firstSampleMs is the interval assumed when a sample has no predecessor.
	firstSampleMs = 16
)

type sample struct {
	dx, dy float64
	ts     uint64
}

// speedCurve scales deltas by (1 + speed)^exponent, speed being distance per
// millisecond over the recent history window.
type speedCurve struct {
	exponent float64
	history  [historySize]sample
	head     int
	count    int
	pending  pointer.Delta
	lastTS   uint64
	hasLast  bool
	speed    float64
}

// newSpeedCurve returns a curve with the given exponent.
func newSpeedCurve(exponent float64) *speedCurve {
	return &speedCurve{exponent: exponent}
}

// TouchMoved records the sample and refreshes the speed estimate.
func (c *speedCurve) TouchMoved(dx, dy float64, timestampMs uint64) {
	if c.hasLast && timestampMs < c.lastTS {
		// Clock went backwards; start a new history.
		c.count = 0
	}
	c.push(sample{dx: dx, dy: dy, ts: timestampMs})
	c.speed = c.estimateSpeed(timestampMs)
	c.lastTS = timestampMs
	c.hasLast = true
	c.pending.X += dx
	c.pending.Y += dy
}

// Commit applies the multiplier for the current speed to the pending delta.
func (c *speedCurve) Commit() pointer.Delta {
	m := c.multiplier(c.speed)
	out := pointer.Delta{X: c.pending.X * m, Y: c.pending.Y * m}
	c.pending = pointer.Delta{}
	return out
}

// multiplier is >= 1 and non-decreasing in speed.
func (c *speedCurve) multiplier(speed float64) float64 {
	if speed <= 0 || math.IsNaN(speed) || math.IsInf(speed, 0) {
		return 1
	}
	return math.Pow(1+speed, c.exponent)
}

// push appends a sample to the ring buffer.
func (c *speedCurve) push(s sample) {
	c.history[c.head] = s
	c.head = (c.head + 1) % historySize
	if c.count < historySize {
		c.count++
	}
}

// estimateSpeed returns distance per millisecond over samples inside the window.
// The span runs from the sample preceding the oldest one in the window; a
// sample with no predecessor counts as firstSampleMs long.
func (c *speedCurve) estimateSpeed(now uint64) float64 {
	var dist, span float64
	used := 0
	for i := 0; i < c.count; i++ {
		idx := (c.head - 1 - i + historySize) % historySize
		s := c.history[idx]
		if now-s.ts > historyWindowMs {
			break
		}
		dist += math.Hypot(s.dx, s.dy)
		used++
		if i+1 < c.count {
			span = float64(now - c.history[(idx-1+historySize)%historySize].ts)
		} else {
			span = float64(now-s.ts) + firstSampleMs
		}
	}
	if used == 0 {
		return 0
	}
	if span < 1 {
		span = 1
	}
	return dist / span
}

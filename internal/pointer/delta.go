// Package pointer holds the numeric stages of the input pipeline.
package pointer

// Delta is a relative pointer motion sent to the remote cursor.
type Delta struct {
	X float64
	Y float64
}

// IsZero reports whether the delta moves nothing.
func (d Delta) IsZero() bool {
	return d.X == 0 && d.Y == 0
}

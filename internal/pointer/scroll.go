// Package pointer holds the numeric stages of the input pipeline.
package pointer

import "math"

const (
	// DragScrollThreshold is the distance a multi-finger drag must cover before a scroll fires.
	DragScrollThreshold = 2.5
	// WheelScrollThreshold is the distance a wheel must cover before a scroll fires.
	WheelScrollThreshold = 0.1
)

// ScrollAccumulator collects sub-threshold scroll distance for one input source.
type ScrollAccumulator struct {
	accumulated float64
	threshold   float64
	coefficient float64
	sign        float64
}

// NewDragScroll returns the accumulator for multi-finger drag scrolling.
// sensitivityPercent below 1 is clamped to 1; sign is +1 for natural and -1 for inverted scrolling.
func NewDragScroll(sensitivityPercent int, sign int) *ScrollAccumulator {
	return &ScrollAccumulator{
		threshold:   DragScrollThreshold,
		coefficient: ScrollCoefficient(sensitivityPercent),
		sign:        normalizeSign(sign),
	}
}

// NewWheelScroll returns the accumulator for physical scroll wheels.
func NewWheelScroll() *ScrollAccumulator {
	return &ScrollAccumulator{
		threshold:   WheelScrollThreshold,
		coefficient: 1,
		sign:        1,
	}
}

// ScrollCoefficient maps a scroll sensitivity percent to the drag coefficient.
func ScrollCoefficient(sensitivityPercent int) float64 {
	if sensitivityPercent < 1 {
		sensitivityPercent = 1
	}
	return math.Pow(float64(sensitivityPercent)/100, 1.5)
}

// Configure changes the sensitivity and direction while keeping the pending distance.
func (s *ScrollAccumulator) Configure(sensitivityPercent int, sign int) {
	s.coefficient = ScrollCoefficient(sensitivityPercent)
	s.sign = normalizeSign(sign)
}

// Accumulate adds delta and reports the scroll amount once the threshold is crossed.
func (s *ScrollAccumulator) Accumulate(delta float64) (float64, bool) {
	s.accumulated += delta * s.coefficient
	if math.Abs(s.accumulated) <= s.threshold {
		return 0, false
	}
	out := s.accumulated * s.sign
	s.accumulated = 0
	return out, true
}

// Pending returns the distance accumulated since the last fire.
func (s *ScrollAccumulator) Pending() float64 {
	return s.accumulated
}

// Reset drops any pending distance.
func (s *ScrollAccumulator) Reset() {
	s.accumulated = 0
}

// normalizeSign maps any negative value to -1 and everything else to +1.
func normalizeSign(sign int) float64 {
	if sign < 0 {
		return -1
	}
	return 1
}

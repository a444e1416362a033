// Package pointer holds the numeric stages of the input pipeline.
package pointer

const (
	gyroGain     = 70
	gyroDeadzone = 0.25
)

// GyroSample is one angular-rate reading from the device gyroscope.
type GyroSample struct {
	RateX float64
	RateY float64
	RateZ float64
}

// ComputeGyro maps a gyroscope reading to a pointer delta.
// Rotation around Z drives horizontal motion and rotation around X drives
// vertical motion. Axes inside the deadzone are zeroed; the others are scaled
// by the sensitivity factor a second time, so active axes grow quadratically
// with sensitivityPercent. Remote peers match this curve.
func ComputeGyro(sample GyroSample, sensitivityPercent int) Delta {
	factor := float64(sensitivityPercent) / 100
	x := -sample.RateZ * gyroGain * factor
	y := -sample.RateX * gyroGain * factor
	return Delta{X: gyroAxis(x, factor), Y: gyroAxis(y, factor)}
}

// gyroAxis applies the deadzone and the second sensitivity pass to one axis.
func gyroAxis(v, factor float64) float64 {
	if v < gyroDeadzone && v > -gyroDeadzone {
		return 0
	}
	return v * factor
}

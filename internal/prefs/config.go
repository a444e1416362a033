// Package prefs builds the pipeline configuration from a key/value settings snapshot.
package prefs

import (
	"strings"

	"github.com/frudas24/deskpad/internal/accel"
	"github.com/frudas24/deskpad/internal/pointer"
	log "github.com/sirupsen/logrus"
)

// Defaults applied when a setting is missing or unrecognized.
const (
	DefaultSensitivity       = "default"
	DefaultScrollSensitivity = 100
	DefaultGyroSensitivity   = 100
	DefaultSingleTap         = "left"
	DefaultDoubleTap         = "right"
	DefaultTripleTap         = "middle"
)

// sensitivityTiers maps sensitivity names to pointer speed multipliers.
var sensitivityTiers = map[string]float64{
	"slowest":      0.2,
	"aboveSlowest": 0.5,
	"default":      1.0,
	"aboveDefault": 1.5,
	"fastest":      2.0,
}

// Values is a read-only settings snapshot.
type Values interface {
	String(key, def string) string
	Bool(key string, def bool) bool
	Int(key string, def int) int
}

// Configuration is an immutable snapshot of every user-tunable parameter.
type Configuration struct {
	SensitivityName     string       `json:"sensitivityName"`
	Sensitivity         float64      `json:"sensitivity"`
	ScrollInverted      bool         `json:"scrollInverted"`
	ScrollSensitivity   int          `json:"scrollSensitivity"`
	ScrollCoefficient   float64      `json:"scrollCoefficient"`
	GyroEnabled         bool         `json:"gyroEnabled"`
	GyroSensitivity     int          `json:"gyroSensitivity"`
	AccelerationProfile string       `json:"accelerationProfile"`
	SingleTap           ClickBinding `json:"singleTap"`
	DoubleTap           ClickBinding `json:"doubleTap"`
	TripleTap           ClickBinding `json:"tripleTap"`
	MouseButtons        bool         `json:"mouseButtons"`
}

// Default returns the configuration built from an empty snapshot.
func Default() Configuration {
	return Build(emptyValues{})
}

// Build derives a configuration from a settings snapshot.
// Every field is always applied; unrecognized values fall back to defaults.
func Build(v Values) Configuration {
	cfg := Configuration{
		ScrollInverted:    v.Bool(KeyScrollDirection, false),
		GyroEnabled:       v.Bool(KeyGyroEnabled, false),
		GyroSensitivity:   v.Int(KeyGyroSensitivity, DefaultGyroSensitivity),
		SingleTap:         ParseClickBinding(v.String(KeySingleTap, DefaultSingleTap)),
		DoubleTap:         ParseClickBinding(v.String(KeyDoubleTap, DefaultDoubleTap)),
		TripleTap:         ParseClickBinding(v.String(KeyTripleTap, DefaultTripleTap)),
		MouseButtons:      v.Bool(KeyMouseButtons, true),
		ScrollSensitivity: v.Int(KeyScrollSensitivity, DefaultScrollSensitivity),
	}

	if cfg.ScrollSensitivity < 1 {
		cfg.ScrollSensitivity = 1
	}
	cfg.ScrollCoefficient = pointer.ScrollCoefficient(cfg.ScrollSensitivity)

	cfg.SensitivityName = strings.TrimSpace(v.String(KeySensitivity, DefaultSensitivity))
	tier, ok := sensitivityTiers[cfg.SensitivityName]
	if !ok {
		log.Debugf("prefs: unknown sensitivity %q, using %s", cfg.SensitivityName, DefaultSensitivity)
		cfg.SensitivityName = DefaultSensitivity
		tier = sensitivityTiers[DefaultSensitivity]
	}
	cfg.Sensitivity = tier

	cfg.AccelerationProfile = strings.ToLower(strings.TrimSpace(v.String(KeyAccelerationProfile, accel.DefaultName)))
	if !accel.Known(cfg.AccelerationProfile) {
		cfg.AccelerationProfile = accel.DefaultName
	}

	return cfg
}

// ScrollSign returns +1 for natural and -1 for inverted scrolling.
func (c Configuration) ScrollSign() int {
	if c.ScrollInverted {
		return -1
	}
	return 1
}

// SensitivityTiers returns the known sensitivity names in ascending order.
func SensitivityTiers() []string {
	return []string{"slowest", "aboveSlowest", "default", "aboveDefault", "fastest"}
}

type emptyValues struct{}

func (emptyValues) String(_, def string) string  { return def }
func (emptyValues) Bool(_ string, def bool) bool { return def }
func (emptyValues) Int(_ string, def int) int    { return def }

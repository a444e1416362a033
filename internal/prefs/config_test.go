package prefs

import (
	"sync"
	"testing"

	"github.com/frudas24/deskpad/internal/accel"
	"github.com/frudas24/deskpad/internal/remote"
	"github.com/frudas24/deskpad/internal/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// snap builds a settings snapshot from pairs.
func snap(kv map[string]string) Values {
	return settings.NewSnapshot(kv)
}

// TestBuild_Defaults verifies the empty snapshot configuration.
func TestBuild_Defaults(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 1.0, cfg.Sensitivity)
	assert.Equal(t, DefaultSensitivity, cfg.SensitivityName)
	assert.False(t, cfg.ScrollInverted)
	assert.Equal(t, 1, cfg.ScrollSign())
	assert.Equal(t, 100, cfg.ScrollSensitivity)
	assert.InDelta(t, 1.0, cfg.ScrollCoefficient, 1e-12)
	assert.False(t, cfg.GyroEnabled)
	assert.Equal(t, 100, cfg.GyroSensitivity)
	assert.Equal(t, accel.DefaultName, cfg.AccelerationProfile)
	assert.Equal(t, BindingLeft, cfg.SingleTap)
	assert.Equal(t, BindingRight, cfg.DoubleTap)
	assert.Equal(t, BindingMiddle, cfg.TripleTap)
	assert.True(t, cfg.MouseButtons)
}

// TestBuild_SensitivityTiers verifies every tier maps to its multiplier.
func TestBuild_SensitivityTiers(t *testing.T) {
	want := map[string]float64{
		"slowest":      0.2,
		"aboveSlowest": 0.5,
		"default":      1.0,
		"aboveDefault": 1.5,
		"fastest":      2.0,
	}
	for _, name := range SensitivityTiers() {
		cfg := Build(snap(map[string]string{KeySensitivity: name}))
		assert.Equal(t, want[name], cfg.Sensitivity, name)
	}
}

// TestBuild_UnknownSensitivityAppliesRest verifies a bad tier does not skip later fields.
func TestBuild_UnknownSensitivityAppliesRest(t *testing.T) {
	cfg := Build(snap(map[string]string{
		KeySensitivity:         "ludicrous",
		KeyAccelerationProfile: "strong",
		KeySingleTap:           "none",
		KeyTripleTap:           "right",
		KeyMouseButtons:        "false",
	}))
	assert.Equal(t, 1.0, cfg.Sensitivity)
	assert.Equal(t, DefaultSensitivity, cfg.SensitivityName)
	assert.Equal(t, "strong", cfg.AccelerationProfile)
	assert.Equal(t, BindingNone, cfg.SingleTap)
	assert.Equal(t, BindingRight, cfg.TripleTap)
	assert.False(t, cfg.MouseButtons)
}

// TestBuild_ScrollSettings verifies direction and the zero clamp.
func TestBuild_ScrollSettings(t *testing.T) {
	cfg := Build(snap(map[string]string{KeyScrollDirection: "true", KeyScrollSensitivity: "0"}))
	assert.Equal(t, -1, cfg.ScrollSign())
	assert.Equal(t, 1, cfg.ScrollSensitivity)
	assert.InDelta(t, 0.001, cfg.ScrollCoefficient, 1e-9)
}

// TestBuild_UnknownProfile verifies the profile name falls back to the default.
func TestBuild_UnknownProfile(t *testing.T) {
	cfg := Build(snap(map[string]string{KeyAccelerationProfile: "warp"}))
	assert.Equal(t, accel.DefaultName, cfg.AccelerationProfile)
}

// TestParseClickBinding verifies binding parsing and button mapping.
func TestParseClickBinding(t *testing.T) {
	assert.Equal(t, BindingLeft, ParseClickBinding("LEFT"))
	assert.Equal(t, BindingNone, ParseClickBinding("thumb"))
	b, ok := ParseClickBinding("middle").Button()
	require.True(t, ok)
	assert.Equal(t, remote.ButtonMiddle, b)
	_, ok = BindingNone.Button()
	assert.False(t, ok)
}

// TestHolder_LazyRebuild verifies rebuilds happen only after MarkDirty.
func TestHolder_LazyRebuild(t *testing.T) {
	values := map[string]string{KeySensitivity: "slowest"}
	builds := 0
	h := NewHolder(SourceFunc(func() Values {
		builds++
		return snap(values)
	}))

	cfg, v1 := h.Current()
	require.Equal(t, uint64(1), v1)
	assert.Equal(t, 0.2, cfg.Sensitivity)

	values[KeySensitivity] = "fastest"
	cfg, v := h.Current()
	assert.Equal(t, v1, v)
	assert.Equal(t, 0.2, cfg.Sensitivity, "stale until marked dirty")

	h.MarkDirty()
	assert.True(t, h.Dirty())
	cfg, v = h.Current()
	assert.Equal(t, v1+1, v)
	assert.Equal(t, 2.0, cfg.Sensitivity)
	assert.Equal(t, 2, builds)
	assert.Equal(t, uint64(2), h.Version())
}

// TestHolder_ConcurrentReaders verifies readers always see whole snapshots.
func TestHolder_ConcurrentReaders(t *testing.T) {
	var mu sync.Mutex
	tier := "slowest"
	h := NewHolder(SourceFunc(func() Values {
		mu.Lock()
		defer mu.Unlock()
		if tier == "slowest" {
			return snap(map[string]string{KeySensitivity: tier, KeyGyroSensitivity: "20"})
		}
		return snap(map[string]string{KeySensitivity: tier, KeyGyroSensitivity: "200"})
	}))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				cfg, _ := h.Current()
				if cfg.Sensitivity == 0.2 {
					assert.Equal(t, 20, cfg.GyroSensitivity)
				} else {
					assert.Equal(t, 200, cfg.GyroSensitivity)
				}
			}
		}()
	}
	for i := 0; i < 50; i++ {
		mu.Lock()
		if tier == "slowest" {
			tier = "fastest"
		} else {
			tier = "slowest"
		}
		mu.Unlock()
		h.MarkDirty()
	}
	wg.Wait()
}

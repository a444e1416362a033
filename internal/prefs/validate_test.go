package prefs

import (
	"testing"

	"github.com/frudas24/deskpad/internal/accel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestValidate_AcceptsKnownValues verifies every listed choice and typed value passes.
func TestValidate_AcceptsKnownValues(t *testing.T) {
	for key, choices := range Choices() {
		for _, c := range choices {
			assert.NoError(t, Validate(key, c), "%s=%s", key, c)
		}
	}
	assert.NoError(t, Validate(KeyAccelerationProfile, " Strong "))
	assert.NoError(t, Validate(KeyScrollDirection, "on"))
	assert.NoError(t, Validate(KeyGyroSensitivity, "250"))
	assert.NoError(t, Validate(KeySensitivity, ""), "empty deletes")
	assert.NoError(t, Validate("theme", "dark"), "unread keys pass")
}

// TestValidate_RejectsUnknownValues verifies typos are reported with the accepted values.
func TestValidate_RejectsUnknownValues(t *testing.T) {
	err := Validate(KeyAccelerationProfile, "turbo")
	require.Error(t, err)
	for _, name := range accel.Names() {
		assert.Contains(t, err.Error(), name)
	}

	err = Validate(KeySensitivity, "fast")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "aboveDefault")

	assert.Error(t, Validate(KeySingleTap, "thumb"))
	assert.Error(t, Validate(KeyGyroEnabled, "maybe"))
	assert.Error(t, Validate(KeyScrollSensitivity, "-5"))
	assert.Error(t, Validate(KeyScrollSensitivity, "50%"))
}

// TestValidateAll_ReportsFirstInKeyOrder verifies the failure is deterministic.
func TestValidateAll_ReportsFirstInKeyOrder(t *testing.T) {
	err := ValidateAll(map[string]string{
		KeySingleTap:           "thumb",
		KeyAccelerationProfile: "turbo",
		KeySensitivity:         "fastest",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), KeyAccelerationProfile)
	assert.NoError(t, ValidateAll(map[string]string{KeySensitivity: "fastest"}))
}

// Package prefs builds the pipeline configuration from a key/value settings snapshot.
package prefs

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/frudas24/deskpad/internal/accel"
	"github.com/frudas24/deskpad/internal/settings"
)

// bindingNames lists the accepted tap binding values.
var bindingNames = []string{"none", "left", "right", "middle"}

// Choices lists the accepted values of every enumerated setting.
func Choices() map[string][]string {
	return map[string][]string{
		KeySensitivity:         SensitivityTiers(),
		KeyAccelerationProfile: accel.Names(),
		KeySingleTap:           bindingNames,
		KeyDoubleTap:           bindingNames,
		KeyTripleTap:           bindingNames,
	}
}

// Validate reports whether value is accepted for key.
// Empty values delete a key and always pass, as do keys the pipeline does not read.
func Validate(key, value string) error {
	v := strings.TrimSpace(value)
	if v == "" {
		return nil
	}
	switch key {
	case KeySensitivity:
		if !slices.Contains(SensitivityTiers(), v) {
			return choiceError(key, value, SensitivityTiers())
		}
	case KeyAccelerationProfile:
		if !accel.Known(v) {
			return choiceError(key, value, accel.Names())
		}
	case KeySingleTap, KeyDoubleTap, KeyTripleTap:
		if !slices.Contains(bindingNames, strings.ToLower(v)) {
			return choiceError(key, value, bindingNames)
		}
	case KeyScrollDirection, KeyGyroEnabled, KeyMouseButtons:
		if _, ok := settings.ParseBool(v); !ok {
			return fmt.Errorf("%s: %q is not a boolean", key, value)
		}
	case KeyScrollSensitivity, KeyGyroSensitivity:
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return fmt.Errorf("%s: %q is not a non-negative percent", key, value)
		}
	}
	return nil
}

// ValidateAll checks every entry of values and returns the first failure in key order.
func ValidateAll(values map[string]string) error {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		if err := Validate(k, values[k]); err != nil {
			return err
		}
	}
	return nil
}

// choiceError names the accepted values for key.
func choiceError(key, value string, choices []string) error {
	return fmt.Errorf("%s: %q is not one of %s", key, value, strings.Join(choices, ", "))
}

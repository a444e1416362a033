// Package prefs builds the pipeline configuration from a key/value settings snapshot.
package prefs

// Setting keys read from the configuration source.
const (
	KeySensitivity         = "mousepad_sensitivity"
	KeyScrollDirection     = "mousepad_scroll_direction"
	KeyScrollSensitivity   = "mousepad_scroll_sensitivity"
	KeyGyroEnabled         = "gyro_mouse_enabled"
	KeyGyroSensitivity     = "gyro_mouse_sensitivity"
	KeyAccelerationProfile = "mousepad_acceleration_profile"
	KeySingleTap           = "mousepad_single_tap"
	KeyDoubleTap           = "mousepad_double_tap"
	KeyTripleTap           = "mousepad_triple_tap"
	KeyMouseButtons        = "mousepad_mouse_buttons_enabled"
)

// Keys lists every setting the pipeline reads.
func Keys() []string {
	return []string{
		KeySensitivity,
		KeyScrollDirection,
		KeyScrollSensitivity,
		KeyGyroEnabled,
		KeyGyroSensitivity,
		KeyAccelerationProfile,
		KeySingleTap,
		KeyDoubleTap,
		KeyTripleTap,
		KeyMouseButtons,
	}
}

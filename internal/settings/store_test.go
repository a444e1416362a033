package settings

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestOpen_MissingFile_ReturnsEmpty verifies missing files yield an empty store.
func TestOpen_MissingFile_ReturnsEmpty(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Empty(t, s.Snapshot().Keys())
}

// TestSetReopen_RoundTrip verifies values survive a reopen in every format.
func TestSetReopen_RoundTrip(t *testing.T) {
	for _, name := range []string{"settings.yaml", "settings.toml", "settings.ini"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", name)
			s, err := Open(path)
			require.NoError(t, err)
			require.NoError(t, s.SetMany(map[string]string{
				"mousepad_sensitivity":        "fastest",
				"mousepad_scroll_direction":   "true",
				"mousepad_scroll_sensitivity": "150",
			}))

			again, err := Open(path)
			require.NoError(t, err)
			snap := again.Snapshot()
			assert.Equal(t, "fastest", snap.String("mousepad_sensitivity", ""))
			assert.True(t, snap.Bool("mousepad_scroll_direction", false))
			assert.Equal(t, 150, snap.Int("mousepad_scroll_sensitivity", 0))
		})
	}
}

// TestOpen_TypedYAML verifies native YAML scalars are read as strings.
func TestOpen_TypedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yml")
	data := "gyro_mouse_enabled: true\ngyro_mouse_sensitivity: 250\nmousepad_single_tap: none\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	s, err := Open(path)
	require.NoError(t, err)
	snap := s.Snapshot()
	assert.True(t, snap.Bool("gyro_mouse_enabled", false))
	assert.Equal(t, 250, snap.Int("gyro_mouse_sensitivity", 100))
	assert.Equal(t, "none", snap.String("mousepad_single_tap", "left"))
}

// TestOpen_NestedRejected verifies nested tables are reported.
func TestOpen_NestedRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mouse:\n  speed: 1\n"), 0o600))
	_, err := Open(path)
	assert.Error(t, err)
}

// TestSnapshot_MalformedFallsBack verifies typed getters use defaults on bad input.
func TestSnapshot_MalformedFallsBack(t *testing.T) {
	snap := NewSnapshot(map[string]string{"n": "ten", "b": "maybe"})
	assert.Equal(t, 7, snap.Int("n", 7))
	assert.True(t, snap.Bool("b", true))
	assert.Equal(t, "x", snap.String("missing", "x"))
}

// TestOnChange_SingleSignalPerChange verifies subscribers fire once per effective change.
func TestOnChange_SingleSignalPerChange(t *testing.T) {
	s, err := Open("")
	require.NoError(t, err)
	calls := 0
	cancel := s.OnChange(func() { calls++ })

	require.NoError(t, s.SetMany(map[string]string{"a": "1", "b": "2"}))
	assert.Equal(t, 1, calls)

	require.NoError(t, s.Set("a", "1"))
	assert.Equal(t, 1, calls, "unchanged value must not notify")

	require.NoError(t, s.Set("a", ""))
	assert.Equal(t, 2, calls)
	_, ok := s.Snapshot().Lookup("a")
	assert.False(t, ok)

	cancel()
	require.NoError(t, s.Set("b", "3"))
	assert.Equal(t, 2, calls)
}

// TestSnapshot_IsCopy verifies later writes do not leak into earlier snapshots.
func TestSnapshot_IsCopy(t *testing.T) {
	s, err := Open("")
	require.NoError(t, err)
	require.NoError(t, s.Set("k", "v1"))
	snap := s.Snapshot()
	require.NoError(t, s.Set("k", "v2"))
	assert.Equal(t, "v1", snap.String("k", ""))
}

// TestSetMany_WriteFailureKeepsValues verifies a failed save changes nothing and notifies nobody.
func TestSetMany_WriteFailureKeepsValues(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "conf")
	s, err := Open(filepath.Join(dir, "settings.yaml"))
	require.NoError(t, err)
	require.NoError(t, s.Set("mousepad_single_tap", "left"))

	require.NoError(t, os.RemoveAll(dir))
	require.NoError(t, os.WriteFile(dir, []byte("not a directory"), 0o600))
	calls := 0
	s.OnChange(func() { calls++ })

	err = s.SetMany(map[string]string{"mousepad_single_tap": "right", "mousepad_triple_tap": "middle"})
	require.Error(t, err)
	snap := s.Snapshot()
	assert.Equal(t, "left", snap.String("mousepad_single_tap", ""))
	assert.False(t, slices.Contains(snap.Keys(), "mousepad_triple_tap"))
	assert.Zero(t, calls)
}

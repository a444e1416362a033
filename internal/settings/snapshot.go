// Package settings stores user preferences as string key/value pairs.
package settings

import (
	"sort"
	"strconv"
	"strings"
)

// Snapshot is an immutable copy of the stored settings.
type Snapshot struct {
	values map[string]string
}

// NewSnapshot copies values into a snapshot.
func NewSnapshot(values map[string]string) Snapshot {
	out := make(map[string]string, len(values))
	for k, v := range values {
		out[k] = v
	}
	return Snapshot{values: out}
}

// Lookup returns the raw value for key.
func (s Snapshot) Lookup(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// String returns the value for key or def when missing.
func (s Snapshot) String(key, def string) string {
	if v, ok := s.values[key]; ok {
		return v
	}
	return def
}

// Bool returns the boolean value for key or def when missing or malformed.
func (s Snapshot) Bool(key string, def bool) bool {
	v, ok := s.values[key]
	if !ok {
		return def
	}
	b, ok := ParseBool(v)
	if !ok {
		return def
	}
	return b
}

// ParseBool accepts the boolean spellings the store understands; ok is false otherwise.
func ParseBool(v string) (value, ok bool) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}

// Int returns the integer value for key or def when missing or malformed.
func (s Snapshot) Int(key string, def int) int {
	v, ok := s.values[key]
	if !ok {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return n
}

// Map returns a copy of all values.
func (s Snapshot) Map() map[string]string {
	out := make(map[string]string, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

// Keys returns the stored keys sorted.
func (s Snapshot) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

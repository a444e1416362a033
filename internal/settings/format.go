// Package settings stores user preferences as string key/value pairs.
package settings

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"
)

// Format identifies a settings file encoding.
type Format string

const (
	// FormatYAML is the default encoding.
	FormatYAML Format = "yaml"
	// FormatTOML encodes settings as TOML.
	FormatTOML Format = "toml"
	// FormatINI encodes settings as a flat INI file.
	FormatINI Format = "ini"
)

// FormatFor picks the encoding from the file extension, defaulting to YAML.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".ini", ".conf":
		return FormatINI
	default:
		return FormatYAML
	}
}

// decode parses data into flat string values.
func decode(format Format, data []byte) (map[string]string, error) {
	out := map[string]string{}
	switch format {
	case FormatTOML:
		raw := map[string]any{}
		if _, err := toml.Decode(string(data), &raw); err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
		return flatten(raw)
	case FormatINI:
		file, err := ini.Load(data)
		if err != nil {
			return nil, fmt.Errorf("decode ini: %w", err)
		}
		for _, key := range file.Section(ini.DefaultSection).Keys() {
			out[key.Name()] = key.String()
		}
		return out, nil
	default:
		raw := map[string]any{}
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
		return flatten(raw)
	}
}

// encode renders flat string values, restoring bool and int types where they parse.
func encode(format Format, values map[string]string) ([]byte, error) {
	typed := make(map[string]any, len(values))
	for k, v := range values {
		typed[k] = typedValue(v)
	}
	switch format {
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(typed); err != nil {
			return nil, fmt.Errorf("encode toml: %w", err)
		}
		return buf.Bytes(), nil
	case FormatINI:
		file := ini.Empty()
		section := file.Section(ini.DefaultSection)
		for _, k := range NewSnapshot(values).Keys() {
			if _, err := section.NewKey(k, values[k]); err != nil {
				return nil, fmt.Errorf("encode ini: %w", err)
			}
		}
		var buf bytes.Buffer
		if _, err := file.WriteTo(&buf); err != nil {
			return nil, fmt.Errorf("encode ini: %w", err)
		}
		return buf.Bytes(), nil
	default:
		data, err := yaml.Marshal(typed)
		if err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}
		return data, nil
	}
}

// flatten converts decoded scalars to strings; nested tables are rejected.
func flatten(raw map[string]any) (map[string]string, error) {
	out := make(map[string]string, len(raw))
	for k, v := range raw {
		switch val := v.(type) {
		case nil:
			continue
		case string:
			out[k] = val
		case bool:
			out[k] = strconv.FormatBool(val)
		case int:
			out[k] = strconv.Itoa(val)
		case int64:
			out[k] = strconv.FormatInt(val, 10)
		case float64:
			out[k] = strconv.FormatFloat(val, 'f', -1, 64)
		default:
			return nil, fmt.Errorf("setting %q: unsupported value %T", k, v)
		}
	}
	return out, nil
}

// typedValue returns v as bool or int when it parses as one.
func typedValue(v string) any {
	if b, err := strconv.ParseBool(v); err == nil && (v == "true" || v == "false") {
		return b
	}
	if n, err := strconv.ParseInt(v, 10, 64); err == nil {
		return n
	}
	return v
}

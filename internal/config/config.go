// Package config loads environment configuration for DeskPad.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	defaultListenAddr = "0.0.0.0:8787"
	defaultAgentAddr  = "0.0.0.0:8788"
	defaultDataDir    = "./data"
	defaultTarget     = "local"
	defaultRelayRetry = 5
	settingsFile      = "settings.yaml"
)

// Password modes.
const (
	// PasswordRequired guards the UI and the agent with UI_PASSWORD.
	PasswordRequired = "required"
	// PasswordNone disables authentication, for trusted networks only.
	PasswordNone = "none"
)

// Config holds runtime configuration values.
type Config struct {
	ListenAddr    string
	AgentAddr     string
	DataDir       string
	SettingsPath  string
	UIPassword    string
	PasswordMode  string
	Target        string
	RelayURL      string
	RelayRetrySec int
	WebRTCEnabled bool
}

// Load reads configuration from <DATA_DIR>/.env and environment variables.
func Load() (Config, error) {
	cfg := Config{
		ListenAddr:    defaultListenAddr,
		AgentAddr:     defaultAgentAddr,
		DataDir:       envString("DATA_DIR", defaultDataDir),
		PasswordMode:  PasswordRequired,
		Target:        defaultTarget,
		RelayRetrySec: defaultRelayRetry,
		WebRTCEnabled: true,
	}

	if err := loadEnvFile(filepath.Join(cfg.DataDir, ".env")); err != nil {
		return Config{}, err
	}

	cfg.ListenAddr = envString("LISTEN_ADDR", cfg.ListenAddr)
	cfg.AgentAddr = envString("AGENT_ADDR", cfg.AgentAddr)
	cfg.SettingsPath = envString("SETTINGS_PATH", filepath.Join(cfg.DataDir, settingsFile))
	cfg.UIPassword = strings.TrimSpace(os.Getenv("UI_PASSWORD"))
	cfg.Target = envString("TARGET", cfg.Target)
	cfg.RelayURL = envString("RELAY_URL", "")
	cfg.WebRTCEnabled = envBool("WEBRTC_ENABLED", cfg.WebRTCEnabled)

	retry, err := envInt("RELAY_RETRY_SEC", cfg.RelayRetrySec)
	if err != nil {
		return Config{}, err
	}
	if retry <= 0 {
		return Config{}, fmt.Errorf("RELAY_RETRY_SEC must be > 0")
	}
	cfg.RelayRetrySec = retry

	mode, err := normalizePasswordMode(envString("PASSWORD_MODE", cfg.PasswordMode))
	if err != nil {
		return Config{}, err
	}
	cfg.PasswordMode = mode

	if cfg.RelayURL != "" && !strings.HasPrefix(cfg.RelayURL, "ws://") && !strings.HasPrefix(cfg.RelayURL, "wss://") {
		return Config{}, fmt.Errorf("RELAY_URL must be a ws:// or wss:// URL")
	}
	if cfg.PasswordMode == PasswordRequired && cfg.UIPassword == "" {
		return Config{}, errors.New("UI_PASSWORD is required")
	}

	return cfg, nil
}

// normalizePasswordMode validates PASSWORD_MODE.
func normalizePasswordMode(value string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", PasswordRequired:
		return PasswordRequired, nil
	case PasswordNone, "off":
		return PasswordNone, nil
	default:
		return "", fmt.Errorf("PASSWORD_MODE must be %q or %q", PasswordRequired, PasswordNone)
	}
}

// envString returns an env override when present, otherwise a default.
func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// envInt returns an int env override when present, otherwise a default.
func envInt(key string, def int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return value, nil
}

// envBool returns a bool env override when present, otherwise a default.
func envBool(key string, def bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	switch strings.ToLower(raw) {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}

// loadEnvFile loads KEY=VALUE pairs from a .env file.
func loadEnvFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}

	for _, line := range strings.Split(string(data), "\n") {
		key, value, ok := parseEnvLine(line)
		if !ok {
			continue
		}
		if _, exists := os.LookupEnv(key); !exists {
			if err := os.Setenv(key, value); err != nil {
				return err
			}
		}
	}

	return nil
}

// parseEnvLine parses a single .env line into key/value.
func parseEnvLine(line string) (string, string, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}
	if strings.HasPrefix(line, "export ") {
		line = strings.TrimSpace(strings.TrimPrefix(line, "export "))
	}
	parts := strings.SplitN(line, "=", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	key := strings.TrimSpace(parts[0])
	value := strings.TrimSpace(parts[1])
	if key == "" {
		return "", "", false
	}
	value = strings.Trim(value, `"'`)
	return key, value, true
}

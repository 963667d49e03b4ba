package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

type Config struct {
	LogLevel      string       `json:"log_level"`
	Language      string       `json:"language"` // default checked tray language
	Notifications bool         `json:"notifications"`
	Inject        InjectConfig `json:"inject"`
}

// InjectConfig tunes the settle delays around the paste keystroke.
// The values are empirical and platform-dependent; see inject.Injector.
type InjectConfig struct {
	ClipboardSettleMS int `json:"clipboard_settle_ms"`
	PasteSettleMS     int `json:"paste_settle_ms"`
}

// Load reads the config from disk or returns defaults. The shell never
// writes the file back: this is startup configuration, not settings
// storage.
func Load() (*Config, error) {
	path := configPath()

	cfg := &Config{
		LogLevel:      "info",
		Language:      "fr",
		Notifications: true,
		Inject: InjectConfig{
			ClipboardSettleMS: 5,
			PasteSettleMS:     10,
		},
	}

	if data, err := os.ReadFile(path); err == nil {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	return cfg, nil
}

// configPath returns the platform-specific config file path
func configPath() string {
	var base string

	switch runtime.GOOS {
	case "darwin":
		base = os.Getenv("HOME") + "/Library/Application Support"
	case "windows":
		base = os.Getenv("APPDATA")
	default: // linux
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			base = xdg
		} else {
			base = os.Getenv("HOME") + "/.config"
		}
	}

	return filepath.Join(base, "openwhisper", "config.json")
}

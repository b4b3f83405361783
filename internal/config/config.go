// Package config loads claude-notify preferences from the config hierarchy.
// Priority: environment variables > user config file > built-in defaults.
// The --sound flag, handled by the CLI layer, overrides all of these.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/quietfold/claude-notify/internal/sound"
)

// envPrefix namespaces the tool's environment variables,
// e.g. CLAUDE_NOTIFY_SOUND=Submarine.
const envPrefix = "CLAUDE_NOTIFY_"

// Config holds user preferences for the notifier
type Config struct {
	// Sound is the default sound name or file path used when --sound is
	// not given.
	Sound string `koanf:"sound" validate:"required"`

	// Preview plays the selected sound during interactive setup.
	Preview bool `koanf:"preview"`
}

// Defaults returns the built-in configuration values
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"sound":   sound.DefaultName,
		"preview": true,
	}
}

// UserConfigPath returns the user-level config file location,
// ~/.config/claude-notify/config.json.
func UserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate home directory: %w", err)
	}
	return filepath.Join(home, ".config", "claude-notify", "config.json"), nil
}

// Load loads configuration from defaults, the config file at path, and
// environment variables, lowest to highest priority. An empty path falls
// back to the user config location; a missing file is not an error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	for key, value := range Defaults() {
		k.Set(key, value)
	}

	if path == "" {
		userPath, err := UserConfigPath()
		if err == nil {
			path = userPath
		}
	}
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load config %s: %w", path, err)
			}
		}
	}

	k.Load(env.Provider(envPrefix, ".", envTransform), nil)

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// envTransform converts environment variable names to config keys
// Example: CLAUDE_NOTIFY_SOUND -> sound
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, envPrefix))
}

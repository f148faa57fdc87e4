package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// DiscoverConfig holds repository discovery settings.
type DiscoverConfig struct {
	Exclude []string `toml:"exclude"` // directory names skipped in addition to node_modules
}

// Preferences is the user-level configuration file.
type Preferences struct {
	Nerdfont bool           `toml:"nerdfont"` // use nerd font symbols in output
	Discover DiscoverConfig `toml:"discover"`
}

// DefaultPreferencesPath returns ~/.config/vault/config.toml, or an empty
// string when the home directory is unknown.
func DefaultPreferencesPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "vault", "config.toml")
}

// LoadPreferences reads the preferences file at path.
// Returns empty preferences if path is empty or the file doesn't exist (no error).
// Returns error only if file exists but is invalid.
func LoadPreferences(path string) (Preferences, error) {
	if path == "" {
		return Preferences{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Preferences{}, nil
		}
		return Preferences{}, fmt.Errorf("failed to read config file: %w", err)
	}

	var prefs Preferences
	if err := toml.Unmarshal(data, &prefs); err != nil {
		return Preferences{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := validateExclude(prefs.Discover.Exclude); err != nil {
		return Preferences{}, fmt.Errorf("%s: %w", path, err)
	}

	return prefs, nil
}

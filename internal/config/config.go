package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnvFileName is the name of the configuration file inside the vault root.
const EnvFileName = ".env"

// ErrSourcesMissing is returned when no source roots are configured.
var ErrSourcesMissing = errors.New("SOURCES is not configured")

// Key documents a recognized .env key.
type Key struct {
	Name        string
	Required    bool
	Description string
}

// Keys lists the recognized .env keys in help order.
var Keys = []Key{
	{Name: "SOURCES", Required: true, Description: "comma-separated source roots to discover repositories in; the first is the clone destination for 'vault add'"},
	{Name: "TEMPLATES", Description: "templates directory for document tooling (not used by vault)"},
	{Name: "ASSETS", Description: "assets directory for document tooling (not used by vault)"},
}

// Config is the frozen configuration for one run.
type Config struct {
	Root      string   // vault root (absolute)
	EnvFile   string   // path of the .env file that was read
	Sources   []string // source roots (absolute, in configured order)
	Templates string
	Assets    string
	Nerdfont  bool
	Discover  DiscoverConfig
}

// Load reads <root>/.env and the user preferences and returns the merged
// configuration. It fails with ErrSourcesMissing when SOURCES is empty.
// A broken preferences file is reported through warn and otherwise ignored.
func Load(root string, warn func(error)) (Config, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return Config{}, fmt.Errorf("resolve vault root: %w", err)
	}

	envFile := filepath.Join(root, EnvFileName)
	env, err := LoadEnv(envFile)
	if err != nil {
		return Config{}, err
	}

	sources, err := ParseSources(env.Sources, root)
	if err != nil {
		return Config{}, err
	}
	if len(sources) == 0 {
		return Config{}, fmt.Errorf("%w: add SOURCES=/path/one,/path/two to %s", ErrSourcesMissing, envFile)
	}

	prefs, err := LoadPreferences(DefaultPreferencesPath())
	if err != nil && warn != nil {
		warn(err)
	}

	return Config{
		Root:      root,
		EnvFile:   envFile,
		Sources:   sources,
		Templates: env.Templates,
		Assets:    env.Assets,
		Nerdfont:  prefs.Nerdfont,
		Discover:  prefs.Discover,
	}, nil
}

// ParseSources splits a comma-separated SOURCES value. Entries are trimmed,
// blanks are dropped, ~ is expanded and relative entries are resolved
// against root. Duplicates keep their first position.
func ParseSources(value, root string) ([]string, error) {
	var sources []string
	seen := make(map[string]bool)

	for _, entry := range strings.Split(value, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		path, err := expandPath(entry)
		if err != nil {
			return nil, fmt.Errorf("expand source %q: %w", entry, err)
		}
		if !filepath.IsAbs(path) {
			path = filepath.Join(root, path)
		}
		path = filepath.Clean(path)

		if seen[path] {
			continue
		}
		seen[path] = true
		sources = append(sources, path)
	}

	return sources, nil
}

// expandPath expands ~ to the user's home directory
func expandPath(path string) (string, error) {
	if path == "~" {
		return os.UserHomeDir()
	}
	if strings.HasPrefix(path, "~/") || strings.HasPrefix(path, `~\`) {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	return path, nil
}

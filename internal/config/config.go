// Package config persists user preferences between runs.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	dirName  = "filter-workbench"
	fileName = "preferences.yaml"
)

// Preferences are the settings worth remembering between runs.
type Preferences struct {
	LastOpenedFile string `yaml:"last_opened_file,omitempty"`
	LastSavedFile  string `yaml:"last_saved_file,omitempty"`
	GrabURL        string `yaml:"grab_url"`
	LogLevel       string `yaml:"log_level"`
}

// Defaults returns the preferences used when no file exists yet.
func Defaults() Preferences {
	return Preferences{
		GrabURL:  "http://10.8.68.11/jpg/1/image.jpg",
		LogLevel: "info",
	}
}

// DefaultPath returns the preferences location under the user's config
// directory.
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving config directory: %w", err)
	}
	return filepath.Join(base, dirName, fileName), nil
}

// Load reads preferences from path. A missing file yields the defaults;
// a file that exists but cannot be parsed is an error. Fields left empty
// in the file fall back to their defaults.
func Load(path string) (Preferences, error) {
	prefs := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return prefs, nil
		}
		return prefs, fmt.Errorf("reading preferences %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &prefs); err != nil {
		return Defaults(), fmt.Errorf("parsing preferences %s: %w", path, err)
	}

	defaults := Defaults()
	if prefs.GrabURL == "" {
		prefs.GrabURL = defaults.GrabURL
	}
	if prefs.LogLevel == "" {
		prefs.LogLevel = defaults.LogLevel
	}
	return prefs, nil
}

// Save writes preferences to path, creating parent directories as
// needed.
func Save(path string, prefs Preferences) error {
	data, err := yaml.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("encoding preferences: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating preferences directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing preferences %s: %w", path, err)
	}
	return nil
}

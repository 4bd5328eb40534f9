// Package config handles loading and saving user settings for palpite.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SettingsFile is the file name of the settings inside the config directory.
const SettingsFile = "settings.yaml"

// Settings holds user preferences. The word catalog is not configurable.
type Settings struct {
	BigLetters bool   `yaml:"big_letters"` // Render revealed letters as block art
	Seed       int64  `yaml:"seed"`        // Word selection seed, 0 for random
	LogLevel   string `yaml:"log_level"`   // zerolog level name, "disabled" to turn off
	LogFile    string `yaml:"log_file"`    // Empty means <config dir>/palpite.log
}

// Default returns the settings used when no file exists.
func Default() Settings {
	return Settings{
		BigLetters: true,
		LogLevel:   "info",
	}
}

// Load reads settings from a YAML file. A missing file yields Default();
// keys absent from the file keep their default values.
func Load(path string) (Settings, error) {
	s := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("reading settings file: %w", err)
	}

	if err := yaml.Unmarshal(data, &s); err != nil {
		return Default(), fmt.Errorf("parsing settings file: %w", err)
	}

	return s, nil
}

// LoadDir loads settings.yaml from dir.
func LoadDir(dir string) (Settings, error) {
	return Load(filepath.Join(dir, SettingsFile))
}

// Save writes settings to a YAML file.
func Save(path string, s Settings) error {
	out, err := yaml.Marshal(&s)
	if err != nil {
		return fmt.Errorf("marshaling settings: %w", err)
	}

	if err := os.WriteFile(path, append([]byte(settingsHeader), out...), 0644); err != nil {
		return fmt.Errorf("writing settings file: %w", err)
	}

	return nil
}

const settingsHeader = `# palpite settings
#
# big_letters: draw revealed letters as large block art when the terminal is wide enough
# seed:        fixed seed for word selection (0 = random every run)
# log_level:   trace, debug, info, warn, error or disabled
# log_file:    where logs are written (default: palpite.log in this directory)

`

// LogPath returns the log file path, falling back to dir/palpite.log.
func (s Settings) LogPath(dir string) string {
	if s.LogFile != "" {
		return s.LogFile
	}
	return filepath.Join(dir, "palpite.log")
}

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "palpite"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "palpite"), nil
}

// EnsureConfigDir creates dir if it doesn't exist.
func EnsureConfigDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}

// Package paths resolves the configuration directory and notes file locations.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Default names under the platform and home directories.
const (
	AppDirName           = "noty"
	DefaultNotesFileName = ".noty_notes.json"
	ConfigFileName       = "config.yaml"
)

// Environment variable names for location overrides.
const (
	EnvConfigDir = "NOTY_CONFIG_DIR"
	EnvNotesFile = "NOTY_NOTES_FILE"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/noty (fallback ~/.config/noty)
// macOS:   ~/Library/Application Support/noty
// Windows: %APPDATA%/noty
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, AppDirName), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", AppDirName), nil
	default:
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, AppDirName), nil
	}
}

// DefaultNotesFile returns ~/.noty_notes.json.
func DefaultNotesFile() (string, error) {
	home, err := platformDir.homeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultNotesFileName), nil
}

// ResolveConfigDir returns the configuration directory following the precedence
// chain: flag > NOTY_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return absPath(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return absPath(env)
	}
	return DefaultConfigDir()
}

// ResolveNotesFile returns the notes file following the precedence chain:
// flag > configYAMLValue > NOTY_NOTES_FILE env > DefaultNotesFile().
func ResolveNotesFile(flag, configYAMLValue string) (string, error) {
	if flag != "" {
		return absPath(flag)
	}
	if configYAMLValue != "" {
		return absPath(configYAMLValue)
	}
	if env := os.Getenv(EnvNotesFile); env != "" {
		return absPath(env)
	}
	return DefaultNotesFile()
}

// ConfigFile returns the config.yaml path inside configDir.
func ConfigFile(configDir string) string {
	return filepath.Join(configDir, ConfigFileName)
}

// absPath expands a leading "~" to the home directory and makes p absolute.
func absPath(p string) (string, error) {
	if p == "~" || strings.HasPrefix(p, "~/") {
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		p = filepath.Join(home, strings.TrimPrefix(p, "~"))
	}
	return filepath.Abs(p)
}

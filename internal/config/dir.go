// Package config provides the configuration directory and settings file for tweetnotes.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// appName names the configuration directory.
const appName = "tweetnotes"

// EnvConfigHome overrides the configuration directory.
const EnvConfigHome = "TWEETNOTES_CONFIG_HOME"

// Dir returns the tweetnotes configuration directory.
//
// Resolution:
//   - $TWEETNOTES_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/tweetnotes if set (respects XDG on any platform)
//   - %AppData%/tweetnotes on Windows
//   - ~/.config/tweetnotes on macOS and Linux
func Dir() string {
	if dir := os.Getenv(EnvConfigHome); dir != "" {
		return dir
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, appName)
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName)
}

// DefaultPath returns the settings file path inside Dir, or "" if unknown.
func DefaultPath() string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

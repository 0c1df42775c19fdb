package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Settings are user defaults applied when the matching flag is omitted.
type Settings struct {
	OutputDir string `yaml:"output_dir"`
	Template  string `yaml:"template"`
	Timezone  string `yaml:"timezone"`
	LogLevel  string `yaml:"log_level"`
}

// Load reads settings from a YAML file. A missing file yields zero Settings.
func Load(path string) (Settings, error) {
	if path == "" {
		return Settings{}, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Settings{}, nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return settings, nil
}

// Pick returns flagValue if set, otherwise fallback.
func Pick(flagValue, fallback string) string {
	if flagValue != "" {
		return flagValue
	}
	return fallback
}

// Location resolves a time zone name. Empty and "Local" mean the system zone.
func Location(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("unknown time zone %q: %w", name, err)
	}
	return loc, nil
}

package config

import (
	"path/filepath"
	"runtime"
	"testing"
)

func TestDir_Default(t *testing.T) {
	// Clear overrides
	t.Setenv(EnvConfigHome, "")
	t.Setenv("XDG_CONFIG_HOME", "")

	dir := Dir()
	if dir == "" {
		t.Fatal("Dir() returned empty string")
	}

	if runtime.GOOS != "windows" {
		if filepath.Base(dir) != "tweetnotes" {
			t.Errorf("Dir() = %q, want path ending in 'tweetnotes'", dir)
		}
	}
}

func TestDir_ExplicitOverride(t *testing.T) {
	t.Setenv(EnvConfigHome, "/custom/path")
	if got := Dir(); got != "/custom/path" {
		t.Errorf("Dir() = %q, want %q", got, "/custom/path")
	}
	if got := DefaultPath(); got != filepath.Join("/custom/path", "config.yaml") {
		t.Errorf("DefaultPath() = %q", got)
	}
}

func TestDir_XDGOverride(t *testing.T) {
	t.Setenv(EnvConfigHome, "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg/config")
	if got := Dir(); got != filepath.Join("/xdg/config", "tweetnotes") {
		t.Errorf("Dir() = %q, want %q", got, filepath.Join("/xdg/config", "tweetnotes"))
	}
}

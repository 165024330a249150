// Package fs provides file-backed storage for session state and preferences.
package fs

import (
	"os"
	"path/filepath"
)

// DefaultConfigDir returns the default configuration directory for autodoc.
// Uses XDG_CONFIG_HOME if set, otherwise falls back to ~/.config/autodoc,
// or the system temp directory if home is unavailable.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "autodoc")
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(os.TempDir(), "autodoc")
	}
	return filepath.Join(home, ".config", "autodoc")
}

// DefaultDataDir returns the default data directory for autodoc, used for
// the review journal. Uses XDG_DATA_HOME if set, otherwise
// ~/.local/share/autodoc, or the system temp directory if home is
// unavailable.
func DefaultDataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "autodoc")
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(os.TempDir(), "autodoc")
	}
	return filepath.Join(home, ".local", "share", "autodoc")
}

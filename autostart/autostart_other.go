//go:build !windows

package autostart

import (
	"fmt"
	"os"
	"path/filepath"
)

// Store manages the user-scoped XDG autostart desktop entry.
type Store struct {
	dir string
}

// NewStore returns the desktop-entry-backed autostart store.
func NewStore() (*Store, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("locating user config dir: %w", err)
	}
	return newStoreAt(filepath.Join(configDir, "autostart")), nil
}

func newStoreAt(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) entryPath() string {
	return filepath.Join(s.dir, "runcat365.desktop")
}

// IsEnabled reports whether the autostart entry exists.
func (s *Store) IsEnabled() bool {
	_, err := os.Stat(s.entryPath())
	return err == nil
}

// Enable writes a desktop entry launching exePath at login.
func (s *Store) Enable(exePath string) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	entry := fmt.Sprintf("[Desktop Entry]\nType=Application\nName=%s\nExec=%s\nX-GNOME-Autostart-enabled=true\n", Name, exePath)
	return os.WriteFile(s.entryPath(), []byte(entry), 0o644)
}

// Disable removes the entry. Removing an absent entry is not an error.
func (s *Store) Disable() error {
	if err := os.Remove(s.entryPath()); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

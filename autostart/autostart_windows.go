//go:build windows

package autostart

import (
	"golang.org/x/sys/windows/registry"
)

const runKeyPath = `Software\Microsoft\Windows\CurrentVersion\Run`

// Store manages the user-scoped run-on-login registry entry.
type Store struct{}

// NewStore returns the registry-backed autostart store.
func NewStore() (*Store, error) {
	return &Store{}, nil
}

// IsEnabled reports whether the Run entry exists. A missing key or value
// simply reads as disabled.
func (s *Store) IsEnabled() bool {
	key, err := registry.OpenKey(registry.CURRENT_USER, runKeyPath, registry.QUERY_VALUE)
	if err != nil {
		return false
	}
	defer key.Close()

	_, _, err = key.GetStringValue(Name)
	return err == nil
}

// Enable registers exePath to run at login.
func (s *Store) Enable(exePath string) error {
	key, err := registry.OpenKey(registry.CURRENT_USER, runKeyPath, registry.SET_VALUE)
	if err != nil {
		return err
	}
	defer key.Close()

	return key.SetStringValue(Name, exePath)
}

// Disable removes the registration. Removing an absent entry is not an
// error.
func (s *Store) Disable() error {
	key, err := registry.OpenKey(registry.CURRENT_USER, runKeyPath, registry.SET_VALUE)
	if err != nil {
		return err
	}
	defer key.Close()

	if err := key.DeleteValue(Name); err != nil && err != registry.ErrNotExist {
		return err
	}
	return nil
}

//go:build !windows

package autostart

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestStoreToggle(t *testing.T) {
	store := newStoreAt(filepath.Join(t.TempDir(), "autostart"))

	if store.IsEnabled() {
		t.Fatal("fresh store should read as disabled")
	}

	if err := store.Enable("/usr/local/bin/runcat365"); err != nil {
		t.Fatalf("Enable failed: %v", err)
	}
	if !store.IsEnabled() {
		t.Fatal("store should read as enabled after Enable")
	}

	data, err := os.ReadFile(store.entryPath())
	if err != nil {
		t.Fatalf("reading desktop entry: %v", err)
	}
	if !strings.Contains(string(data), "Exec=/usr/local/bin/runcat365") {
		t.Errorf("desktop entry missing Exec line: %q", data)
	}

	if err := store.Disable(); err != nil {
		t.Fatalf("Disable failed: %v", err)
	}
	if store.IsEnabled() {
		t.Fatal("store should read as disabled after Disable")
	}

	// Disabling an absent entry is not an error.
	if err := store.Disable(); err != nil {
		t.Fatalf("second Disable failed: %v", err)
	}
}

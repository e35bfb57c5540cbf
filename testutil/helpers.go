package testutil

import (
	"path/filepath"
	"testing"

	"github.com/becurrie/workday/internal"
)

// WriteSettings persists settings into the given data directory the way the
// application lays it out, for commands that read them back.
func WriteSettings(t *testing.T, dataDir string, settings *internal.Settings) {
	t.Helper()
	if err := settings.Save(filepath.Join(dataDir, "settings.yaml")); err != nil {
		t.Fatalf("Failed to write settings fixture: %v", err)
	}
}

// LoadSettings reads the settings back from a data directory.
func LoadSettings(t *testing.T, dataDir string) *internal.Settings {
	t.Helper()
	settings, err := internal.LoadSettings(filepath.Join(dataDir, "settings.yaml"))
	if err != nil {
		t.Fatalf("Failed to load settings fixture: %v", err)
	}
	return settings
}

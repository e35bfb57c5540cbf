package internal

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings.ItineraryType != MultipleEvents {
		t.Errorf("default itinerary type = %q, want multiple_events", settings.ItineraryType)
	}
	if settings.MinimumEventDuration != 5 {
		t.Errorf("default minimum duration = %d, want 5", settings.MinimumEventDuration)
	}
	if settings.HardcodedStartTime != nil || settings.HardcodedEndTime != nil {
		t.Error("default clamp hours should be unset")
	}
}

func TestLoadSettings_MissingFile(t *testing.T) {
	settings, err := LoadSettings(filepath.Join(t.TempDir(), "settings.yaml"))
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	if settings.ItineraryType != MultipleEvents || settings.MinimumEventDuration != 5 {
		t.Errorf("LoadSettings() on missing file = %+v, want defaults", settings)
	}
}

func TestSettings_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")

	settings := DefaultSettings()
	settings.Repositories = []string{"/repo/a", "/repo/b"}
	settings.ItineraryType = SingleEvent
	settings.MinimumEventDuration = 15
	settings.HardcodedStartTime = intPtr(7)
	settings.HardcodedEndTime = intPtr(17)

	if err := settings.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	if loaded.ItineraryType != SingleEvent {
		t.Errorf("loaded itinerary type = %q, want single_event", loaded.ItineraryType)
	}
	if loaded.MinimumEventDuration != 15 {
		t.Errorf("loaded minimum duration = %d, want 15", loaded.MinimumEventDuration)
	}
	if loaded.HardcodedStartTime == nil || *loaded.HardcodedStartTime != 7 {
		t.Errorf("loaded start hour = %v, want 7", loaded.HardcodedStartTime)
	}
	if loaded.HardcodedEndTime == nil || *loaded.HardcodedEndTime != 17 {
		t.Errorf("loaded end hour = %v, want 17", loaded.HardcodedEndTime)
	}
	if len(loaded.Repositories) != 2 {
		t.Errorf("loaded repositories = %v, want 2 entries", loaded.Repositories)
	}
}

func TestLoadSettings_PartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("minimum_event_duration: 10\n"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	settings, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	if settings.MinimumEventDuration != 10 {
		t.Errorf("minimum duration = %d, want 10", settings.MinimumEventDuration)
	}
	if settings.ItineraryType != MultipleEvents {
		t.Errorf("itinerary type = %q, want default multiple_events", settings.ItineraryType)
	}
}

func TestSettings_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Settings)
		wantErr bool
	}{
		{
			name:   "defaults are valid",
			mutate: func(s *Settings) {},
		},
		{
			name:   "all clamp hours set",
			mutate: func(s *Settings) { s.HardcodedStartTime = intPtr(6); s.HardcodedEndTime = intPtr(15) },
		},
		{
			name:    "unsupported duration",
			mutate:  func(s *Settings) { s.MinimumEventDuration = 7 },
			wantErr: true,
		},
		{
			name:    "unsupported itinerary type",
			mutate:  func(s *Settings) { s.ItineraryType = "hourly" },
			wantErr: true,
		},
		{
			name:    "start hour outside morning window",
			mutate:  func(s *Settings) { s.HardcodedStartTime = intPtr(9) },
			wantErr: true,
		},
		{
			name:    "end hour outside afternoon window",
			mutate:  func(s *Settings) { s.HardcodedEndTime = intPtr(12) },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := DefaultSettings()
			tt.mutate(settings)

			err := settings.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSettings_MinimumDuration(t *testing.T) {
	settings := DefaultSettings()
	settings.MinimumEventDuration = 30

	if got := settings.MinimumDuration(); got != 30*time.Minute {
		t.Errorf("MinimumDuration() = %v, want 30m", got)
	}
}

func TestSettings_TrackUntrack(t *testing.T) {
	settings := DefaultSettings()

	settings.Track("/repo/a")
	if !settings.Tracks("/repo/a") {
		t.Error("Tracks() = false after Track()")
	}
	if settings.Tracks("/repo/b") {
		t.Error("Tracks() = true for untracked repository")
	}

	if !settings.Untrack("/repo/a") {
		t.Error("Untrack() = false for tracked repository")
	}
	if settings.Tracks("/repo/a") {
		t.Error("Tracks() = true after Untrack()")
	}
	if settings.Untrack("/repo/a") {
		t.Error("Untrack() = true for already-removed repository")
	}
}

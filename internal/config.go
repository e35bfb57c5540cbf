package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// ItineraryType selects how a day's sessions are projected into events.
type ItineraryType string

const (
	// MultipleEvents emits one event per qualifying branch switch.
	MultipleEvents ItineraryType = "multiple_events"
	// SingleEvent collapses the whole day into one merged event.
	SingleEvent ItineraryType = "single_event"
)

// Valid reports whether the itinerary type is supported.
func (t ItineraryType) Valid() bool {
	return t == MultipleEvents || t == SingleEvent
}

var (
	allowedDurations  = []int{5, 10, 15, 30}
	allowedStartHours = []int{6, 7, 8}
	allowedEndHours   = []int{15, 16, 17}
)

// Settings are the user-editable options, persisted as a YAML file.
// Hour fields are nil when no clamping is configured.
type Settings struct {
	Repositories         []string      `yaml:"repositories"`
	ItineraryType        ItineraryType `yaml:"itinerary_type"`
	MinimumEventDuration int           `yaml:"minimum_event_duration"`
	HardcodedStartTime   *int          `yaml:"hardcoded_start_time"`
	HardcodedEndTime     *int          `yaml:"hardcoded_end_time"`
}

// DefaultSettings returns the out-of-the-box configuration.
func DefaultSettings() *Settings {
	return &Settings{
		Repositories:         []string{},
		ItineraryType:        MultipleEvents,
		MinimumEventDuration: 5,
	}
}

// LoadSettings reads the settings file, filling in defaults for anything
// missing. A missing file yields the defaults. Values outside the supported
// sets are rejected.
func LoadSettings(path string) (*Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return settings, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	if settings.ItineraryType == "" {
		settings.ItineraryType = MultipleEvents
	}
	if settings.MinimumEventDuration == 0 {
		settings.MinimumEventDuration = 5
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// Save writes the settings back to disk, creating the directory if needed.
func (s *Settings) Save(path string) error {
	if err := s.Validate(); err != nil {
		return err
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create settings directory: %w", err)
		}
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks every setting against its supported value set.
func (s *Settings) Validate() error {
	if !s.ItineraryType.Valid() {
		return &ConfigError{Key: "itinerary_type", Value: string(s.ItineraryType)}
	}
	if !containsInt(allowedDurations, s.MinimumEventDuration) {
		return &ConfigError{Key: "minimum_event_duration", Value: s.MinimumEventDuration}
	}
	if s.HardcodedStartTime != nil && !containsInt(allowedStartHours, *s.HardcodedStartTime) {
		return &ConfigError{Key: "hardcoded_start_time", Value: *s.HardcodedStartTime}
	}
	if s.HardcodedEndTime != nil && !containsInt(allowedEndHours, *s.HardcodedEndTime) {
		return &ConfigError{Key: "hardcoded_end_time", Value: *s.HardcodedEndTime}
	}
	return nil
}

// MinimumDuration returns the minimum event duration as a time.Duration.
func (s *Settings) MinimumDuration() time.Duration {
	return time.Duration(s.MinimumEventDuration) * time.Minute
}

// Tracks reports whether the repository path is already tracked.
func (s *Settings) Tracks(repoPath string) bool {
	for _, repo := range s.Repositories {
		if repo == repoPath {
			return true
		}
	}
	return false
}

// Track appends a repository to the tracked list.
func (s *Settings) Track(repoPath string) {
	s.Repositories = append(s.Repositories, repoPath)
}

// Untrack removes a repository from the tracked list. Returns false when the
// repository was not tracked.
func (s *Settings) Untrack(repoPath string) bool {
	for i, repo := range s.Repositories {
		if repo == repoPath {
			s.Repositories = append(s.Repositories[:i], s.Repositories[i+1:]...)
			return true
		}
	}
	return false
}

func containsInt(values []int, v int) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}

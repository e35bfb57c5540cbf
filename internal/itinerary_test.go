package internal

import (
	"errors"
	"testing"
	"time"
)

func day(year int, month time.Month, dayOfMonth, hour, minute int) time.Time {
	return time.Date(year, month, dayOfMonth, hour, minute, 0, 0, time.UTC)
}

func TestGenerate_EndToEnd(t *testing.T) {
	// Reflog: yesterday 09:00 -> feature/X, today 09:00 -> feature/Y,
	// today 11:30 -> feature/Z. Generated at noon today.
	lines := []string{
		reflogLine("aaa1111", day(2024, 1, 1, 9, 0), "main", "feature/X"),
		reflogLine("bbb2222", day(2024, 1, 2, 9, 0), "feature/X", "feature/Y"),
		reflogLine("ccc3333", day(2024, 1, 2, 11, 30), "feature/Y", "feature/Z"),
	}
	now := day(2024, 1, 2, 12, 0)

	builder := newTestBuilder(t, lines, DefaultSettings(), now)
	itinerary, err := builder.Generate("/repo")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if len(itinerary.Events) != 2 {
		t.Fatalf("Generate() produced %d events, want 2", len(itinerary.Events))
	}

	first := itinerary.Events[0]
	if first.Branch != "feature/Y" {
		t.Errorf("first event branch = %q, want feature/Y", first.Branch)
	}
	if !first.Start.Equal(day(2024, 1, 2, 9, 0)) || !first.End.Equal(day(2024, 1, 2, 11, 30)) {
		t.Errorf("first event window = %v-%v, want 09:00-11:30", first.Start, first.End)
	}
	if first.Duration != 2*time.Hour+30*time.Minute {
		t.Errorf("first event duration = %v, want 2h30m", first.Duration)
	}

	second := itinerary.Events[1]
	if second.Branch != "feature/Z" {
		t.Errorf("second event branch = %q, want feature/Z", second.Branch)
	}
	if !second.End.Equal(now) {
		t.Errorf("second event end = %v, want now (%v)", second.End, now)
	}
	if second.Duration != 30*time.Minute {
		t.Errorf("second event duration = %v, want 30m", second.Duration)
	}
}

func TestGenerate_NoPriorDayActivity(t *testing.T) {
	lines := []string{
		reflogLine("aaa1111", day(2024, 1, 2, 9, 0), "main", "feature/X"),
	}

	builder := newTestBuilder(t, lines, DefaultSettings(), day(2024, 1, 2, 12, 0))
	_, err := builder.Generate("/repo")
	if !errors.Is(err, ErrNoPriorActivity) {
		t.Errorf("Generate() error = %v, want ErrNoPriorActivity", err)
	}
}

func TestGenerate_MinimumDurationBoundary(t *testing.T) {
	tests := []struct {
		name       string
		secondTime time.Time
		wantEvents int
	}{
		{
			// Exactly the 5 minute threshold is excluded (strict >).
			name:       "exactly minimum excluded",
			secondTime: day(2024, 1, 2, 9, 5),
			wantEvents: 1,
		},
		{
			name:       "over minimum included",
			secondTime: day(2024, 1, 2, 9, 5).Add(time.Second),
			wantEvents: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := []string{
				reflogLine("aaa1111", day(2024, 1, 1, 17, 0), "main", "feature/carry"),
				reflogLine("bbb2222", day(2024, 1, 2, 9, 0), "feature/carry", "feature/A"),
				reflogLine("ccc3333", tt.secondTime, "feature/A", "feature/B"),
			}

			builder := newTestBuilder(t, lines, DefaultSettings(), day(2024, 1, 2, 12, 0))
			itinerary, err := builder.Generate("/repo")
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}
			if len(itinerary.Events) != tt.wantEvents {
				t.Errorf("Generate() produced %d events, want %d", len(itinerary.Events), tt.wantEvents)
			}
		})
	}
}

func TestGenerate_StartClamp(t *testing.T) {
	settings := DefaultSettings()
	settings.HardcodedStartTime = intPtr(7)

	lines := []string{
		reflogLine("aaa1111", day(2024, 1, 1, 20, 0), "main", "feature/W"),
		reflogLine("bbb2222", day(2024, 1, 2, 5, 30), "feature/W", "feature/X"),
		reflogLine("ccc3333", day(2024, 1, 2, 9, 0), "feature/X", "feature/Y"),
	}

	builder := newTestBuilder(t, lines, settings, day(2024, 1, 2, 12, 0))
	itinerary, err := builder.Generate("/repo")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	var clamped *Event
	for i := range itinerary.Events {
		if itinerary.Events[i].Branch == "feature/X" {
			clamped = &itinerary.Events[i]
		}
	}
	if clamped == nil {
		t.Fatalf("Generate() produced no event for feature/X: %+v", itinerary.Events)
	}
	if !clamped.Start.Equal(day(2024, 1, 2, 7, 0)) {
		t.Errorf("clamped start = %v, want 07:00 today", clamped.Start)
	}
	if clamped.Duration != 2*time.Hour {
		t.Errorf("clamped duration = %v, want 2h", clamped.Duration)
	}
}

func TestGenerate_EndClamp(t *testing.T) {
	settings := DefaultSettings()
	settings.HardcodedEndTime = intPtr(17)

	lines := []string{
		reflogLine("aaa1111", day(2024, 1, 1, 9, 0), "main", "feature/X"),
		reflogLine("bbb2222", day(2024, 1, 2, 9, 0), "feature/X", "feature/Y"),
	}

	// The open session would end at 18:45; the clamp caps it at 17:00.
	builder := newTestBuilder(t, lines, settings, day(2024, 1, 2, 18, 45))
	itinerary, err := builder.Generate("/repo")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if len(itinerary.Events) != 1 {
		t.Fatalf("Generate() produced %d events, want 1", len(itinerary.Events))
	}
	event := itinerary.Events[0]
	if event.Branch != "feature/Y" {
		t.Errorf("event branch = %q, want feature/Y", event.Branch)
	}
	if !event.End.Equal(day(2024, 1, 2, 17, 0)) {
		t.Errorf("clamped end = %v, want 17:00 same date", event.End)
	}
	if event.Duration != 8*time.Hour {
		t.Errorf("clamped duration = %v, want 8h", event.Duration)
	}
}

func TestGenerate_SingleEventAggregation(t *testing.T) {
	settings := DefaultSettings()
	settings.ItineraryType = SingleEvent

	// feature/ABC-1 visited twice (30m + 45m), feature/ABC-2 once (20m);
	// the final hop to feature/other lasts exactly 5m and is filtered.
	lines := []string{
		reflogLine("aaa1111", day(2024, 1, 1, 18, 0), "feature/prep", "main"),
		reflogLine("bbb2222", day(2024, 1, 2, 9, 0), "main", "feature/ABC-1"),
		reflogLine("ccc3333", day(2024, 1, 2, 9, 30), "feature/ABC-1", "feature/ABC-2"),
		reflogLine("ddd4444", day(2024, 1, 2, 9, 50), "feature/ABC-2", "feature/ABC-1"),
		reflogLine("eee5555", day(2024, 1, 2, 10, 35), "feature/ABC-1", "feature/other"),
	}

	builder := newTestBuilder(t, lines, settings, day(2024, 1, 2, 10, 40))
	itinerary, err := builder.Generate("/repo")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if len(itinerary.Events) != 1 {
		t.Fatalf("Generate() produced %d events, want 1 merged event", len(itinerary.Events))
	}
	event := itinerary.Events[0]

	if !event.Start.Equal(day(2024, 1, 2, 9, 0)) || !event.End.Equal(day(2024, 1, 2, 10, 35)) {
		t.Errorf("merged window = %v-%v, want 09:00-10:35", event.Start, event.End)
	}
	if len(event.Branches) != 2 {
		t.Fatalf("merged branches = %v, want 2", event.Branches)
	}
	if event.Branches[0] != "feature/ABC-1" || event.Branches[1] != "feature/ABC-2" {
		t.Errorf("merged branches = %v, want [feature/ABC-1 feature/ABC-2]", event.Branches)
	}
	if event.Issues[0] != "ABC-1" || event.Issues[1] != "ABC-2" {
		t.Errorf("merged issues = %v, want [ABC-1 ABC-2]", event.Issues)
	}
	if got := event.Durations["feature/ABC-1"]; got != time.Hour+15*time.Minute {
		t.Errorf("feature/ABC-1 accumulated = %v, want 1h15m", got)
	}
	if got := event.Durations["feature/ABC-2"]; got != 20*time.Minute {
		t.Errorf("feature/ABC-2 accumulated = %v, want 20m", got)
	}
}

func TestGenerate_InvalidItineraryType(t *testing.T) {
	settings := DefaultSettings()
	settings.ItineraryType = "bogus"

	builder := newTestBuilder(t, nil, settings, day(2024, 1, 2, 12, 0))
	_, err := builder.Generate("/repo")

	var configErr *ConfigError
	if !errors.As(err, &configErr) {
		t.Errorf("Generate() error = %v, want *ConfigError", err)
	}
}

func TestGenerate_CarriedSessionNotReported(t *testing.T) {
	// Without a start clamp, the bridged session that began yesterday only
	// anchors today's first switch; it is not billed to today.
	lines := []string{
		reflogLine("aaa1111", day(2024, 1, 1, 9, 0), "main", "feature/X"),
		reflogLine("bbb2222", day(2024, 1, 2, 9, 0), "feature/X", "feature/Y"),
	}

	builder := newTestBuilder(t, lines, DefaultSettings(), day(2024, 1, 2, 12, 0))
	itinerary, err := builder.Generate("/repo")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	for _, event := range itinerary.Events {
		if event.Branch == "feature/X" {
			t.Errorf("carried-over session for feature/X was reported: %+v", event)
		}
	}
}

func TestIssueFromBranch(t *testing.T) {
	tests := []struct {
		branch string
		want   string
	}{
		{"feature/ABC-123", "ABC-123"},
		{"main", "main"},
		{"release/2024/hotfix", "hotfix"},
		{"bugfix/", ""},
	}

	for _, tt := range tests {
		t.Run(tt.branch, func(t *testing.T) {
			if got := IssueFromBranch(tt.branch); got != tt.want {
				t.Errorf("IssueFromBranch(%q) = %q, want %q", tt.branch, got, tt.want)
			}
		})
	}
}

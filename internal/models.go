package internal

import (
	"strings"
	"time"
)

// CheckoutRecord is the structured form of one reflog checkout entry.
type CheckoutRecord struct {
	Commit    string    `json:"commit" yaml:"commit"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	Message   string    `json:"message" yaml:"message"`
	Previous  string    `json:"previous" yaml:"previous"`
	Current   string    `json:"current" yaml:"current"`
}

// RepositoryState holds everything known about one repository's reflog:
// the raw checkout lines keyed by content hash, and their parsed records.
// Entries are only ever added, never retracted, except through Store.Reset.
type RepositoryState struct {
	Hashes map[string]string
	Parsed map[string]CheckoutRecord
}

// NewRepositoryState returns an empty state.
func NewRepositoryState() *RepositoryState {
	return &RepositoryState{
		Hashes: make(map[string]string),
		Parsed: make(map[string]CheckoutRecord),
	}
}

// Merge folds newly discovered entries into the state. Hashes already
// present are left untouched, so merging the same content twice is a no-op.
func (s *RepositoryState) Merge(raw map[string]string, parsed map[string]CheckoutRecord) {
	for hash, line := range raw {
		if _, ok := s.Hashes[hash]; ok {
			continue
		}
		s.Hashes[hash] = line
		if rec, ok := parsed[hash]; ok {
			s.Parsed[hash] = rec
		}
	}
}

// Clone returns an independent copy of the state. Mutating the copy never
// affects the original.
func (s *RepositoryState) Clone() *RepositoryState {
	out := NewRepositoryState()
	for hash, line := range s.Hashes {
		out.Hashes[hash] = line
	}
	for hash, rec := range s.Parsed {
		out.Parsed[hash] = rec
	}
	return out
}

// Session is the time spent on one branch between two consecutive checkout
// records (or between the last record and "now"). Derived per generation,
// never persisted.
type Session struct {
	Start    time.Time
	End      time.Time
	Duration time.Duration
	Branch   string
	Issue    string
}

// Event is one reportable itinerary entry. In multiple-events mode the
// Branch/Issue fields are set; in single-event mode the aggregate
// Branches/Issues/Durations fields are set instead.
type Event struct {
	Start     time.Time                `json:"start" yaml:"start"`
	End       time.Time                `json:"end" yaml:"end"`
	Duration  time.Duration            `json:"duration" yaml:"duration"`
	Branch    string                   `json:"branch,omitempty" yaml:"branch,omitempty"`
	Issue     string                   `json:"issue,omitempty" yaml:"issue,omitempty"`
	Branches  []string                 `json:"branches,omitempty" yaml:"branches,omitempty"`
	Issues    []string                 `json:"issues,omitempty" yaml:"issues,omitempty"`
	Durations map[string]time.Duration `json:"durations,omitempty" yaml:"durations,omitempty"`
}

// Itinerary is the ordered set of reportable events for one repository's day.
type Itinerary struct {
	Repository  string        `json:"repository" yaml:"repository"`
	Type        ItineraryType `json:"type" yaml:"type"`
	GeneratedAt time.Time     `json:"generated_at" yaml:"generated_at"`
	Events      []Event       `json:"events" yaml:"events"`
}

// IssueFromBranch extracts the issue key from a branch name: the segment
// after the last "/", or the whole name when there is none. "feature/ABC-123"
// yields "ABC-123", "main" yields "main".
func IssueFromBranch(branch string) string {
	if i := strings.LastIndex(branch, "/"); i >= 0 {
		return branch[i+1:]
	}
	return branch
}

package internal

import (
	"fmt"
	"sort"
	"time"
)

// pseudoRef marks the synthetic checkout entry that closes out the final
// open session at "now".
const pseudoRef = "pseudo"

// Builder reconstructs a repository's working day from its parsed checkout
// records and projects it into itinerary events.
type Builder struct {
	ingestor *Ingestor
	settings *Settings
	now      func() time.Time
}

// NewBuilder creates a Builder. The clock defaults to time.Now.
func NewBuilder(ingestor *Ingestor, settings *Settings) *Builder {
	return &Builder{
		ingestor: ingestor,
		settings: settings,
		now:      time.Now,
	}
}

// Generate produces today's itinerary for a repository: refresh the reflog
// state, bridge yesterday's last checkout into today's ordered records,
// stitch an open session ending now, clamp, filter, and project per the
// configured itinerary type.
func (b *Builder) Generate(repoPath string) (*Itinerary, error) {
	if !b.settings.ItineraryType.Valid() {
		return nil, &ConfigError{Key: "itinerary_type", Value: string(b.settings.ItineraryType)}
	}

	state, err := b.ingestor.Refresh(repoPath)
	if err != nil {
		return nil, err
	}

	now := b.now()
	today := civilDate(now)
	priorDay := civilDate(now.AddDate(0, 0, -1))

	var yesterdayRecs, todayRecs []CheckoutRecord
	for _, rec := range state.Parsed {
		switch civilDate(rec.Timestamp) {
		case today:
			todayRecs = append(todayRecs, rec)
		case priorDay:
			yesterdayRecs = append(yesterdayRecs, rec)
		}
	}

	if len(yesterdayRecs) == 0 {
		return nil, fmt.Errorf("%s: %w", repoPath, ErrNoPriorActivity)
	}

	sortByTimestamp(yesterdayRecs)
	sortByTimestamp(todayRecs)

	// The latest record from yesterday bounds today's first session.
	combined := make([]CheckoutRecord, 0, len(todayRecs)+1)
	combined = append(combined, yesterdayRecs[len(yesterdayRecs)-1])
	combined = append(combined, todayRecs...)

	sessions := b.buildSessions(combined, now, today)

	var events []Event
	switch b.settings.ItineraryType {
	case MultipleEvents:
		events = multipleEvents(sessions)
	case SingleEvent:
		events = singleEvent(sessions)
	}

	return &Itinerary{
		Repository:  repoPath,
		Type:        b.settings.ItineraryType,
		GeneratedAt: now,
		Events:      events,
	}, nil
}

// buildSessions walks the combined record list pairwise, closing the final
// record against a pseudo-successor at now. Clamped end times are written
// back so the next session starts where the previous one was cut off.
func (b *Builder) buildSessions(records []CheckoutRecord, now time.Time, today string) []Session {
	minDuration := b.settings.MinimumDuration()

	var sessions []Session
	for i := range records {
		cur := records[i]

		var next CheckoutRecord
		if i+1 < len(records) {
			next = records[i+1]
		} else {
			next = CheckoutRecord{
				Commit:    pseudoRef,
				Timestamp: now.In(cur.Timestamp.Location()),
				Message:   pseudoRef,
				Previous:  cur.Current,
				Current:   pseudoRef,
			}
		}

		start := cur.Timestamp
		end := next.Timestamp

		if h := b.settings.HardcodedStartTime; h != nil {
			if start.Hour() < *h || civilDate(start) != today {
				start = time.Date(now.Year(), now.Month(), now.Day(), *h, 0, 0, 0, start.Location())
			}
		}
		if h := b.settings.HardcodedEndTime; h != nil {
			if end.Hour() > *h {
				end = time.Date(end.Year(), end.Month(), end.Day(), *h, 0, 0, 0, end.Location())
				if i+1 < len(records) {
					records[i+1].Timestamp = end
				}
			}
		}

		// A session still dated before today was carried over purely to
		// anchor today's first switch; it is not itself reportable.
		if civilDate(start) != today {
			continue
		}

		duration := end.Sub(start)
		if duration <= minDuration {
			continue
		}

		sessions = append(sessions, Session{
			Start:    start,
			End:      end,
			Duration: duration,
			Branch:   cur.Current,
			Issue:    IssueFromBranch(cur.Current),
		})
	}

	return sessions
}

func multipleEvents(sessions []Session) []Event {
	events := make([]Event, 0, len(sessions))
	for _, s := range sessions {
		events = append(events, Event{
			Start:    s.Start,
			End:      s.End,
			Duration: s.Duration,
			Branch:   s.Branch,
			Issue:    s.Issue,
		})
	}
	return events
}

// singleEvent collapses all sessions into one event spanning the day, with
// per-branch durations summed across repeat visits.
func singleEvent(sessions []Session) []Event {
	if len(sessions) == 0 {
		return nil
	}

	durations := make(map[string]time.Duration)
	var branches []string
	for _, s := range sessions {
		if _, ok := durations[s.Branch]; !ok {
			branches = append(branches, s.Branch)
		}
		durations[s.Branch] += s.Duration
	}
	sort.Strings(branches)

	issues := make([]string, len(branches))
	for i, branch := range branches {
		issues[i] = IssueFromBranch(branch)
	}

	start := sessions[0].Start
	end := sessions[len(sessions)-1].End

	return []Event{{
		Start:     start,
		End:       end,
		Duration:  end.Sub(start),
		Branches:  branches,
		Issues:    issues,
		Durations: durations,
	}}
}

func sortByTimestamp(records []CheckoutRecord) {
	sort.Slice(records, func(i, j int) bool {
		return records[i].Timestamp.Before(records[j].Timestamp)
	})
}

// civilDate renders a moment's calendar date in its own zone.
func civilDate(t time.Time) string {
	return t.Format("2006-01-02")
}

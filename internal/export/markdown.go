package export

import (
	"fmt"
	"io"

	"github.com/becurrie/workday/internal"
)

const timeLayout = "2006-01-02 15:04"

// MarkdownExporter exports itineraries in Markdown format
type MarkdownExporter struct{}

// Export exports an itinerary to Markdown format
func (e *MarkdownExporter) Export(itinerary *internal.Itinerary, w io.Writer) error {
	_, _ = fmt.Fprintf(w, "# Itinerary for %s\n\n", itinerary.Repository)
	_, _ = fmt.Fprintf(w, "**Date:** %s  \n", itinerary.GeneratedAt.Format("2006-01-02"))
	_, _ = fmt.Fprintf(w, "**Events:** %d\n\n", len(itinerary.Events))
	_, _ = fmt.Fprintf(w, "---\n\n")

	for i, event := range itinerary.Events {
		if len(event.Branches) > 0 {
			writeSingleEvent(w, event)
		} else {
			writeBranchEvent(w, event)
		}
		if i < len(itinerary.Events)-1 {
			_, _ = fmt.Fprintf(w, "---\n\n")
		}
	}

	return nil
}

// writeBranchEvent renders one branch-switch event.
func writeBranchEvent(w io.Writer, event internal.Event) {
	_, _ = fmt.Fprintf(w, "## %s\n\n", event.Branch)
	_, _ = fmt.Fprintf(w, "**Issue:** %s  \n", event.Issue)
	_, _ = fmt.Fprintf(w, "**From:** %s  \n", event.Start.Format(timeLayout))
	_, _ = fmt.Fprintf(w, "**To:** %s  \n", event.End.Format(timeLayout))
	_, _ = fmt.Fprintf(w, "**Duration:** %s\n\n", internal.FormatDuration(event.Duration))
}

// writeSingleEvent renders the merged daily event with per-branch totals.
func writeSingleEvent(w io.Writer, event internal.Event) {
	_, _ = fmt.Fprintf(w, "## %d Issues Worked On (%s)\n\n", len(event.Branches), internal.FormatDuration(event.Duration))
	_, _ = fmt.Fprintf(w, "**From:** %s  \n", event.Start.Format(timeLayout))
	_, _ = fmt.Fprintf(w, "**To:** %s\n\n", event.End.Format(timeLayout))

	for _, branch := range event.Branches {
		_, _ = fmt.Fprintf(w, "- **%s** (%s)\n", branch, internal.FormatDuration(event.Durations[branch]))
	}
	_, _ = fmt.Fprintf(w, "\n")
}

// Extension returns the file extension for this format
func (e *MarkdownExporter) Extension() string {
	return "md"
}

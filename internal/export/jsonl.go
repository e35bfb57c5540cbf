package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/becurrie/workday/internal"
)

// JSONLExporter exports itineraries in JSONL format (one event per line)
type JSONLExporter struct{}

// Export exports an itinerary to JSONL format
func (e *JSONLExporter) Export(itinerary *internal.Itinerary, w io.Writer) error {
	enc := json.NewEncoder(w)

	for _, event := range itinerary.Events {
		if err := enc.Encode(event); err != nil {
			return fmt.Errorf("failed to encode event: %w", err)
		}
	}

	return nil
}

// Extension returns the file extension for this format
func (e *JSONLExporter) Extension() string {
	return "jsonl"
}

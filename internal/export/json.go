package export

import (
	"encoding/json"
	"io"

	"github.com/becurrie/workday/internal"
)

// JSONExporter exports itineraries in JSON format (pretty-printed)
type JSONExporter struct{}

// Export exports an itinerary to JSON format
func (e *JSONExporter) Export(itinerary *internal.Itinerary, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(itinerary)
}

// Extension returns the file extension for this format
func (e *JSONExporter) Extension() string {
	return "json"
}

package export

import (
	"io"

	"github.com/becurrie/workday/internal"
	"gopkg.in/yaml.v3"
)

// YAMLExporter exports itineraries in YAML format
type YAMLExporter struct{}

// Export exports an itinerary to YAML format
func (e *YAMLExporter) Export(itinerary *internal.Itinerary, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer func() { _ = enc.Close() }()

	return enc.Encode(itinerary)
}

// Extension returns the file extension for this format
func (e *YAMLExporter) Extension() string {
	return "yaml"
}

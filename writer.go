package vubresto

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Writer serializes parsed weeks to JSON files in a single output
// directory, one file per restaurant, fully overwritten each run.
type Writer struct {
	outputDir string
}

// NewWriter creates a writer rooted at outputDir, creating the directory if
// it doesn't exist.
func NewWriter(outputDir string) (*Writer, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	return &Writer{outputDir: outputDir}, nil
}

// Path returns the output file path for a restaurant.
func (w *Writer) Path(key RestaurantKey) string {
	return filepath.Join(w.outputDir, strings.ToLower(key.String())+".json")
}

// Write overwrites "<campus>.<language>.json" with the restaurant's week.
// A failure only affects this restaurant; the caller logs it and moves on.
func (w *Writer) Write(key RestaurantKey, entries []MenuEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal menu entries: %w", err)
	}

	if err := os.WriteFile(w.Path(key), data, 0644); err != nil {
		return fmt.Errorf("failed to write menu file: %w", err)
	}

	return nil
}

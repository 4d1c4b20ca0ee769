package report

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// AutoFileName returns the timestamped default name for an exported report.
func AutoFileName(now time.Time) string {
	return "ilm_" + now.Format("20060102_150405") + ".json"
}

// Save writes the report to disk atomically as indented JSON.
func Save(r *Report, path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	data = append(data, '\n')

	// Write to temporary file first
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	// Atomic rename
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath) // Clean up temp file on failure
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}

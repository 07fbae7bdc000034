package bankfile

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Marshal serializes records as a 2-space-indented JSON array, the same
// layout the browser exporter produced.
func Marshal(records any) ([]byte, error) {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal records: %w", err)
	}
	return data, nil
}

// Filename returns the dated export name, e.g. "problems_2025-08-14.json".
func Filename(t time.Time) string {
	return fmt.Sprintf("problems_%s.json", t.Format("2006-01-02"))
}

// Write marshals records and writes them to path.
func Write(path string, records any) error {
	data, err := Marshal(records)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

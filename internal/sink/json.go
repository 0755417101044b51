// Package sink persists the output collection and run summary. A write
// failure is fatal to the run; no partial summary is left behind.
package sink

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/textsieve/textsieve/internal/model"
)

// WriteReport writes the full report — summary plus output collection — as
// pretty-printed JSON.
func WriteReport(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/alexanderramin/krisis/internal/domain"
)

var exportHeader = []string{
	"row_index", "priority", "story_points", "estimate_hours", "confidence", "rationale",
}

// WriteResults serializes predictions to a CSV file, one row per prediction
// in batch order.
func WriteResults(path string, predictions []domain.Prediction) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating results csv: %w", err)
	}
	defer f.Close()

	if err := writeResults(f, predictions); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func writeResults(w io.Writer, predictions []domain.Prediction) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(exportHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, p := range predictions {
		row := []string{
			strconv.Itoa(p.RowIndex),
			p.Priority.Label(),
			strconv.Itoa(p.StoryPoints),
			strconv.Itoa(p.EstimateHours),
			strconv.FormatFloat(p.Confidence, 'f', 2, 64),
			p.Rationale,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", p.RowIndex, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

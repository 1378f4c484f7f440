package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alexanderramin/krisis/internal/domain"
)

// Column aliases are matched case-insensitively against the header row.
var (
	summaryAliases     = []string{"summary", "title", "issue", "name"}
	descriptionAliases = []string{"description", "details", "body", "text"}
)

// ReadRecords reads issue rows from a CSV file. The first row must be a
// header containing a summary column or a description column (or both);
// rows where both cells are blank are kept, since the engine has a defined
// result for them. Short rows are padded, ragged rows are tolerated.
func ReadRecords(path string) ([]domain.TextRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening csv: %w", err)
	}
	defer f.Close()

	records, err := readRecords(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return records, nil
}

func readRecords(r io.Reader) ([]domain.TextRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // tolerate ragged rows
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("file is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	summaryCol := findColumn(header, summaryAliases)
	descriptionCol := findColumn(header, descriptionAliases)
	if summaryCol < 0 && descriptionCol < 0 {
		return nil, fmt.Errorf(
			"no summary or description column found (header: %s); accepted summary aliases: %s; description aliases: %s",
			strings.Join(header, ", "),
			strings.Join(summaryAliases, ", "),
			strings.Join(descriptionAliases, ", "))
	}

	var records []domain.TextRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row %d: %w", len(records)+2, err)
		}
		records = append(records, domain.TextRecord{
			Summary:     cell(row, summaryCol),
			Description: cell(row, descriptionCol),
		})
	}
	return records, nil
}

func findColumn(header []string, aliases []string) int {
	for _, alias := range aliases {
		for i, h := range header {
			if strings.EqualFold(strings.TrimSpace(h), alias) {
				return i
			}
		}
	}
	return -1
}

func cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}

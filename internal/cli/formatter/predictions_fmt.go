package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/krisis/internal/domain"
)

// FormatPredictions renders a prediction batch as a table plus a footer
// naming the batch source and size.
func FormatPredictions(batch *domain.Batch) string {
	if batch.Empty() {
		return Dim("No dataset loaded.") + "\n"
	}

	headers := []string{"Row", "Priority", "Points", "Hours", "Conf", "Rationale"}
	rows := make([][]string, 0, len(batch.Predictions))
	for _, p := range batch.Predictions {
		rows = append(rows, []string{
			strconv.Itoa(p.RowIndex),
			PriorityBadge(p.Priority),
			strconv.Itoa(p.StoryPoints),
			strconv.Itoa(p.EstimateHours),
			fmt.Sprintf("%.2f", p.Confidence),
			p.Rationale,
		})
	}

	var b strings.Builder
	b.WriteString(RenderTable(headers, rows))

	source := batch.SourceFile
	if source == "" {
		source = "(unnamed)"
	}
	fmt.Fprintf(&b, "%s\n", Dim(fmt.Sprintf("%d rows from %s, batch %s",
		len(batch.Predictions), source, batch.ID)))

	return b.String()
}

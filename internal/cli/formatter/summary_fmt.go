package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/krisis/internal/contract"
	"github.com/alexanderramin/krisis/internal/domain"
)

// FormatSummary renders the dataset summary: per-priority counts and
// batch-wide averages.
func FormatSummary(summary *contract.SummaryResponse) string {
	var b strings.Builder

	b.WriteString(Header("Dataset summary"))
	b.WriteString("\n")

	if summary.Rows == 0 {
		b.WriteString(Dim("No dataset loaded.") + "\n")
		return b.String()
	}

	rows := make([][]string, 0, len(domain.Priorities))
	for _, p := range domain.Priorities {
		rows = append(rows, []string{
			PriorityBadge(p),
			strconv.Itoa(summary.PriorityCounts[p]),
		})
	}
	b.WriteString(RenderTable([]string{"Priority", "Count"}, rows))

	fmt.Fprintf(&b, "%s %.1f\n", Bold("Avg story points:"), summary.AvgStoryPoints)
	fmt.Fprintf(&b, "%s %.1f\n", Bold("Avg hours:"), summary.AvgHours)
	fmt.Fprintf(&b, "%s\n", Dim(fmt.Sprintf("%d rows", summary.Rows)))

	return b.String()
}

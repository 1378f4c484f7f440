package intelligence

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/alexanderramin/krisis/internal/domain"
)

// Fixed replies.
const (
	NoDatasetReply = "No dataset loaded. Run predictions on a CSV first, then ask again."

	helpReply = `I can answer questions about the latest prediction batch. Try:
  - "why row 2" to explain one prediction
  - "priority distribution" for counts and averages
  - "top risky" for the most urgent rows
  - "average story points" for batch averages`

	fallbackReply = `I didn't catch that. Ask "help" to see example questions.`
)

// explainRowPattern pulls the row number out of "why 3", "row 3",
// "record #3", "explain id 3" style questions.
var explainRowPattern = regexp.MustCompile(`(?i)\b(?:why|row|record|id)\b\D*?(\d+)`)

// intent is one (predicate, handler) pair. Match returns the reply and
// whether the intent claimed the message; a non-match falls through to
// later intents.
type intent struct {
	name  string
	match func(q string, predictions []domain.Prediction) (string, bool)
}

// intents are evaluated in fixed priority order; first match wins.
var intents = []intent{
	{name: "explain_row", match: matchExplainRow},
	{name: "distribution", match: matchDistribution},
	{name: "help", match: matchHelp},
	{name: "top_risky", match: matchTopRisky},
	{name: "average", match: matchAverage},
}

// Resolve answers a free-text question against the current batch snapshot.
// With no batch loaded it returns the fixed no-dataset reply immediately.
func Resolve(message string, batch *domain.Batch) string {
	if batch.Empty() {
		return NoDatasetReply
	}

	q := strings.ToLower(strings.TrimSpace(message))
	for _, in := range intents {
		if reply, ok := in.match(q, batch.Predictions); ok {
			return reply
		}
	}
	return fallbackReply
}

// matchExplainRow answers "why/row/record/id N" questions. An out-of-range
// N does not claim the message; it falls through to later intents.
func matchExplainRow(q string, predictions []domain.Prediction) (string, bool) {
	m := explainRowPattern.FindStringSubmatch(q)
	if m == nil {
		return "", false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < 1 || n > len(predictions) {
		return "", false
	}

	row := predictions[n-1]
	return fmt.Sprintf("Row %d: Priority %s (confidence %.2f). %s",
		n, row.Priority.Label(), row.Confidence, row.Rationale), true
}

func matchDistribution(q string, predictions []domain.Prediction) (string, bool) {
	if !containsAnyOf(q, "distribution", "count", "how many", "breakdown") {
		return "", false
	}

	summary := Summarize(predictions)

	var b strings.Builder
	for _, p := range domain.Priorities {
		fmt.Fprintf(&b, "%s: %d\n", p.Label(), summary.PriorityCounts[p])
	}
	fmt.Fprintf(&b, "Avg story points: %.1f\n", summary.AvgStoryPoints)
	fmt.Fprintf(&b, "Avg hours: %.1f", summary.AvgHours)
	return b.String(), true
}

func matchHelp(q string, _ []domain.Prediction) (string, bool) {
	if !containsAnyOf(q, "help", "what can you do", "commands", "options") {
		return "", false
	}
	return helpReply, true
}

func matchTopRisky(q string, predictions []domain.Prediction) (string, bool) {
	if !containsAnyOf(q, "top risky", "highest priority", "critical") {
		return "", false
	}

	ranked := make([]domain.Prediction, len(predictions))
	copy(ranked, predictions)
	sort.SliceStable(ranked, func(i, j int) bool {
		ri, rj := domain.PriorityRank(ranked[i].Priority), domain.PriorityRank(ranked[j].Priority)
		if ri != rj {
			return ri > rj
		}
		return ranked[i].Confidence > ranked[j].Confidence
	})

	limit := 5
	if len(ranked) < limit {
		limit = len(ranked)
	}

	var lines []string
	for i := 0; i < limit; i++ {
		row := ranked[i]
		lines = append(lines, fmt.Sprintf("%d. Row %d: %s (confidence %.2f, %dh)",
			i+1, row.RowIndex, row.Priority.Label(), row.Confidence, row.EstimateHours))
	}
	return strings.Join(lines, "\n"), true
}

func matchAverage(q string, predictions []domain.Prediction) (string, bool) {
	if !containsAnyOf(q, "average", "avg") {
		return "", false
	}

	summary := Summarize(predictions)
	return fmt.Sprintf("Avg story points: %.1f, avg hours: %.1f",
		summary.AvgStoryPoints, summary.AvgHours), true
}

func containsAnyOf(s string, needles ...string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}

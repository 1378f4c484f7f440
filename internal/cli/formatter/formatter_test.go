package formatter

import (
	"strings"
	"testing"

	"github.com/alexanderramin/krisis/internal/contract"
	"github.com/alexanderramin/krisis/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTable_AlignsColumns(t *testing.T) {
	got := RenderTable(
		[]string{"Row", "Priority"},
		[][]string{
			{"1", "Critical"},
			{"12", "Low"},
		},
	)

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	require.Len(t, lines, 4, "header, separator, two rows")
	assert.Contains(t, lines[0], "Row")
	assert.Contains(t, lines[0], "Priority")
	assert.Contains(t, lines[2], "Critical")
	assert.Contains(t, lines[3], "Low")
}

func TestRenderTable_EmptyHeaders(t *testing.T) {
	assert.Equal(t, "", RenderTable(nil, nil))
}

func TestPriorityBadge(t *testing.T) {
	for _, p := range domain.Priorities {
		assert.Contains(t, PriorityBadge(p), p.Label())
	}
}

func TestFormatPredictions_EmptyBatch(t *testing.T) {
	assert.Contains(t, FormatPredictions(nil), "No dataset loaded.")
	assert.Contains(t, FormatPredictions(&domain.Batch{}), "No dataset loaded.")
}

func TestFormatPredictions_RendersRows(t *testing.T) {
	batch := &domain.Batch{
		ID:         "b-1",
		SourceFile: "issues.csv",
		Predictions: []domain.Prediction{
			{RowIndex: 1, Priority: domain.PriorityCritical, StoryPoints: 8, EstimateHours: 32,
				Confidence: 0.91, Rationale: "Priority Critical based on cues: service outage. Story Points ~8, Est ~32h."},
		},
	}

	got := FormatPredictions(batch)
	assert.Contains(t, got, "Critical")
	assert.Contains(t, got, "0.91")
	assert.Contains(t, got, "service outage")
	assert.Contains(t, got, "1 rows from issues.csv")
}

func TestFormatSummary(t *testing.T) {
	got := FormatSummary(&contract.SummaryResponse{
		Rows: 3,
		PriorityCounts: map[domain.Priority]int{
			domain.PriorityCritical: 2,
			domain.PriorityLow:      1,
		},
		AvgStoryPoints: 4.7,
		AvgHours:       17.3,
	})

	assert.Contains(t, got, "Critical")
	assert.Contains(t, got, "4.7")
	assert.Contains(t, got, "17.3")
	assert.Contains(t, got, "3 rows")
}

func TestFormatSummary_Empty(t *testing.T) {
	got := FormatSummary(&contract.SummaryResponse{})
	assert.Contains(t, got, "No dataset loaded.")
}

func TestFormatChatReply_IndentsContinuationLines(t *testing.T) {
	got := FormatChatReply("Critical: 1\nLow: 2")

	lines := strings.Split(got, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "krisis:")
	assert.Contains(t, lines[0], "Critical: 1")
	assert.True(t, strings.HasPrefix(lines[1], "        "))
}

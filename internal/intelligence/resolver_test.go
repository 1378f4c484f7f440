package intelligence

import (
	"strings"
	"testing"

	"github.com/alexanderramin/krisis/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threeRowBatch() *domain.Batch {
	return &domain.Batch{
		ID: "b-1",
		Predictions: []domain.Prediction{
			{RowIndex: 1, Priority: domain.PriorityCritical, StoryPoints: 8, EstimateHours: 32, Confidence: 0.91,
				Rationale: "Priority Critical based on cues: service outage. Story Points ~8, Est ~32h."},
			{RowIndex: 2, Priority: domain.PriorityLow, StoryPoints: 1, EstimateHours: 4, Confidence: 0.72,
				Rationale: "Priority Low based on cues: cosmetic. Story Points ~1, Est ~4h."},
			{RowIndex: 3, Priority: domain.PriorityHigh, StoryPoints: 5, EstimateHours: 16, Confidence: 0.66,
				Rationale: "Priority High based on cues: general classification. Story Points ~5, Est ~16h."},
		},
	}
}

func TestResolve_EmptyDataset(t *testing.T) {
	assert.Equal(t, NoDatasetReply, Resolve("Priority distribution", nil))
	assert.Equal(t, NoDatasetReply, Resolve("help", &domain.Batch{}))
}

func TestResolve_ExplainRow(t *testing.T) {
	got := Resolve("why row 2?", threeRowBatch())

	assert.Equal(t, "Row 2: Priority Low (confidence 0.72). Priority Low based on cues: cosmetic. Story Points ~1, Est ~4h.", got)
}

func TestResolve_ExplainRowOutOfRangeFallsThrough(t *testing.T) {
	// Row 10 does not exist; the message matches no later intent either,
	// so the resolver answers with the generic hint instead of an error.
	got := Resolve("why 10", threeRowBatch())
	assert.Equal(t, fallbackReply, got)
}

func TestResolve_OutOfRangeStillReachesLaterIntents(t *testing.T) {
	got := Resolve("why is record 10 the highest priority", threeRowBatch())
	assert.Contains(t, got, "1. Row 1: Critical")
}

func TestResolve_Distribution(t *testing.T) {
	got := Resolve("show me the priority breakdown", threeRowBatch())

	lines := strings.Split(got, "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "Critical: 1", lines[0])
	assert.Equal(t, "High: 1", lines[1])
	assert.Equal(t, "Medium: 0", lines[2])
	assert.Equal(t, "Low: 1", lines[3])
	assert.Contains(t, lines[4], "Avg story points: 4.7")
	assert.Contains(t, lines[5], "Avg hours: 17.3")
}

func TestResolve_Help(t *testing.T) {
	got := Resolve("what can you do", threeRowBatch())
	assert.Contains(t, got, "why row 2")
	assert.Contains(t, got, "top risky")
}

func TestResolve_TopRisky(t *testing.T) {
	got := Resolve("top risky items please", threeRowBatch())

	lines := strings.Split(got, "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Row 1: Critical")
	assert.Contains(t, lines[1], "Row 3: High")
	assert.Contains(t, lines[2], "Row 2: Low")
}

func TestResolve_TopRiskyTieBreaksByConfidence(t *testing.T) {
	batch := &domain.Batch{Predictions: []domain.Prediction{
		{RowIndex: 1, Priority: domain.PriorityHigh, Confidence: 0.60},
		{RowIndex: 2, Priority: domain.PriorityHigh, Confidence: 0.90},
	}}

	got := Resolve("highest priority", batch)
	lines := strings.Split(got, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Row 2")
	assert.Contains(t, lines[1], "Row 1")
}

func TestResolve_TopRiskyCapsAtFive(t *testing.T) {
	batch := &domain.Batch{}
	for i := 1; i <= 9; i++ {
		batch.Predictions = append(batch.Predictions, domain.Prediction{
			RowIndex: i, Priority: domain.PriorityMedium, Confidence: 0.6,
		})
	}

	got := Resolve("top risky", batch)
	assert.Len(t, strings.Split(got, "\n"), 5)
}

func TestResolve_Average(t *testing.T) {
	got := Resolve("what is the avg estimate", threeRowBatch())
	assert.Equal(t, "Avg story points: 4.7, avg hours: 17.3", got)
}

func TestResolve_Fallback(t *testing.T) {
	got := Resolve("sing me a song", threeRowBatch())
	assert.Equal(t, fallbackReply, got)
}

func TestResolve_IntentOrder(t *testing.T) {
	// "how many" outranks "critical": distribution wins over top-risky.
	got := Resolve("how many critical rows", threeRowBatch())
	assert.Contains(t, got, "Critical: 1")
	assert.NotContains(t, got, "1. Row")
}

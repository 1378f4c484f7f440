package intelligence

import "github.com/alexanderramin/krisis/internal/domain"

// DatasetSummary aggregates statistics over one prediction batch.
type DatasetSummary struct {
	Rows           int
	PriorityCounts map[domain.Priority]int
	AvgStoryPoints float64
	AvgHours       float64
}

// Summarize computes counts and averages over predictions. An empty slice
// yields zeroed averages, never a division error.
func Summarize(predictions []domain.Prediction) DatasetSummary {
	summary := DatasetSummary{
		Rows:           len(predictions),
		PriorityCounts: make(map[domain.Priority]int),
	}

	if len(predictions) == 0 {
		return summary
	}

	var points, hours int
	for _, p := range predictions {
		summary.PriorityCounts[p.Priority]++
		points += p.StoryPoints
		hours += p.EstimateHours
	}
	summary.AvgStoryPoints = float64(points) / float64(len(predictions))
	summary.AvgHours = float64(hours) / float64(len(predictions))

	return summary
}

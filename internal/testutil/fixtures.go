package testutil

import (
	"time"

	"github.com/alexanderramin/krisis/internal/domain"
	"github.com/google/uuid"
)

// FixtureBatch builds a stored-shape batch with the given predictions.
// IDs are generated; CreatedAt is a fixed instant for determinism.
func FixtureBatch(source string, predictions ...domain.Prediction) *domain.Batch {
	for i := range predictions {
		if predictions[i].ID == "" {
			predictions[i].ID = uuid.NewString()
		}
	}
	return &domain.Batch{
		ID:          uuid.NewString(),
		SourceFile:  source,
		CreatedAt:   time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC),
		Predictions: predictions,
	}
}

// FixturePrediction builds a valid prediction for the given row.
func FixturePrediction(row int, p domain.Priority) domain.Prediction {
	return domain.Prediction{
		ID:            uuid.NewString(),
		RowIndex:      row,
		Priority:      p,
		StoryPoints:   3,
		EstimateHours: 8,
		Confidence:    0.6,
		Rationale:     "Priority " + p.Label() + " based on cues: general classification. Story Points ~3, Est ~8h.",
	}
}

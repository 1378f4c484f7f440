package domain

import "time"

// Prediction is the triage result for one input row.
type Prediction struct {
	ID            string
	RowIndex      int // 1-based, matches input row order
	Priority      Priority
	StoryPoints   int
	EstimateHours int
	Confidence    float64
	Rationale     string
}

// Batch is one complete prediction run. The latest batch wholesale-replaces
// the previous one; there are no partial-row updates.
type Batch struct {
	ID          string
	SourceFile  string
	CreatedAt   time.Time
	Predictions []Prediction
}

// Empty reports whether the batch holds no predictions.
func (b *Batch) Empty() bool {
	return b == nil || len(b.Predictions) == 0
}

package contract

import (
	"time"

	"github.com/alexanderramin/krisis/internal/domain"
)

// PredictRequest carries one batch of input rows through the prediction
// pipeline. Records keep their input order; row indexes are assigned from it.
type PredictRequest struct {
	SourceFile string
	Records    []domain.TextRecord
}

type PredictResponse struct {
	BatchID     string
	GeneratedAt time.Time
	Predictions []domain.Prediction
}

// ChatRequest is one free-text question about the latest batch.
type ChatRequest struct {
	Message string
}

// ChatReply is the resolver's answer. Stateless besides the batch snapshot
// it was answered against.
type ChatReply struct {
	Text string
}

type SummaryResponse struct {
	Rows           int
	PriorityCounts map[domain.Priority]int
	AvgStoryPoints float64
	AvgHours       float64
}

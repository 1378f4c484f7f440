package service

import (
	"context"

	"github.com/alexanderramin/krisis/internal/contract"
	"github.com/alexanderramin/krisis/internal/domain"
)

type PredictionService interface {
	// PredictBatch runs the engine over every record and atomically replaces
	// the stored latest batch with the results.
	PredictBatch(ctx context.Context, req contract.PredictRequest) (*contract.PredictResponse, error)
}

type ChatService interface {
	// Ask answers one free-text question against the latest batch snapshot.
	Ask(ctx context.Context, req contract.ChatRequest) (*contract.ChatReply, error)
}

type DatasetService interface {
	// Latest returns the stored batch, or nil when none is stored.
	Latest(ctx context.Context) (*domain.Batch, error)
	Summary(ctx context.Context) (*contract.SummaryResponse, error)
	Clear(ctx context.Context) error
}

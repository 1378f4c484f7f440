package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/krisis/internal/contract"
	"github.com/alexanderramin/krisis/internal/domain"
	"github.com/alexanderramin/krisis/internal/repository"
	"github.com/alexanderramin/krisis/internal/triage"
	"github.com/google/uuid"
)

// ErrNoRecords is returned when a predict request carries no input rows.
var ErrNoRecords = errors.New("no input rows to predict")

type predictService struct {
	engine  *triage.Engine
	batches repository.BatchRepo
	now     func() time.Time
}

// NewPredictionService wires the prediction engine to batch storage.
func NewPredictionService(engine *triage.Engine, batches repository.BatchRepo) PredictionService {
	return &predictService{
		engine:  engine,
		batches: batches,
		now:     time.Now,
	}
}

func (s *predictService) PredictBatch(ctx context.Context, req contract.PredictRequest) (*contract.PredictResponse, error) {
	if len(req.Records) == 0 {
		return nil, ErrNoRecords
	}

	predictions := make([]domain.Prediction, 0, len(req.Records))
	for i, rec := range req.Records {
		p := s.engine.Predict(i+1, rec)
		p.ID = uuid.NewString()
		predictions = append(predictions, p)
	}

	batch := &domain.Batch{
		ID:          uuid.NewString(),
		SourceFile:  req.SourceFile,
		CreatedAt:   s.now().UTC(),
		Predictions: predictions,
	}
	if err := s.batches.Replace(ctx, batch); err != nil {
		return nil, fmt.Errorf("storing prediction batch: %w", err)
	}

	return &contract.PredictResponse{
		BatchID:     batch.ID,
		GeneratedAt: batch.CreatedAt,
		Predictions: predictions,
	}, nil
}

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/krisis/internal/contract"
	"github.com/alexanderramin/krisis/internal/domain"
	"github.com/alexanderramin/krisis/internal/intelligence"
	"github.com/alexanderramin/krisis/internal/repository"
)

type datasetService struct {
	batches repository.BatchRepo
}

// NewDatasetService exposes read and clear operations over the stored batch.
func NewDatasetService(batches repository.BatchRepo) DatasetService {
	return &datasetService{batches: batches}
}

func (s *datasetService) Latest(ctx context.Context) (*domain.Batch, error) {
	batch, err := s.batches.Latest(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading latest batch: %w", err)
	}
	return batch, nil
}

func (s *datasetService) Summary(ctx context.Context) (*contract.SummaryResponse, error) {
	batch, err := s.Latest(ctx)
	if err != nil {
		return nil, err
	}

	var predictions []domain.Prediction
	if batch != nil {
		predictions = batch.Predictions
	}
	summary := intelligence.Summarize(predictions)

	return &contract.SummaryResponse{
		Rows:           summary.Rows,
		PriorityCounts: summary.PriorityCounts,
		AvgStoryPoints: summary.AvgStoryPoints,
		AvgHours:       summary.AvgHours,
	}, nil
}

func (s *datasetService) Clear(ctx context.Context) error {
	if err := s.batches.Clear(ctx); err != nil {
		return fmt.Errorf("clearing dataset: %w", err)
	}
	return nil
}

package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/krisis/internal/domain"
)

// ErrNotFound is returned when a requested entity does not exist.
var ErrNotFound = errors.New("not found")

// BatchRepo stores the single latest prediction batch. Replacement is
// atomic and total: readers observe either the previous batch or the new
// one, never a mix.
type BatchRepo interface {
	// Replace removes whatever batch is stored and installs b, all in one
	// transaction.
	Replace(ctx context.Context, b *domain.Batch) error
	// Latest returns the stored batch with predictions in row order, or
	// ErrNotFound when none is stored.
	Latest(ctx context.Context) (*domain.Batch, error)
	// Clear removes the stored batch. Clearing an empty store is a no-op.
	Clear(ctx context.Context) error
}

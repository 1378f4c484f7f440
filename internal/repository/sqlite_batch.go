package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/krisis/internal/domain"
)

// SQLiteBatchRepo implements BatchRepo using a SQLite database.
type SQLiteBatchRepo struct {
	db *sql.DB
}

// NewSQLiteBatchRepo creates a new SQLiteBatchRepo.
func NewSQLiteBatchRepo(db *sql.DB) *SQLiteBatchRepo {
	return &SQLiteBatchRepo{db: db}
}

func (r *SQLiteBatchRepo) Replace(ctx context.Context, b *domain.Batch) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning batch replace: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if err := clearAll(ctx, tx); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO batches (id, source_file, created_at, row_count) VALUES (?, ?, ?, ?)`,
		b.ID, b.SourceFile, b.CreatedAt.Format(time.RFC3339), len(b.Predictions),
	); err != nil {
		return fmt.Errorf("inserting batch: %w", err)
	}

	for _, p := range b.Predictions {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO predictions
				(id, batch_id, row_index, priority, story_points, estimate_hours, confidence, rationale)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			p.ID, b.ID, p.RowIndex, string(p.Priority), p.StoryPoints,
			p.EstimateHours, p.Confidence, p.Rationale,
		); err != nil {
			return fmt.Errorf("inserting prediction row %d: %w", p.RowIndex, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing batch replace: %w", err)
	}
	committed = true
	return nil
}

func (r *SQLiteBatchRepo) Latest(ctx context.Context) (*domain.Batch, error) {
	var b domain.Batch
	var createdAtStr string
	err := r.db.QueryRowContext(ctx,
		`SELECT id, source_file, created_at FROM batches ORDER BY created_at DESC LIMIT 1`,
	).Scan(&b.ID, &b.SourceFile, &createdAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("latest batch: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("loading latest batch: %w", err)
	}

	b.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing batch created_at: %w", err)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, row_index, priority, story_points, estimate_hours, confidence, rationale
			FROM predictions WHERE batch_id = ? ORDER BY row_index`, b.ID)
	if err != nil {
		return nil, fmt.Errorf("loading predictions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var p domain.Prediction
		var priority string
		if err := rows.Scan(&p.ID, &p.RowIndex, &priority, &p.StoryPoints,
			&p.EstimateHours, &p.Confidence, &p.Rationale); err != nil {
			return nil, fmt.Errorf("scanning prediction: %w", err)
		}
		p.Priority = domain.Priority(priority)
		b.Predictions = append(b.Predictions, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating predictions: %w", err)
	}

	return &b, nil
}

func (r *SQLiteBatchRepo) Clear(ctx context.Context) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning clear: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if err := clearAll(ctx, tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing clear: %w", err)
	}
	committed = true
	return nil
}

func clearAll(ctx context.Context, tx *sql.Tx) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM predictions`); err != nil {
		return fmt.Errorf("deleting predictions: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM batches`); err != nil {
		return fmt.Errorf("deleting batches: %w", err)
	}
	return nil
}

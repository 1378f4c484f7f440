package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/krisis/internal/domain"
	"github.com/alexanderramin/krisis/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteBatchRepo_LatestWhenEmpty(t *testing.T) {
	repo := NewSQLiteBatchRepo(testutil.NewTestDB(t))

	_, err := repo.Latest(context.Background())
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestSQLiteBatchRepo_ReplaceAndLatest(t *testing.T) {
	repo := NewSQLiteBatchRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	batch := testutil.FixtureBatch("issues.csv",
		testutil.FixturePrediction(1, domain.PriorityCritical),
		testutil.FixturePrediction(2, domain.PriorityLow),
	)
	require.NoError(t, repo.Replace(ctx, batch))

	got, err := repo.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, batch.ID, got.ID)
	assert.Equal(t, "issues.csv", got.SourceFile)
	require.Len(t, got.Predictions, 2)
	assert.Equal(t, 1, got.Predictions[0].RowIndex)
	assert.Equal(t, domain.PriorityCritical, got.Predictions[0].Priority)
	assert.Equal(t, batch.Predictions[0].Rationale, got.Predictions[0].Rationale)
}

func TestSQLiteBatchRepo_ReplaceIsWholesale(t *testing.T) {
	repo := NewSQLiteBatchRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	first := testutil.FixtureBatch("a.csv",
		testutil.FixturePrediction(1, domain.PriorityHigh),
		testutil.FixturePrediction(2, domain.PriorityHigh),
		testutil.FixturePrediction(3, domain.PriorityHigh),
	)
	require.NoError(t, repo.Replace(ctx, first))

	second := testutil.FixtureBatch("b.csv", testutil.FixturePrediction(1, domain.PriorityLow))
	require.NoError(t, repo.Replace(ctx, second))

	got, err := repo.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.ID, got.ID)
	require.Len(t, got.Predictions, 1, "rows from the first batch must not survive")
	assert.Equal(t, domain.PriorityLow, got.Predictions[0].Priority)
}

func TestSQLiteBatchRepo_ReplaceRollsBackOnBadRow(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteBatchRepo(database)
	ctx := context.Background()

	good := testutil.FixtureBatch("good.csv", testutil.FixturePrediction(1, domain.PriorityMedium))
	require.NoError(t, repo.Replace(ctx, good))

	bad := testutil.FixtureBatch("bad.csv", testutil.FixturePrediction(1, domain.PriorityMedium))
	bad.Predictions[0].StoryPoints = 7 // violates the scale CHECK

	require.Error(t, repo.Replace(ctx, bad))

	// The previous batch must still be fully visible.
	got, err := repo.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, good.ID, got.ID)
	assert.Len(t, got.Predictions, 1)
}

func TestSQLiteBatchRepo_Clear(t *testing.T) {
	repo := NewSQLiteBatchRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Replace(ctx, testutil.FixtureBatch("a.csv",
		testutil.FixturePrediction(1, domain.PriorityMedium))))
	require.NoError(t, repo.Clear(ctx))

	_, err := repo.Latest(ctx)
	assert.True(t, errors.Is(err, ErrNotFound))

	// Clearing an already-empty store is fine.
	assert.NoError(t, repo.Clear(ctx))
}

func TestSQLiteBatchRepo_PreservesRowOrder(t *testing.T) {
	repo := NewSQLiteBatchRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	batch := testutil.FixtureBatch("a.csv",
		testutil.FixturePrediction(3, domain.PriorityLow),
		testutil.FixturePrediction(1, domain.PriorityLow),
		testutil.FixturePrediction(2, domain.PriorityLow),
	)
	require.NoError(t, repo.Replace(ctx, batch))

	got, err := repo.Latest(ctx)
	require.NoError(t, err)
	require.Len(t, got.Predictions, 3)
	for i, p := range got.Predictions {
		assert.Equal(t, i+1, p.RowIndex)
	}
}

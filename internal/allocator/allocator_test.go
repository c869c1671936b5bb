package allocator_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-drop-engine/internal/allocator"
)

func noneTaken(ctx context.Context, id uint64) (bool, error) {
	return false, nil
}

func takenSet(ids ...uint64) allocator.ExcludeCheck {
	set := make(map[uint64]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return func(ctx context.Context, id uint64) (bool, error) {
		return set[id], nil
	}
}

func TestNext_FreshPartition(t *testing.T) {
	ctx := context.Background()

	id, counter, err := allocator.Next(ctx, 0, 0, noneTaken)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), id)
	assert.Equal(t, uint64(1), counter)
}

func TestNext_AppliesPartitionOffset(t *testing.T) {
	ctx := context.Background()

	id, counter, err := allocator.Next(ctx, 0, 5000, noneTaken)
	require.NoError(t, err)
	assert.Equal(t, uint64(5001), id)
	assert.Equal(t, uint64(1), counter)
}

func TestNext_SkipsOccupiedIdentifiers(t *testing.T) {
	ctx := context.Background()

	// 5001 and 5002 were minted through some other path
	id, counter, err := allocator.Next(ctx, 0, 5000, takenSet(5001, 5002))
	require.NoError(t, err)
	assert.Equal(t, uint64(5003), id)
	assert.Equal(t, uint64(3), counter)
}

func TestNext_PropagatesPredicateError(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("ledger unavailable")

	_, _, err := allocator.Next(ctx, 0, 0, func(ctx context.Context, id uint64) (bool, error) {
		return false, boom
	})
	assert.ErrorIs(t, err, boom)
}

func TestNextBatch_SequentialAndDistinct(t *testing.T) {
	ctx := context.Background()

	ids, counter, err := allocator.NextBatch(ctx, 0, 100, 5, takenSet(102, 104))
	require.NoError(t, err)
	assert.Equal(t, []uint64{101, 103, 105, 106, 107}, ids)
	assert.Equal(t, uint64(7), counter)

	seen := make(map[uint64]bool)
	for _, id := range ids {
		assert.False(t, seen[id], "identifier %d allocated twice", id)
		seen[id] = true
	}
}

func TestNextBatch_ResumesFromCounter(t *testing.T) {
	ctx := context.Background()

	first, counter, err := allocator.NextBatch(ctx, 0, 0, 3, noneTaken)
	require.NoError(t, err)
	second, counter, err := allocator.NextBatch(ctx, counter, 0, 3, noneTaken)
	require.NoError(t, err)

	assert.Equal(t, []uint64{1, 2, 3}, first)
	assert.Equal(t, []uint64{4, 5, 6}, second)
	assert.Equal(t, uint64(6), counter)
}

func TestNextBatch_NeverReturnsBurnedIdentifiers(t *testing.T) {
	ctx := context.Background()

	// burned ids are excluded the same way as existing ones
	ids, _, err := allocator.NextBatch(ctx, 0, 0, 4, takenSet(1, 2, 3))
	require.NoError(t, err)
	assert.Equal(t, []uint64{4, 5, 6, 7}, ids)
}

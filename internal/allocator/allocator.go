// Package allocator produces collision-free item identifiers within one
// deployment's partition of a shared collection namespace. Allocation is a
// pure function of the counter, the partition offset and an exclusion
// predicate, which keeps it testable without a live ownership ledger.
package allocator

import (
	"context"
	"fmt"
)

// ExcludeCheck reports whether a candidate identifier is already taken in the
// external ownership ledger, either because it exists or because it was
// burned. Identifiers it reports taken are skipped, never reused.
type ExcludeCheck func(ctx context.Context, id uint64) (bool, error)

// Next increments the counter and skips forward past identifiers the
// exclusion predicate reports taken. It returns the allocated identifier
// (offset + counter) and the advanced counter. The loop is unbounded under
// dense pre-existing occupancy; that cost is an accepted trade-off.
func Next(ctx context.Context, counter, offset uint64, taken ExcludeCheck) (uint64, uint64, error) {
	for {
		counter++
		id := offset + counter
		t, err := taken(ctx, id)
		if err != nil {
			return 0, 0, fmt.Errorf("exclusion check for id %d: %w", id, err)
		}
		if !t {
			return id, counter, nil
		}
	}
}

// NextBatch allocates quantity identifiers sequentially. Calls are strictly
// ordered so collisions are skipped deterministically; the returned ids are
// pairwise distinct and strictly increasing.
func NextBatch(ctx context.Context, counter, offset uint64, quantity uint64, taken ExcludeCheck) ([]uint64, uint64, error) {
	ids := make([]uint64, 0, quantity)
	for range quantity {
		id, next, err := Next(ctx, counter, offset, taken)
		if err != nil {
			return nil, 0, err
		}
		ids = append(ids, id)
		counter = next
	}
	return ids, counter, nil
}

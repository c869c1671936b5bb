package engine

import "sync/atomic"

// guard is the mutual-exclusion flag around purchase and withdrawal
// operations. Re-entrant or concurrent calls are rejected outright, never
// queued: at most one guarded operation is in flight per engine.
type guard struct {
	busy atomic.Bool
}

// TryAcquire attempts to take the guard without blocking
func (g *guard) TryAcquire() bool {
	return g.busy.CompareAndSwap(false, true)
}

// Release frees the guard. Must run on every exit path.
func (g *guard) Release() {
	g.busy.Store(false)
}

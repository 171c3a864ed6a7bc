package application

import "context"

// RunGuard deduplicates scheduled reconciliation runs across replicas.
type RunGuard interface {
	// TryReserve returns true if key was absent and is now reserved.
	// Returns false if another runner already holds it.
	TryReserve(ctx context.Context, key string) (bool, error)
}

// NoopGuard always succeeds; concurrent runs are then unsynchronized, which
// is the accepted default.
type NoopGuard struct{}

func (NoopGuard) TryReserve(context.Context, string) (bool, error) { return true, nil }

package fetch

import (
	"context"

	"github.com/sourcegraph/conc/pool"
)

// DefaultLookupWorkers bounds the per-parent fan-out.
const DefaultLookupWorkers = 50

// LookupFunc performs one dependent request for a parent entity.
type LookupFunc[P, R any] func(ctx context.Context, parent P) (R, error)

// Outcome is the result of the lookup for one parent.
type Outcome[P, R any] struct {
	Parent P
	Value  R
	Err    error
}

// Partition splits the outcomes of a fan-out by success.
type Partition[P, R any] struct {
	Succeeded []Outcome[P, R]
	Failed    []Outcome[P, R]
}

// Len returns the number of parents looked up.
func (p Partition[P, R]) Len() int {
	return len(p.Succeeded) + len(p.Failed)
}

// PerParent runs lookup once per parent on at most workers goroutines.
// A failed lookup is recorded in Failed and never cancels the others.
// Outcome order follows completion order.
func PerParent[P, R any](ctx context.Context, parents []P, lookup LookupFunc[P, R], workers int) Partition[P, R] {
	var partition Partition[P, R]
	if len(parents) == 0 {
		return partition
	}
	if workers <= 0 {
		workers = DefaultLookupWorkers
	}

	p := pool.NewWithResults[Outcome[P, R]]().
		WithMaxGoroutines(min(workers, len(parents)))

	for _, parent := range parents {
		p.Go(func() Outcome[P, R] {
			value, err := lookup(ctx, parent)
			return Outcome[P, R]{Parent: parent, Value: value, Err: err}
		})
	}

	for _, outcome := range p.Wait() {
		if outcome.Err != nil {
			partition.Failed = append(partition.Failed, outcome)
			continue
		}
		partition.Succeeded = append(partition.Succeeded, outcome)
	}
	return partition
}

package brvmapi

import (
	"context"
	"sync"
)

// Resource is one logical fetch slot: it holds the loading/data/error state
// for a resource and guards it against out-of-order completion. Each fetch
// is tagged with a monotonically increasing generation; a completion whose
// generation is no longer the latest is discarded, so the last-issued
// request always wins even if an earlier one finishes later.
type Resource[T any] struct {
	mu      sync.Mutex
	gen     uint64
	loading bool
	data    *T
	err     string
}

// Snapshot is the displayable state of a Resource at one point in time.
type Snapshot[T any] struct {
	Loading bool
	Data    *T
	Err     string
}

// Get returns the current state.
func (r *Resource[T]) Get() Snapshot[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Snapshot[T]{Loading: r.loading, Data: r.data, Err: r.err}
}

// Begin marks the slot loading and returns the generation tag the eventual
// completion must present. Beginning a new fetch supersedes any in-flight
// one: the superseded result will be discarded, not applied.
func (r *Resource[T]) Begin() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.gen++
	r.loading = true
	return r.gen
}

// Complete applies a fetch result to the slot. It reports whether the result
// was applied; a stale generation leaves the state untouched.
func (r *Resource[T]) Complete(gen uint64, data *T, err error) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if gen != r.gen {
		return false
	}
	r.loading = false
	if err != nil {
		r.data = nil
		r.err = err.Error()
		return true
	}
	r.data = data
	r.err = ""
	return true
}

// Fetch runs one full cycle synchronously: Begin, call, Complete. It is the
// refetch primitive of the polling commands; concurrent callers are safe and
// only the newest one's result survives.
func (r *Resource[T]) Fetch(ctx context.Context, fetch func(context.Context) (*T, error)) Snapshot[T] {
	gen := r.Begin()
	data, err := fetch(ctx)
	r.Complete(gen, data, err)
	return r.Get()
}

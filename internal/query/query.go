// Package query runs remote fetches as observable resources: each exposes
// its data, whether it is still loading, and the error it ended with.
package query

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Result is a snapshot of a resource.
type Result[T any] struct {
	Data      *T
	IsLoading bool
	Err       error
}

// Resource runs one fetch and publishes its progress.
type Resource[T any] struct {
	mu     sync.Mutex
	result Result[T]
	done   chan struct{}
}

// Start launches fetch in the background and returns the loading resource.
func Start[T any](ctx context.Context, fetch func(context.Context) (T, error)) *Resource[T] {
	r := &Resource[T]{
		result: Result[T]{IsLoading: true},
		done:   make(chan struct{}),
	}
	go func() {
		data, err := fetch(ctx)
		r.finish(data, err)
	}()
	return r
}

func (r *Resource[T]) finish(data T, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.result.IsLoading = false
	if err != nil {
		r.result.Err = err
	} else {
		r.result.Data = &data
	}
	close(r.done)
}

// Result returns the current snapshot.
func (r *Resource[T]) Result() Result[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.result
}

// Wait blocks until the fetch finishes or ctx is done, then returns the
// latest snapshot. A snapshot taken on cancellation is still loading.
func (r *Resource[T]) Wait(ctx context.Context) Result[T] {
	select {
	case <-r.done:
	case <-ctx.Done():
	}
	return r.Result()
}

// Done is closed once the fetch has finished.
func (r *Resource[T]) Done() <-chan struct{} {
	return r.done
}

// FetchAll runs fns concurrently and returns the first error. The context
// passed to fns is cancelled as soon as one fails.
func FetchAll(ctx context.Context, fns ...func(context.Context) error) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, fn := range fns {
		fn := fn
		g.Go(func() error { return fn(gctx) })
	}
	return g.Wait()
}

package fetch

import (
	"context"
	"sync"
)

// Cache holds one value computed at most once per run. Failed loads are not
// cached, so a later Get retries. The zero value is ready to use.
type Cache[T any] struct {
	mu     sync.Mutex
	loaded bool
	value  T
}

// Get returns the cached value, calling load on the first successful call.
// Concurrent callers wait for the load in progress.
func (c *Cache[T]) Get(ctx context.Context, load func(context.Context) (T, error)) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.loaded {
		return c.value, nil
	}

	value, err := load(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	c.value = value
	c.loaded = true
	return value, nil
}

// Loaded reports whether a value is cached.
func (c *Cache[T]) Loaded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loaded
}

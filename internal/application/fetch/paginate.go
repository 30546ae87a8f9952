package fetch

import (
	"context"
	"fmt"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"

	"github.com/diillson/buildops-audit-go/internal/domain/entity"
)

const (
	DefaultPageSize = 100
	DefaultWorkers  = 50
)

// PageFunc fetches one zero-based page of a collection.
type PageFunc[T any] func(ctx context.Context, pageSize, page int) (entity.Page[T], error)

// Options controls one paginated fetch.
type Options struct {
	PageSize int
	Workers  int
}

func (o Options) normalized() Options {
	if o.PageSize <= 0 {
		o.PageSize = DefaultPageSize
	}
	if o.Workers <= 0 {
		o.Workers = DefaultWorkers
	}
	return o
}

// NumPages returns how many pages of pageSize hold totalCount items.
func NumPages(totalCount, pageSize int) int {
	if totalCount <= 0 || pageSize <= 0 {
		return 0
	}
	return (totalCount + pageSize - 1) / pageSize
}

// All fetches every page of a collection. Page 0 is requested first to learn
// the total count; the remaining pages are fetched by at most opts.Workers
// goroutines and merged in completion order.
//
// Any failed page fails the whole fetch: the remaining requests are cancelled
// and no partial collection is returned.
func All[T any](ctx context.Context, fetchPage PageFunc[T], opts Options) ([]T, error) {
	items, _, err := fetchAll(ctx, fetchPage, opts)
	return items, err
}

// fetchAll also returns the total count announced by page 0.
func fetchAll[T any](ctx context.Context, fetchPage PageFunc[T], opts Options) ([]T, int, error) {
	opts = opts.normalized()

	first, err := fetchPage(ctx, opts.PageSize, 0)
	if err != nil {
		return nil, 0, err
	}
	if first.TotalCount <= opts.PageSize {
		return first.Items, first.TotalCount, nil
	}

	numPages := NumPages(first.TotalCount, opts.PageSize)

	p := pool.NewWithResults[[]T]().
		WithContext(ctx).
		WithFirstError().
		WithCancelOnError().
		WithMaxGoroutines(min(opts.Workers, numPages-1))

	for page := 1; page < numPages; page++ {
		p.Go(func(ctx context.Context) ([]T, error) {
			result, err := fetchPage(ctx, opts.PageSize, page)
			if err != nil {
				return nil, err
			}
			return result.Items, nil
		})
	}

	pages, err := p.Wait()
	if err != nil {
		return nil, 0, err
	}

	// Sized from what was received, never from the announced total.
	size := len(first.Items)
	for _, pageItems := range pages {
		size += len(pageItems)
	}
	items := make([]T, 0, size)
	items = append(items, first.Items...)
	for _, pageItems := range pages {
		items = append(items, pageItems...)
	}
	return items, first.TotalCount, nil
}

// Fetcher binds a PageFunc to its options.
type Fetcher[T any] struct {
	Resource string
	Page     PageFunc[T]
	Options  Options
	// Logger receives a warning when the server returns a different number
	// of items than it announced. Nil disables it.
	Logger *zap.Logger
}

// All fetches the complete collection and tags errors with the resource name.
func (f Fetcher[T]) All(ctx context.Context) ([]T, error) {
	items, total, err := fetchAll(ctx, f.Page, f.Options)
	if err != nil {
		return nil, fmt.Errorf("fetching all %s: %w", f.Resource, err)
	}
	if f.Logger != nil && len(items) != total {
		f.Logger.Warn("collection size differs from announced total",
			zap.String("resource", f.Resource),
			zap.Int("total_count", total),
			zap.Int("received", len(items)),
		)
	}
	return items, nil
}

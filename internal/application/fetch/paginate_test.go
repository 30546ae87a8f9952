package fetch_test

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/diillson/buildops-audit-go/internal/application/fetch"
	"github.com/diillson/buildops-audit-go/internal/domain/entity"
)

// fakeCollection serves totalCount sequential IDs, page by page.
type fakeCollection struct {
	totalCount int
	failPage   int
	calls      atomic.Int32

	mu    sync.Mutex
	pages []int
}

func (c *fakeCollection) page(ctx context.Context, pageSize, page int) (entity.Page[string], error) {
	c.calls.Add(1)
	c.mu.Lock()
	c.pages = append(c.pages, page)
	c.mu.Unlock()

	if c.failPage >= 0 && page == c.failPage {
		return entity.Page[string]{}, fmt.Errorf("page %d: boom", page)
	}

	var items []string
	for i := page * pageSize; i < (page+1)*pageSize && i < c.totalCount; i++ {
		items = append(items, fmt.Sprintf("item-%04d", i))
	}
	return entity.Page[string]{Items: items, TotalCount: c.totalCount}, nil
}

func TestAllReturnsEveryItemExactlyOnce(t *testing.T) {
	for _, workers := range []int{1, 3, 10, 50} {
		for _, total := range []int{1, 99, 100, 101, 250, 1000} {
			t.Run(fmt.Sprintf("workers_%d_total_%d", workers, total), func(t *testing.T) {
				c := &fakeCollection{totalCount: total, failPage: -1}

				items, err := fetch.All(context.Background(), c.page, fetch.Options{PageSize: 100, Workers: workers})
				require.NoError(t, err)
				require.Len(t, items, total)

				seen := make(map[string]struct{}, len(items))
				for _, item := range items {
					seen[item] = struct{}{}
				}
				assert.Len(t, seen, total, "duplicate items returned")
				assert.EqualValues(t, fetch.NumPages(total, 100), c.calls.Load())
			})
		}
	}
}

func TestAllSinglePageIssuesOneRequest(t *testing.T) {
	c := &fakeCollection{totalCount: 100, failPage: -1}

	items, err := fetch.All(context.Background(), c.page, fetch.Options{PageSize: 100, Workers: 10})
	require.NoError(t, err)
	assert.Len(t, items, 100)
	assert.EqualValues(t, 1, c.calls.Load())
	assert.Equal(t, []int{0}, c.pages)
}

func TestAllEmptyCollection(t *testing.T) {
	c := &fakeCollection{totalCount: 0, failPage: -1}

	items, err := fetch.All(context.Background(), c.page, fetch.Options{})
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.EqualValues(t, 1, c.calls.Load())
}

func TestAllFailsWhenAnyPageFails(t *testing.T) {
	c := &fakeCollection{totalCount: 1000, failPage: 7}

	items, err := fetch.All(context.Background(), c.page, fetch.Options{PageSize: 100, Workers: 4})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "page 7")
	assert.Nil(t, items)
}

func TestAllFailsWhenFirstPageFails(t *testing.T) {
	c := &fakeCollection{totalCount: 1000, failPage: 0}

	items, err := fetch.All(context.Background(), c.page, fetch.Options{PageSize: 100, Workers: 4})
	require.Error(t, err)
	assert.Nil(t, items)
	assert.EqualValues(t, 1, c.calls.Load())
}

func TestAllRequestsEveryPageIndex(t *testing.T) {
	c := &fakeCollection{totalCount: 450, failPage: -1}

	_, err := fetch.All(context.Background(), c.page, fetch.Options{PageSize: 100, Workers: 2})
	require.NoError(t, err)

	sort.Ints(c.pages)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, c.pages)
}

func TestAllDefaultsPageSize(t *testing.T) {
	var sizes []int
	var mu sync.Mutex
	pageFn := func(ctx context.Context, pageSize, page int) (entity.Page[int], error) {
		mu.Lock()
		sizes = append(sizes, pageSize)
		mu.Unlock()
		return entity.Page[int]{Items: []int{page}, TotalCount: 150}, nil
	}

	_, err := fetch.All(context.Background(), pageFn, fetch.Options{PageSize: -5})
	require.NoError(t, err)
	assert.Equal(t, []int{fetch.DefaultPageSize, fetch.DefaultPageSize}, sizes)
}

func TestFetcherWrapsResourceName(t *testing.T) {
	failing := func(ctx context.Context, pageSize, page int) (entity.Page[int], error) {
		return entity.Page[int]{}, errors.New("connection refused")
	}

	_, err := fetch.Fetcher[int]{Resource: "vendors", Page: failing}.All(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetching all vendors")
}

// shortPages announces totalCount items but serves at most served of them.
func shortPages(totalCount, served int) fetch.PageFunc[int] {
	return func(ctx context.Context, pageSize, page int) (entity.Page[int], error) {
		var items []int
		for i := page * pageSize; i < (page+1)*pageSize && i < served; i++ {
			items = append(items, i)
		}
		return entity.Page[int]{Items: items, TotalCount: totalCount}, nil
	}
}

func TestFetcherWarnsOnShortCollection(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	f := fetch.Fetcher[int]{
		Resource: "properties",
		Page:     shortPages(250, 200),
		Options:  fetch.Options{PageSize: 100, Workers: 2},
		Logger:   zap.New(core),
	}

	items, err := f.All(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 200)

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "properties", fields["resource"])
	assert.EqualValues(t, 250, fields["total_count"])
	assert.EqualValues(t, 200, fields["received"])
}

func TestFetcherQuietWhenCountsMatch(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	c := &fakeCollection{totalCount: 250, failPage: -1}

	items, err := fetch.Fetcher[string]{Resource: "vendors", Page: c.page, Logger: zap.New(core)}.All(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 250)
	assert.Zero(t, logs.Len())
}

func TestAllCapacityIgnoresAnnouncedTotal(t *testing.T) {
	// Only page 0 answers with items; the announced total is huge.
	pageFn := func(ctx context.Context, pageSize, page int) (entity.Page[int], error) {
		if page == 0 {
			return entity.Page[int]{Items: []int{1, 2}, TotalCount: 1 << 20}, nil
		}
		return entity.Page[int]{TotalCount: 1 << 20}, nil
	}

	items, err := fetch.All(context.Background(), pageFn, fetch.Options{PageSize: 1 << 18, Workers: 2})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, items)
	assert.Equal(t, 2, cap(items))
}

func TestNumPages(t *testing.T) {
	assert.Equal(t, 0, fetch.NumPages(0, 100))
	assert.Equal(t, 1, fetch.NumPages(1, 100))
	assert.Equal(t, 1, fetch.NumPages(100, 100))
	assert.Equal(t, 2, fetch.NumPages(101, 100))
	assert.Equal(t, 0, fetch.NumPages(10, 0))
}

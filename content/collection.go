package content

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// DefaultTTL is how long a fetched result is served before refetching.
const DefaultTTL = time.Hour

// Options controls a Collection. The zero value uses DefaultTTL, the wall
// clock and stderr.
type Options struct {
	// TTL is the staleness limit of the cached result.
	TTL time.Duration
	// Now returns the current time. Replaced in tests.
	Now func() time.Time
	// Log receives "[marquee] content: ..." lines for failed fetches and
	// skipped records.
	Log io.Writer
}

// Collection is one content type: a data source, its sort order, a mapping
// from records to T, and a single cached result. Safe for concurrent use.
//
// Concurrent misses share one query. The query runs without holding the
// cache lock, so Invalidate and cache hits never wait on a slow source.
type Collection[T any] struct {
	name       string
	source     Source
	dataSource string
	sort       Sort
	mapFn      func(Record) (T, error)

	ttl time.Duration
	now func() time.Time
	log io.Writer

	group singleflight.Group

	mu        sync.Mutex
	items     []T
	fetchedAt time.Time
	valid     bool
	gen       uint64 // bumped by Invalidate; a fetch started earlier is not cached
}

// NewCollection creates a Collection named name over dataSource. mapFn turns
// each record into a T; records it rejects are skipped.
func NewCollection[T any](name string, src Source, dataSource string, sort Sort, mapFn func(Record) (T, error), opts Options) *Collection[T] {
	c := &Collection[T]{
		name:       name,
		source:     src,
		dataSource: dataSource,
		sort:       sort,
		mapFn:      mapFn,
		ttl:        opts.TTL,
		now:        opts.Now,
		log:        opts.Log,
	}
	if c.ttl <= 0 {
		c.ttl = DefaultTTL
	}
	if c.now == nil {
		c.now = time.Now
	}
	if c.log == nil {
		c.log = os.Stderr
	}
	return c
}

// Name returns the content type name.
func (c *Collection[T]) Name() string { return c.name }

// Get returns the cached items, refetching when the cache is empty or older
// than the TTL. A failed fetch is logged and returns an empty result; the
// cache is left untouched so the next call retries.
func (c *Collection[T]) Get(ctx context.Context) []T {
	if items, ok := c.cached(); ok {
		return items
	}

	v, err, _ := c.group.Do(c.name, func() (any, error) {
		c.mu.Lock()
		gen := c.gen
		c.mu.Unlock()

		now := c.now()
		items, err := c.fetch(ctx)
		if err != nil {
			c.logf("fetch %s failed: %v", c.name, err)
			return nil, err
		}

		c.mu.Lock()
		if c.gen == gen {
			c.items = items
			c.fetchedAt = now
			c.valid = true
		}
		c.mu.Unlock()
		return items, nil
	})
	if err != nil {
		return nil
	}
	return v.([]T)
}

func (c *Collection[T]) cached() ([]T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.valid && c.now().Sub(c.fetchedAt) < c.ttl {
		return c.items, true
	}
	return nil, false
}

// Invalidate drops the cached result. A fetch already in flight still returns
// its result to its callers but does not repopulate the cache.
func (c *Collection[T]) Invalidate() {
	c.mu.Lock()
	c.items = nil
	c.valid = false
	c.gen++
	c.mu.Unlock()
	c.group.Forget(c.name)
}

// Refresh invalidates and refetches.
func (c *Collection[T]) Refresh(ctx context.Context) []T {
	c.Invalidate()
	return c.Get(ctx)
}

func (c *Collection[T]) fetch(ctx context.Context) ([]T, error) {
	records, err := c.source.Query(ctx, c.dataSource, c.sort)
	if err != nil {
		return nil, fmt.Errorf("query %s (%s %s): %w", c.dataSource, c.sort.Key, c.sort.Direction, err)
	}
	items := make([]T, 0, len(records))
	for _, rec := range records {
		v, err := c.mapFn(rec)
		if err != nil {
			c.logf("%s: skip record %s: %v", c.name, rec.ID, err)
			continue
		}
		items = append(items, v)
	}
	return items, nil
}

func (c *Collection[T]) logf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.log, "[marquee] content: "+format+"\n", args...)
}

// Package memory provides an in-process document store. It backs tests and
// the "memory" database driver.
package memory

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"sync"

	"github.com/mariyaselvam/service-booking-BE/internal/query"
)

// DB is a set of named collections.
type DB struct {
	mu          sync.Mutex
	collections map[string]*Collection
}

// New creates an empty DB.
func New() *DB {
	return &DB{collections: make(map[string]*Collection)}
}

// Collection returns the named collection, creating it on first use.
func (db *DB) Collection(name string) *Collection {
	db.mu.Lock()
	defer db.mu.Unlock()
	c, ok := db.collections[name]
	if !ok {
		c = &Collection{name: name}
		db.collections[name] = c
	}
	return c
}

// Ping reports ctx cancellation only; an in-process store is always reachable.
func (db *DB) Ping(ctx context.Context) error { return ctx.Err() }

// Close is a no-op.
func (db *DB) Close(context.Context) error { return nil }

// Collection is a concurrency-safe list of records kept in insertion order.
type Collection struct {
	name    string
	mu      sync.RWMutex
	records []query.Record
	seq     int
}

// Name returns the collection name.
func (c *Collection) Name() string { return c.name }

// Insert stores shallow copies of records. Records without an id are
// assigned a sequential one.
func (c *Collection) Insert(ctx context.Context, records ...query.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, r := range records {
		doc := maps.Clone(r)
		if doc == nil {
			doc = query.Record{}
		}
		c.seq++
		if _, ok := doc[query.IDField]; !ok {
			doc[query.IDField] = strconv.Itoa(c.seq)
		}
		c.records = append(c.records, doc)
	}
	return nil
}

// Find implements query.Store. Ties in sort order keep insertion order.
func (c *Collection) Find(ctx context.Context, opts query.FindOptions) ([]query.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if opts.Skip < 0 || opts.Limit < 0 {
		return nil, fmt.Errorf("memory: negative skip %d or limit %d", opts.Skip, opts.Limit)
	}

	c.mu.RLock()
	matched := make([]query.Record, 0)
	for _, r := range c.records {
		if Match(opts.Filter, r) {
			matched = append(matched, r)
		}
	}
	c.mu.RUnlock()

	if field := opts.Sort.Field; field != "" {
		slices.SortStableFunc(matched, func(a, b query.Record) int {
			n := sortCompare(first(lookup(a, field)), first(lookup(b, field)))
			if opts.Sort.Direction == query.Desc {
				return -n
			}
			return n
		})
	}

	if opts.Skip >= len(matched) {
		return []query.Record{}, nil
	}
	matched = matched[opts.Skip:]
	if opts.Limit > 0 && opts.Limit < len(matched) {
		matched = matched[:opts.Limit]
	}

	out := make([]query.Record, len(matched))
	for i, r := range matched {
		out[i] = opts.Projection.Apply(r)
	}
	return out, nil
}

// Count implements query.Store.
func (c *Collection) Count(ctx context.Context, filter query.Filter) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	var n int64
	for _, r := range c.records {
		if Match(filter, r) {
			n++
		}
	}
	return n, nil
}

// CountBy implements query.GroupCounter. Records without the field are
// counted under the empty key.
func (c *Collection) CountBy(ctx context.Context, field string, filter query.Filter) (map[string]int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	counts := make(map[string]int64)
	for _, r := range c.records {
		if !Match(filter, r) {
			continue
		}
		key := ""
		if v := first(lookup(r, field)); v != nil {
			key = fmt.Sprint(v)
		}
		counts[key]++
	}
	return counts, nil
}

func first(values []any) any {
	if len(values) == 0 {
		return nil
	}
	return values[0]
}

package query

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
)

// ErrNilStore is returned when a listing is run without a store.
var ErrNilStore = errors.New("query: nil store")

// plan is the accumulated description of one listing. Paginate builds it in
// one step and Builder builds it call by call; run executes both.
type plan struct {
	params     Normalized
	filters    []Filter
	sort       Sort
	projection Projection
	paginated  bool
}

func (p plan) filter() Filter {
	return AllOf(p.filters...)
}

// window returns the page and limit actually fetched. An unpaginated plan
// reads the first MaxLimit records.
func (p plan) window() Normalized {
	w := p.params
	if !p.paginated {
		w.Page = 1
		w.Limit = MaxLimit
	}
	return w
}

func (p plan) findOptions() FindOptions {
	w := p.window()
	return FindOptions{
		Filter:     p.filter(),
		Sort:       p.sort,
		Projection: p.projection,
		Skip:       w.Skip(),
		Limit:      w.Limit,
	}
}

// run issues the fetch and the count concurrently and joins them. The count
// sees the same filter as the fetch but none of its sort, window or
// projection. If either fails the first error is returned as is.
func run(ctx context.Context, store Store, p plan) (*Page, error) {
	if store == nil {
		return nil, ErrNilStore
	}

	opts := p.findOptions()

	var (
		data  []Record
		total int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		data, err = store.Find(gctx, opts)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = store.Count(gctx, opts.Filter)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if len(data) > opts.Limit {
		data = data[:opts.Limit]
	}
	if !p.projection.IsZero() {
		for i, r := range data {
			data[i] = p.projection.Apply(r)
		}
	}
	return newPage(data, total, p.window()), nil
}

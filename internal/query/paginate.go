package query

import "context"

// Paginate lists one page of the records in store matching extra and the
// search of params, sorted by params and restricted by projection.
//
// A page past the end is not an error: Data is empty and Meta still reports
// the true totals. Store errors are returned unchanged.
func Paginate(ctx context.Context, store Store, params Params, extra Filter, projection Projection) (*Page, error) {
	n := params.Normalize()
	return run(ctx, store, plan{
		params:     n,
		filters:    []Filter{n.Filter(extra)},
		sort:       n.Sort,
		projection: projection,
		paginated:  true,
	})
}

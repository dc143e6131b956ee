package query

import (
	"context"
	"slices"
)

// Builder composes a listing step by step. It is a value: every method
// returns a new Builder and leaves the receiver unchanged, so a partially
// built Builder can be shared and extended independently.
//
//	page, err := query.From(store, params).
//		Filter(query.Eq("status", "ACTIVE")).
//		Search("name", "description").
//		Sort().
//		Paginate().
//		Execute(ctx)
type Builder struct {
	store Store
	plan  plan
}

// From starts a Builder over store using params for search text, sort and window.
func From(store Store, params Params) Builder {
	return Builder{store: store, plan: plan{params: params.Normalize()}}
}

// Params returns the normalized parameters the builder was created with.
func (b Builder) Params() Normalized { return b.plan.params }

// Search adds the search group over fields when the parameters carry search
// text. It adds to existing constraints rather than replacing them.
func (b Builder) Search(fields ...string) Builder {
	return b.Filter(SearchFilter(b.plan.params.Search, fields))
}

// Filter adds f as an AND constraint. A nil f is ignored.
func (b Builder) Filter(f Filter) Builder {
	if f == nil {
		return b
	}
	b.plan.filters = append(slices.Clip(b.plan.filters), f)
	return b
}

// Sort orders by the normalized sort field and direction of the parameters.
func (b Builder) Sort() Builder {
	b.plan.sort = b.plan.params.Sort
	return b
}

// Select applies p. A zero projection leaves the current one in place.
func (b Builder) Select(p Projection) Builder {
	if p.IsZero() {
		return b
	}
	b.plan.projection = p
	return b
}

// Paginate restricts the fetch to the page window of the parameters.
// Without it, Execute fetches from the first record, at most MaxLimit of them,
// and the page metadata reports page 1 with limit MaxLimit.
func (b Builder) Paginate() Builder {
	b.plan.paginated = true
	return b
}

// Execute runs the fetch and an independent count over the accumulated
// filter. Sort, window and projection affect only the fetch.
func (b Builder) Execute(ctx context.Context) (*Page, error) {
	return run(ctx, b.store, b.plan)
}

// Package query implements the list engine shared by every collection endpoint:
// parameter normalization, filter and search composition, and paginated
// execution against a document store.
//
// Two entry points are provided. Paginate runs a single-shot listing, and
// From starts an immutable Builder for composing constraints incrementally.
// Both produce a Page through the same execution path.
package query

import "context"

// Record is a schemaless document: field name to value.
type Record = map[string]any

// Direction is a sort direction.
type Direction int

const (
	Desc Direction = -1
	Asc  Direction = 1
)

// String returns "asc" or "desc".
func (d Direction) String() string {
	if d == Asc {
		return "asc"
	}
	return "desc"
}

// Sort orders results by a single field.
type Sort struct {
	Field     string
	Direction Direction
}

// FindOptions describes one fetch against a Store.
// A zero Limit means no limit; a zero Sort.Field means store order.
type FindOptions struct {
	Filter     Filter
	Sort       Sort
	Skip       int
	Limit      int
	Projection Projection
}

// Store is the backing store contract consumed by the engine.
// Implementations must tolerate concurrent calls.
type Store interface {
	Find(ctx context.Context, opts FindOptions) ([]Record, error)
	Count(ctx context.Context, filter Filter) (int64, error)
}

// GroupCounter is implemented by stores that can count matching records
// grouped by the value of one field.
type GroupCounter interface {
	CountBy(ctx context.Context, field string, filter Filter) (map[string]int64, error)
}

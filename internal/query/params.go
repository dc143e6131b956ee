package query

import (
	"math"
	"strconv"
	"strings"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
	DefaultSort  = "createdAt"

	// MaxPage bounds page so that Skip stays within int64 for any limit.
	MaxPage = math.MaxInt32
)

// Params holds list parameters as received from a caller, before any
// validation. Every field may be empty or malformed.
type Params struct {
	Page         string
	Limit        string
	Sort         string
	Order        string
	Search       string
	SearchFields []string
}

// Normalized holds fully defaulted, bounds-safe list parameters.
type Normalized struct {
	Page         int
	Limit        int
	Sort         Sort
	Search       string
	SearchFields []string
}

// Normalize coerces, defaults and clamps p. Malformed values are corrected,
// never rejected: page falls back to 1 and is capped at MaxPage, limit to 10 and is clamped to
// [1, MaxLimit], sort to createdAt, and any order other than "asc" sorts
// descending. The sort field is not checked against any schema.
func (p Params) Normalize() Normalized {
	page, ok := parseInt(p.Page)
	if !ok {
		page = DefaultPage
	}
	limit, ok := parseInt(p.Limit)
	if !ok {
		limit = DefaultLimit
	}

	field := strings.TrimSpace(p.Sort)
	if field == "" {
		field = DefaultSort
	}
	dir := Desc
	if strings.EqualFold(strings.TrimSpace(p.Order), "asc") {
		dir = Asc
	}

	var fields []string
	for _, f := range p.SearchFields {
		if f = strings.TrimSpace(f); f != "" {
			fields = append(fields, f)
		}
	}

	return Normalized{
		Page:         page,
		Limit:        limit,
		Sort:         Sort{Field: field, Direction: dir},
		Search:       strings.TrimSpace(p.Search),
		SearchFields: fields,
	}.Normalize()
}

// Normalize clamps page and limit and fills empty defaults. It is idempotent.
func (n Normalized) Normalize() Normalized {
	n.Page = min(max(n.Page, 1), MaxPage)
	n.Limit = min(max(n.Limit, 1), MaxLimit)
	if n.Sort.Field == "" {
		n.Sort.Field = DefaultSort
	}
	if n.Sort.Direction != Asc {
		n.Sort.Direction = Desc
	}
	return n
}

// Skip returns the number of records preceding the current page.
func (n Normalized) Skip() int {
	return (n.Page - 1) * n.Limit
}

// Filter combines extra with the search group of n.
func (n Normalized) Filter(extra Filter) Filter {
	return AllOf(extra, SearchFilter(n.Search, n.SearchFields))
}

// parseInt coerces s to an integer, truncating decimals. It reports false for
// empty, non-numeric, NaN and infinite input.
func parseInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if v, err := strconv.Atoi(s); err == nil {
		return min(max(v, math.MinInt32), math.MaxInt32), true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	// Clamp before converting so huge values cannot overflow int.
	f = math.Trunc(math.Max(math.Min(f, math.MaxInt32), math.MinInt32))
	return int(f), true
}

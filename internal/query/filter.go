package query

import "strings"

// Operator is a comparison applied by a Condition.
type Operator int

const (
	OpEq Operator = iota
	OpNe
	OpGt
	OpGte
	OpLt
	OpLte
	OpIn
	// OpContains matches string values containing Value (a string)
	// case-insensitively. Value is a literal, not a pattern.
	OpContains
)

var operatorNames = [...]string{"eq", "ne", "gt", "gte", "lt", "lte", "in", "contains"}

// String returns the short operator name.
func (o Operator) String() string {
	if o < 0 || int(o) >= len(operatorNames) {
		return "unknown"
	}
	return operatorNames[o]
}

// Filter is a predicate over records. It is one of Condition, And or Or.
// A nil Filter places no constraint.
type Filter interface {
	isFilter()
}

// Condition compares one field against a value.
// For OpIn, Value must be a []any.
type Condition struct {
	Field string
	Op    Operator
	Value any
}

// And matches records satisfying every member. An empty And matches all records.
type And []Filter

// Or matches records satisfying at least one member. An empty Or matches nothing.
type Or []Filter

func (Condition) isFilter() {}
func (And) isFilter()       {}
func (Or) isFilter()        {}

// Eq returns a field equality condition.
func Eq(field string, value any) Condition { return Condition{Field: field, Op: OpEq, Value: value} }

// Ne returns a field inequality condition. A record without the field, or
// with a null value, differs from any non-nil value. Ne(field, nil) matches
// records where the field is present and not null.
func Ne(field string, value any) Condition { return Condition{Field: field, Op: OpNe, Value: value} }

// Gt returns a strict lower bound condition.
func Gt(field string, value any) Condition { return Condition{Field: field, Op: OpGt, Value: value} }

// Gte returns an inclusive lower bound condition.
func Gte(field string, value any) Condition { return Condition{Field: field, Op: OpGte, Value: value} }

// Lt returns a strict upper bound condition.
func Lt(field string, value any) Condition { return Condition{Field: field, Op: OpLt, Value: value} }

// Lte returns an inclusive upper bound condition.
func Lte(field string, value any) Condition { return Condition{Field: field, Op: OpLte, Value: value} }

// In returns a set membership condition.
func In(field string, values ...any) Condition {
	return Condition{Field: field, Op: OpIn, Value: values}
}

// Contains returns a case-insensitive substring condition.
func Contains(field, text string) Condition {
	return Condition{Field: field, Op: OpContains, Value: text}
}

// AllOf combines filters with logical AND. Nil members are dropped and nested
// And groups are flattened. It returns nil when nothing remains and the
// single member when only one does.
func AllOf(filters ...Filter) Filter {
	var out And
	for _, f := range filters {
		switch v := f.(type) {
		case nil:
		case And:
			switch inner := AllOf(v...).(type) {
			case nil:
			case And:
				out = append(out, inner...)
			default:
				out = append(out, inner)
			}
		default:
			out = append(out, v)
		}
	}
	switch len(out) {
	case 0:
		return nil
	case 1:
		return out[0]
	default:
		return out
	}
}

// SearchFilter builds the free-text search group: an Or of one Contains
// condition per field. It returns nil when text or fields are empty, so a
// blank search never narrows or empties a listing.
func SearchFilter(text string, fields []string) Filter {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	group := make(Or, 0, len(fields))
	for _, field := range fields {
		if field = strings.TrimSpace(field); field != "" {
			group = append(group, Contains(field, text))
		}
	}
	if len(group) == 0 {
		return nil
	}
	return group
}

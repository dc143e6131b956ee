package sqlstore

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm/clause"

	"github.com/mariyaselvam/service-booking-BE/internal/query"
)

// ErrNestedField is returned for dotted field paths, which have no column form.
var ErrNestedField = errors.New("sqlstore: nested field paths are not supported")

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// never is an always-false condition, used for an empty Or.
var never = clause.Expr{SQL: "1 = 0"}

// translate converts f into a gorm expression. A nil result places no constraint.
//
// Single-member groups are unwrapped: gorm renders a lone OrConditions that
// follows another expression with OR instead of AND.
func translate(f query.Filter) (clause.Expression, error) {
	switch v := f.(type) {
	case nil:
		return nil, nil
	case query.And:
		exprs, err := translateAll(v)
		if err != nil {
			return nil, err
		}
		switch len(exprs) {
		case 0:
			return nil, nil
		case 1:
			return exprs[0], nil
		}
		return clause.And(exprs...), nil
	case query.Or:
		if len(v) == 0 {
			return never, nil
		}
		exprs, err := translateAll(v)
		if err != nil {
			return nil, err
		}
		if len(exprs) < len(v) {
			// An unconstrained member makes the whole group true.
			return nil, nil
		}
		if len(exprs) == 1 {
			return exprs[0], nil
		}
		return clause.Or(exprs...), nil
	case query.Condition:
		return translateCondition(v)
	default:
		return nil, fmt.Errorf("sqlstore: unsupported filter %T", f)
	}
}

func translateAll(filters []query.Filter) ([]clause.Expression, error) {
	exprs := make([]clause.Expression, 0, len(filters))
	for _, f := range filters {
		e, err := translate(f)
		if err != nil {
			return nil, err
		}
		if e != nil {
			exprs = append(exprs, e)
		}
	}
	return exprs, nil
}

func translateCondition(c query.Condition) (clause.Expression, error) {
	col, err := column(c.Field)
	if err != nil {
		return nil, err
	}
	switch c.Op {
	case query.OpEq:
		return clause.Eq{Column: col, Value: c.Value}, nil
	case query.OpNe:
		if c.Value == nil {
			return clause.Neq{Column: col, Value: nil}, nil
		}
		// NULL counts as different, matching a missing document field.
		return clause.Or(clause.Neq{Column: col, Value: c.Value}, clause.Eq{Column: col, Value: nil}), nil
	case query.OpGt:
		return clause.Gt{Column: col, Value: c.Value}, nil
	case query.OpGte:
		return clause.Gte{Column: col, Value: c.Value}, nil
	case query.OpLt:
		return clause.Lt{Column: col, Value: c.Value}, nil
	case query.OpLte:
		return clause.Lte{Column: col, Value: c.Value}, nil
	case query.OpIn:
		values, ok := c.Value.([]any)
		if !ok {
			return nil, fmt.Errorf("sqlstore: in condition on %q needs []any, got %T", c.Field, c.Value)
		}
		return clause.IN{Column: col, Values: values}, nil
	case query.OpContains:
		text, ok := c.Value.(string)
		if !ok {
			return nil, fmt.Errorf("sqlstore: contains condition on %q needs a string, got %T", c.Field, c.Value)
		}
		pattern := "%" + likeEscaper.Replace(strings.ToLower(text)) + "%"
		return clause.Expr{SQL: `LOWER(?) LIKE ? ESCAPE '\'`, Vars: []any{col, pattern}}, nil
	default:
		return nil, fmt.Errorf("sqlstore: unsupported operator %s", c.Op)
	}
}

func column(field string) (clause.Column, error) {
	if strings.Contains(field, ".") {
		return clause.Column{}, fmt.Errorf("%w: %q", ErrNestedField, field)
	}
	return clause.Column{Name: field}, nil
}

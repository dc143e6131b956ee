package memory

import (
	"cmp"
	"reflect"
	"strings"
	"time"

	"github.com/mariyaselvam/service-booking-BE/internal/query"
)

// Match reports whether r satisfies f. Field paths may be dotted; arrays met
// along a path are searched element-wise, and a condition holds when any
// reached value satisfies it.
func Match(f query.Filter, r query.Record) bool {
	switch v := f.(type) {
	case nil:
		return true
	case query.And:
		for _, member := range v {
			if !Match(member, r) {
				return false
			}
		}
		return true
	case query.Or:
		for _, member := range v {
			if Match(member, r) {
				return true
			}
		}
		return false
	case query.Condition:
		return matchCondition(v, r)
	default:
		return false
	}
}

func matchCondition(c query.Condition, r query.Record) bool {
	values := lookup(r, c.Field)
	switch c.Op {
	case query.OpEq:
		return matchEq(values, c.Value)
	case query.OpNe:
		return !matchEq(values, c.Value)
	case query.OpGt, query.OpGte, query.OpLt, query.OpLte:
		for _, v := range values {
			n, ok := compare(v, c.Value)
			if !ok {
				continue
			}
			switch {
			case c.Op == query.OpGt && n > 0,
				c.Op == query.OpGte && n >= 0,
				c.Op == query.OpLt && n < 0,
				c.Op == query.OpLte && n <= 0:
				return true
			}
		}
		return false
	case query.OpIn:
		set := reflect.ValueOf(c.Value)
		if set.Kind() != reflect.Slice && set.Kind() != reflect.Array {
			return false
		}
		for i := 0; i < set.Len(); i++ {
			if matchEq(values, set.Index(i).Interface()) {
				return true
			}
		}
		return false
	case query.OpContains:
		text, ok := c.Value.(string)
		if !ok {
			return false
		}
		text = strings.ToLower(text)
		for _, v := range values {
			if s, ok := v.(string); ok && strings.Contains(strings.ToLower(s), text) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// matchEq treats a missing field as nil, so Eq(field, nil) matches records
// without the field.
func matchEq(values []any, want any) bool {
	if len(values) == 0 {
		return want == nil
	}
	for _, v := range values {
		if equal(v, want) {
			return true
		}
	}
	return false
}

// lookup returns the values reached by a dotted path, expanding arrays.
func lookup(r query.Record, path string) []any {
	current := []any{r}
	for _, key := range strings.Split(path, ".") {
		var next []any
		for _, v := range current {
			for _, doc := range documents(v) {
				if field, ok := doc[key]; ok {
					next = append(next, field)
				}
			}
		}
		current = next
	}
	var out []any
	for _, v := range current {
		if items, ok := asSlice(v); ok {
			out = append(out, items...)
			continue
		}
		out = append(out, v)
	}
	return out
}

func documents(v any) []map[string]any {
	switch d := v.(type) {
	case map[string]any:
		return []map[string]any{d}
	case []map[string]any:
		return d
	case []any:
		var out []map[string]any
		for _, item := range d {
			if m, ok := item.(map[string]any); ok {
				out = append(out, m)
			}
		}
		return out
	}
	return nil
}

func asSlice(v any) ([]any, bool) {
	switch s := v.(type) {
	case []any:
		return s, true
	case []string:
		out := make([]any, len(s))
		for i, item := range s {
			out[i] = item
		}
		return out, true
	}
	return nil, false
}

func equal(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if n, ok := compare(a, b); ok {
		return n == 0
	}
	return reflect.DeepEqual(a, b)
}

// compare orders two values of the same kind. Numbers compare across Go
// numeric types. It reports false for values of different kinds.
func compare(a, b any) (int, bool) {
	if x, ok := toFloat(a); ok {
		y, ok := toFloat(b)
		if !ok {
			return 0, false
		}
		return cmp.Compare(x, y), true
	}
	switch x := a.(type) {
	case string:
		if y, ok := b.(string); ok {
			return strings.Compare(x, y), true
		}
	case time.Time:
		if y, ok := b.(time.Time); ok {
			return x.Compare(y), true
		}
	case bool:
		if y, ok := b.(bool); ok {
			switch {
			case x == y:
				return 0, true
			case !x:
				return -1, true
			default:
				return 1, true
			}
		}
	}
	return 0, false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

// typeRank orders values of different kinds: missing, numbers, strings,
// booleans, times, anything else.
func typeRank(v any) int {
	if v == nil {
		return 0
	}
	if _, ok := toFloat(v); ok {
		return 1
	}
	switch v.(type) {
	case string:
		return 2
	case bool:
		return 3
	case time.Time:
		return 4
	}
	return 5
}

func sortCompare(a, b any) int {
	if ra, rb := typeRank(a), typeRank(b); ra != rb {
		return cmp.Compare(ra, rb)
	}
	if n, ok := compare(a, b); ok {
		return n
	}
	return 0
}

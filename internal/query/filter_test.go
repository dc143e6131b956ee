package query

import (
	"reflect"
	"testing"
)

func TestAllOf(t *testing.T) {
	role := Eq("role", "VENDOR")
	status := Eq("status", "ACTIVE")
	tier := Eq("tier", "GOLD")

	tests := []struct {
		name string
		in   []Filter
		want Filter
	}{
		{"nothing", nil, nil},
		{"only nils", []Filter{nil, nil}, nil},
		{"single member unwrapped", []Filter{nil, role}, role},
		{"two members", []Filter{role, status}, And{role, status}},
		{"nested and flattened", []Filter{role, And{status, And{tier}}}, And{role, status, tier}},
		{"empty and dropped", []Filter{And{}, role}, role},
		{"or kept as member", []Filter{role, Or{status, tier}}, And{role, Or{status, tier}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AllOf(tt.in...)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("AllOf() = %#v; want %#v", got, tt.want)
			}
		})
	}
}

func TestSearchFilter(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		fields []string
		want   Filter
	}{
		{"empty text", "", []string{"fullName"}, nil},
		{"blank text", "   ", []string{"fullName"}, nil},
		{"no fields", "john", nil, nil},
		{"only blank fields", "john", []string{"", " "}, nil},
		{"one field", "john", []string{"fullName"}, Or{Contains("fullName", "john")}},
		{
			"two fields",
			" john ",
			[]string{"fullName", "email"},
			Or{Contains("fullName", "john"), Contains("email", "john")},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SearchFilter(tt.text, tt.fields)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SearchFilter() = %#v; want %#v", got, tt.want)
			}
		})
	}
}

func TestNormalizedFilter(t *testing.T) {
	role := Eq("role", "VENDOR")

	n := Params{Search: "john", SearchFields: []string{"fullName", "email"}}.Normalize()
	want := And{role, Or{Contains("fullName", "john"), Contains("email", "john")}}
	if got := n.Filter(role); !reflect.DeepEqual(got, want) {
		t.Errorf("Filter() = %#v; want %#v", got, want)
	}

	// Without search text the structured filter is returned alone.
	n = Params{SearchFields: []string{"fullName"}}.Normalize()
	if got := n.Filter(role); !reflect.DeepEqual(got, role) {
		t.Errorf("Filter() = %#v; want %#v", got, role)
	}
	if got := n.Filter(nil); got != nil {
		t.Errorf("Filter(nil) = %#v; want nil", got)
	}
}

func TestInCondition(t *testing.T) {
	c := In("status", "PENDING", "CONFIRMED")
	if c.Op != OpIn {
		t.Fatalf("Op = %v; want in", c.Op)
	}
	values, ok := c.Value.([]any)
	if !ok || len(values) != 2 {
		t.Fatalf("Value = %#v; want []any of two", c.Value)
	}
}

func TestOperatorString(t *testing.T) {
	tests := map[Operator]string{
		OpEq:         "eq",
		OpNe:         "ne",
		OpGte:        "gte",
		OpContains:   "contains",
		Operator(99): "unknown",
	}
	for op, want := range tests {
		if got := op.String(); got != want {
			t.Errorf("Operator(%d).String() = %q; want %q", int(op), got, want)
		}
	}
}

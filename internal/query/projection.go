package query

import (
	"slices"
	"strings"
)

// IDField is the identifier field kept by inclusion projections.
const IDField = "id"

// Projection selects which top-level fields are returned. The zero value
// returns every field.
type Projection struct {
	exclude bool
	fields  []string
}

// Include returns a projection keeping only fields (and IDField).
func Include(fields ...string) Projection {
	return Projection{fields: cleanFields(fields)}
}

// Exclude returns a projection dropping fields.
func Exclude(fields ...string) Projection {
	return Projection{exclude: true, fields: cleanFields(fields)}
}

// ParseProjection reads a space-separated field list. Fields prefixed with
// "-" are excluded. Mixing excluded and included fields is not supported;
// the first field decides the mode and the prefix is ignored afterwards.
func ParseProjection(expr string) Projection {
	parts := strings.Fields(expr)
	if len(parts) == 0 {
		return Projection{}
	}
	exclude := strings.HasPrefix(parts[0], "-")
	fields := make([]string, 0, len(parts))
	for _, p := range parts {
		fields = append(fields, strings.TrimPrefix(p, "-"))
	}
	if exclude {
		return Exclude(fields...)
	}
	return Include(fields...)
}

// IsZero reports whether p selects every field.
func (p Projection) IsZero() bool { return len(p.fields) == 0 }

// Excludes reports whether p drops the listed fields rather than keeping them.
func (p Projection) Excludes() bool { return p.exclude }

// Fields returns a copy of the projected field names.
func (p Projection) Fields() []string { return slices.Clone(p.fields) }

// Apply returns a copy of r restricted by p. r is not modified.
func (p Projection) Apply(r Record) Record {
	if r == nil {
		return nil
	}
	out := make(Record, len(r))
	if p.IsZero() {
		for k, v := range r {
			out[k] = v
		}
		return out
	}
	for k, v := range r {
		listed := slices.Contains(p.fields, k)
		if p.exclude != listed || (!p.exclude && k == IDField) {
			out[k] = v
		}
	}
	return out
}

func cleanFields(fields []string) []string {
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" && !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	return out
}

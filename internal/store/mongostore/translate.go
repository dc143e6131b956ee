package mongostore

import (
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mariyaselvam/service-booking-BE/internal/query"
)

const objectIDKey = "_id"

// Translate converts f into a MongoDB filter document. The record id field
// maps to _id, and hex strings compared against it become ObjectIDs.
func Translate(f query.Filter) (bson.D, error) {
	switch v := f.(type) {
	case nil:
		return bson.D{}, nil
	case query.And:
		return group("$and", v, bson.D{})
	case query.Or:
		// {_id: {$in: []}} matches nothing; every document has an _id.
		return group("$or", v, bson.D{{Key: objectIDKey, Value: bson.D{{Key: "$in", Value: bson.A{}}}}})
	case query.Condition:
		return translateCondition(v)
	default:
		return nil, fmt.Errorf("mongostore: unsupported filter %T", f)
	}
}

func group(op string, members []query.Filter, empty bson.D) (bson.D, error) {
	switch len(members) {
	case 0:
		return empty, nil
	case 1:
		return Translate(members[0])
	}
	docs := make(bson.A, 0, len(members))
	for _, m := range members {
		d, err := Translate(m)
		if err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	return bson.D{{Key: op, Value: docs}}, nil
}

func translateCondition(c query.Condition) (bson.D, error) {
	key := fieldKey(c.Field)
	var expr any
	switch c.Op {
	case query.OpEq:
		expr = bson.D{{Key: "$eq", Value: toValue(key, c.Value)}}
	case query.OpNe:
		expr = bson.D{{Key: "$ne", Value: toValue(key, c.Value)}}
	case query.OpGt:
		expr = bson.D{{Key: "$gt", Value: toValue(key, c.Value)}}
	case query.OpGte:
		expr = bson.D{{Key: "$gte", Value: toValue(key, c.Value)}}
	case query.OpLt:
		expr = bson.D{{Key: "$lt", Value: toValue(key, c.Value)}}
	case query.OpLte:
		expr = bson.D{{Key: "$lte", Value: toValue(key, c.Value)}}
	case query.OpIn:
		values, ok := c.Value.([]any)
		if !ok {
			return nil, fmt.Errorf("mongostore: in condition on %q needs []any, got %T", c.Field, c.Value)
		}
		set := make(bson.A, len(values))
		for i, v := range values {
			set[i] = toValue(key, v)
		}
		expr = bson.D{{Key: "$in", Value: set}}
	case query.OpContains:
		text, ok := c.Value.(string)
		if !ok {
			return nil, fmt.Errorf("mongostore: contains condition on %q needs a string, got %T", c.Field, c.Value)
		}
		expr = primitive.Regex{Pattern: regexp.QuoteMeta(text), Options: "i"}
	default:
		return nil, fmt.Errorf("mongostore: unsupported operator %s", c.Op)
	}
	return bson.D{{Key: key, Value: expr}}, nil
}

func fieldKey(field string) string {
	if field == query.IDField {
		return objectIDKey
	}
	return field
}

func toValue(key string, v any) any {
	if key != objectIDKey {
		return v
	}
	if s, ok := v.(string); ok {
		if oid, err := primitive.ObjectIDFromHex(s); err == nil {
			return oid
		}
	}
	return v
}

// projection converts p into a projection document, or nil for the zero value.
func projection(p query.Projection) bson.D {
	if p.IsZero() {
		return nil
	}
	flag := 1
	if p.Excludes() {
		flag = 0
	}
	doc := bson.D{}
	for _, f := range p.Fields() {
		doc = append(doc, bson.E{Key: fieldKey(f), Value: flag})
	}
	return doc
}

// toDocument prepares a record for insertion.
func toDocument(r query.Record) bson.D {
	doc := make(bson.D, 0, len(r))
	if id, ok := r[query.IDField]; ok {
		doc = append(doc, bson.E{Key: objectIDKey, Value: toValue(objectIDKey, id)})
	}
	for k, v := range r {
		if k == query.IDField {
			continue
		}
		doc = append(doc, bson.E{Key: k, Value: v})
	}
	return doc
}

// fromDocument converts a decoded document into a record with plain Go values.
func fromDocument(doc bson.M) query.Record {
	out := make(query.Record, len(doc))
	for k, v := range doc {
		if k == objectIDKey {
			k = query.IDField
		}
		out[k] = plain(v)
	}
	return out
}

func plain(v any) any {
	switch x := v.(type) {
	case primitive.ObjectID:
		return x.Hex()
	case primitive.DateTime:
		return x.Time().UTC()
	case primitive.Timestamp:
		return time.Unix(int64(x.T), 0).UTC()
	case primitive.Decimal128:
		return x.String()
	case primitive.M:
		m := make(map[string]any, len(x))
		for k, item := range x {
			m[k] = plain(item)
		}
		return m
	case primitive.D:
		m := make(map[string]any, len(x))
		for _, e := range x {
			m[e.Key] = plain(e.Value)
		}
		return m
	case primitive.A:
		items := make([]any, len(x))
		for i, item := range x {
			items[i] = plain(item)
		}
		return items
	default:
		return v
	}
}

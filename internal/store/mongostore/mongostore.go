// Package mongostore serves document collections from MongoDB.
package mongostore

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/mariyaselvam/service-booking-BE/internal/query"
)

// DB is one MongoDB database.
type DB struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect dials uri, verifies the connection and selects database.
func Connect(ctx context.Context, uri, database string, timeout time.Duration) (*DB, error) {
	opts := options.Client().ApplyURI(uri)
	if timeout > 0 {
		opts.SetConnectTimeout(timeout).SetServerSelectionTimeout(timeout)
	}
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("mongostore: connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongostore: ping: %w", err)
	}
	return New(client, database), nil
}

// New wraps an existing client.
func New(client *mongo.Client, database string) *DB {
	return &DB{client: client, db: client.Database(database)}
}

// Collection returns the named collection.
func (d *DB) Collection(name string) *Collection {
	return &Collection{coll: d.db.Collection(name)}
}

// Ping checks the primary is reachable.
func (d *DB) Ping(ctx context.Context) error {
	return d.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client.
func (d *DB) Close(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}

// Collection is a MongoDB collection viewed as a query store.
type Collection struct {
	coll *mongo.Collection
}

// Name returns the collection name.
func (c *Collection) Name() string { return c.coll.Name() }

// Find implements query.Store.
func (c *Collection) Find(ctx context.Context, opts query.FindOptions) ([]query.Record, error) {
	filter, err := Translate(opts.Filter)
	if err != nil {
		return nil, err
	}

	fo := options.Find()
	if opts.Sort.Field != "" {
		fo.SetSort(bson.D{{Key: fieldKey(opts.Sort.Field), Value: int(opts.Sort.Direction)}})
	}
	if opts.Skip > 0 {
		fo.SetSkip(int64(opts.Skip))
	}
	if opts.Limit > 0 {
		fo.SetLimit(int64(opts.Limit))
	}
	if p := projection(opts.Projection); p != nil {
		fo.SetProjection(p)
	}

	cursor, err := c.coll.Find(ctx, filter, fo)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]query.Record, len(docs))
	for i, doc := range docs {
		out[i] = fromDocument(doc)
	}
	return out, nil
}

// Count implements query.Store.
func (c *Collection) Count(ctx context.Context, filter query.Filter) (int64, error) {
	doc, err := Translate(filter)
	if err != nil {
		return 0, err
	}
	return c.coll.CountDocuments(ctx, doc)
}

// CountBy implements query.GroupCounter with a $group aggregation. Documents
// without the field are counted under the empty key.
func (c *Collection) CountBy(ctx context.Context, field string, filter query.Filter) (map[string]int64, error) {
	match, err := Translate(filter)
	if err != nil {
		return nil, err
	}
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$" + fieldKey(field)},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}
	cursor, err := c.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Key   any   `bson:"_id"`
		Count int64 `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		key := ""
		if v := plain(r.Key); v != nil {
			key = fmt.Sprint(v)
		}
		counts[key] += r.Count
	}
	return counts, nil
}

// Insert writes records as documents.
func (c *Collection) Insert(ctx context.Context, records ...query.Record) error {
	if len(records) == 0 {
		return nil
	}
	docs := make([]any, len(records))
	for i, r := range records {
		docs[i] = toDocument(r)
	}
	_, err := c.coll.InsertMany(ctx, docs)
	return err
}

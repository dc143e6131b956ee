// Package sqlstore serves document collections from SQL tables through GORM.
// Each collection maps to one table and each top-level field to one column.
package sqlstore

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"slices"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mariyaselvam/service-booking-BE/internal/query"
)

// Option configures a DB.
type Option func(*DB)

// JSONColumns marks columns of table that hold JSON documents. Their values
// are encoded on insert and decoded on read.
func JSONColumns(table string, columns ...string) Option {
	return func(d *DB) {
		d.jsonColumns[table] = append(d.jsonColumns[table], columns...)
	}
}

// DB exposes the tables of a GORM database as collections.
type DB struct {
	db          *gorm.DB
	jsonColumns map[string][]string
}

// New wraps db.
func New(db *gorm.DB, opts ...Option) *DB {
	d := &DB{db: db, jsonColumns: make(map[string][]string)}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Collection returns the collection stored in the named table.
func (d *DB) Collection(name string) *Table {
	return &Table{db: d.db, name: name, jsonColumns: d.jsonColumns[name]}
}

// Ping checks the database connection.
func (d *DB) Ping(ctx context.Context) error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close closes the underlying connection pool.
func (d *DB) Close(context.Context) error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Table is one table viewed as a collection of records.
type Table struct {
	db          *gorm.DB
	name        string
	jsonColumns []string
}

// Name returns the table name.
func (t *Table) Name() string { return t.name }

func (t *Table) scope(ctx context.Context, filter query.Filter) (*gorm.DB, error) {
	expr, err := translate(filter)
	if err != nil {
		return nil, err
	}
	tx := t.db.WithContext(ctx).Table(t.name)
	if expr != nil {
		tx = tx.Where(expr)
	}
	return tx, nil
}

// Find implements query.Store. Inclusion projections become the SELECT list;
// exclusions are applied to the scanned rows. Unknown sort or filter columns
// are passed to the database as is.
func (t *Table) Find(ctx context.Context, opts query.FindOptions) ([]query.Record, error) {
	tx, err := t.scope(ctx, opts.Filter)
	if err != nil {
		return nil, err
	}
	if !opts.Projection.IsZero() && !opts.Projection.Excludes() {
		fields := opts.Projection.Fields()
		if !slices.Contains(fields, query.IDField) {
			fields = append(fields, query.IDField)
		}
		tx = tx.Select(fields)
	}
	if opts.Sort.Field != "" {
		col, err := column(opts.Sort.Field)
		if err != nil {
			return nil, err
		}
		tx = tx.Order(clause.OrderByColumn{Column: col, Desc: opts.Sort.Direction == query.Desc})
	}
	if opts.Limit > 0 {
		tx = tx.Limit(opts.Limit)
	}
	if opts.Skip > 0 {
		tx = tx.Offset(opts.Skip)
	}

	var rows []map[string]any
	if err := tx.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]query.Record, 0, len(rows))
	for _, row := range rows {
		if err := t.decodeJSON(row); err != nil {
			return nil, err
		}
		out = append(out, opts.Projection.Apply(row))
	}
	return out, nil
}

// Count implements query.Store.
func (t *Table) Count(ctx context.Context, filter query.Filter) (int64, error) {
	tx, err := t.scope(ctx, filter)
	if err != nil {
		return 0, err
	}
	var n int64
	if err := tx.Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

type groupRow struct {
	Grp *string
	N   int64
}

// CountBy implements query.GroupCounter with GROUP BY. NULL groups are
// reported under the empty key.
func (t *Table) CountBy(ctx context.Context, field string, filter query.Filter) (map[string]int64, error) {
	col, err := column(field)
	if err != nil {
		return nil, err
	}
	tx, err := t.scope(ctx, filter)
	if err != nil {
		return nil, err
	}
	quoted := tx.Statement.Quote(col)

	var rows []groupRow
	if err := tx.Select(quoted + " AS grp, COUNT(*) AS n").Group(quoted).Scan(&rows).Error; err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		key := ""
		if r.Grp != nil {
			key = *r.Grp
		}
		counts[key] += r.N
	}
	return counts, nil
}

// Insert writes records as rows. Values of JSON columns are encoded.
func (t *Table) Insert(ctx context.Context, records ...query.Record) error {
	if len(records) == 0 {
		return nil
	}
	rows := make([]map[string]any, 0, len(records))
	for _, r := range records {
		row := maps.Clone(r)
		for _, col := range t.jsonColumns {
			v, ok := row[col]
			if !ok || v == nil {
				continue
			}
			b, err := json.Marshal(v)
			if err != nil {
				return fmt.Errorf("sqlstore: encode %s.%s: %w", t.name, col, err)
			}
			row[col] = string(b)
		}
		rows = append(rows, row)
	}
	return t.db.WithContext(ctx).Table(t.name).Create(&rows).Error
}

func (t *Table) decodeJSON(row map[string]any) error {
	for _, col := range t.jsonColumns {
		var raw []byte
		switch v := row[col].(type) {
		case string:
			raw = []byte(v)
		case []byte:
			raw = v
		default:
			continue
		}
		if len(raw) == 0 {
			continue
		}
		var decoded any
		if err := json.Unmarshal(raw, &decoded); err != nil {
			return fmt.Errorf("sqlstore: decode %s.%s: %w", t.name, col, err)
		}
		row[col] = decoded
	}
	return nil
}

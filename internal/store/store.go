// Package store selects and opens the document backend named by the
// database configuration.
package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mariyaselvam/service-booking-BE/internal/config"
	"github.com/mariyaselvam/service-booking-BE/internal/query"
	"github.com/mariyaselvam/service-booking-BE/internal/store/memory"
	"github.com/mariyaselvam/service-booking-BE/internal/store/mongostore"
	"github.com/mariyaselvam/service-booking-BE/internal/store/sqlstore"
)

// Writer inserts records into a collection.
type Writer interface {
	Insert(ctx context.Context, records ...query.Record) error
}

// Collection is everything the application needs from one collection.
type Collection interface {
	query.Store
	query.GroupCounter
	Writer
}

// Backend is an open database.
type Backend interface {
	Driver() string
	Collection(name string) Collection
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// Schema describes the stored types for backends that need one.
// SQL backends migrate Models and treat JSONColumns as nested documents.
type Schema struct {
	Models      []any
	JSONColumns map[string][]string
	Migrate     bool
}

// source is implemented by every concrete backend package.
type source[C Collection] interface {
	Collection(name string) C
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

type backend[C Collection] struct {
	driver string
	src    source[C]
}

func (b backend[C]) Driver() string { return b.driver }
func (b backend[C]) Collection(name string) Collection { return b.src.Collection(name) }
func (b backend[C]) Ping(ctx context.Context) error { return b.src.Ping(ctx) }
func (b backend[C]) Close(ctx context.Context) error { return b.src.Close(ctx) }

// NewMemory returns an empty in-process backend.
func NewMemory() Backend {
	return backend[*memory.Collection]{driver: config.DriverMemory, src: memory.New()}
}

// Open connects to the backend selected by cfg.Driver.
func Open(ctx context.Context, cfg *config.DatabaseConfig, logger *slog.Logger, schema Schema) (Backend, error) {
	if cfg == nil {
		return nil, errors.New("database config is nil")
	}
	if logger == nil {
		return nil, errors.New("logger is nil")
	}

	switch cfg.Driver {
	case config.DriverMemory:
		logger.Info("using in-memory store")
		return NewMemory(), nil

	case config.DriverSQLite, config.DriverPostgres:
		db, err := config.SetupDatabase(cfg, logger)
		if err != nil {
			return nil, err
		}
		if schema.Migrate && len(schema.Models) > 0 {
			if err := db.AutoMigrate(schema.Models...); err != nil {
				if sqlDB, dbErr := db.DB(); dbErr == nil {
					sqlDB.Close()
				}
				return nil, fmt.Errorf("auto migrate: %w", err)
			}
			logger.Info("auto migration completed")
		}
		opts := make([]sqlstore.Option, 0, len(schema.JSONColumns))
		for table, cols := range schema.JSONColumns {
			opts = append(opts, sqlstore.JSONColumns(table, cols...))
		}
		return backend[*sqlstore.Table]{driver: cfg.Driver, src: sqlstore.New(db, opts...)}, nil

	case config.DriverMongoDB:
		timeout := cfg.MongoDB.EffectiveConnectTimeout()
		connectCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		db, err := mongostore.Connect(connectCtx, cfg.MongoDB.URI, cfg.MongoDB.Database, timeout)
		if err != nil {
			return nil, err
		}
		logger.Info("mongodb connected",
			slog.String("database", cfg.MongoDB.Database),
			slog.Duration("connect_timeout", timeout),
		)
		return backend[*mongostore.Collection]{driver: cfg.Driver, src: db}, nil

	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}
}

// Package postgres implements the datastore port against a PostgreSQL
// database using pgx connection pooling.
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/atlas-intel/atlas-cli/internal/core/ports/driven"
	"github.com/atlas-intel/atlas-cli/internal/logger"
)

// Ensure Datastore implements the interface.
var _ driven.Datastore = (*Datastore)(nil)

// Datastore is the pgx-backed implementation of the datastore port.
type Datastore struct {
	pool *pgxpool.Pool
}

// New connects to the database at the given URL and verifies the
// connection.
func New(ctx context.Context, databaseURL string) (*Datastore, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("database URL not configured")
	}

	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing database config: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &Datastore{pool: pool}, nil
}

// NewWithPool wraps an existing pool, for callers that manage pooling
// themselves.
func NewWithPool(pool *pgxpool.Pool) *Datastore {
	return &Datastore{pool: pool}
}

// Close releases the connection pool.
func (d *Datastore) Close() {
	d.pool.Close()
}

// Select returns the rows of table matching the filter.
func (d *Datastore) Select(ctx context.Context, table string, filter driven.Filter) ([]driven.Row, error) {
	query, args := buildSelect(table, filter)
	logger.Debug("datastore select: %s", query)

	rows, err := d.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", table, err)
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	var result []driven.Row
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("reading %s row: %w", table, err)
		}
		row := make(driven.Row, len(fields))
		for i, field := range fields {
			row[field.Name] = values[i]
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating %s rows: %w", table, err)
	}
	return result, nil
}

// Insert writes the given rows to table, one statement per row.
func (d *Datastore) Insert(ctx context.Context, table string, rows []driven.Row) error {
	for _, row := range rows {
		query, args := buildInsert(table, row)
		logger.Debug("datastore insert: %s", query)
		if _, err := d.pool.Exec(ctx, query, args...); err != nil {
			return fmt.Errorf("inserting into %s: %w", table, err)
		}
	}
	return nil
}

// Update sets the given values on every row matching the filter.
func (d *Datastore) Update(ctx context.Context, table string, values driven.Row, filter driven.Filter) error {
	query, args := buildUpdate(table, values, filter)
	logger.Debug("datastore update: %s", query)
	if _, err := d.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("updating %s: %w", table, err)
	}
	return nil
}

// Delete removes every row matching the filter.
func (d *Datastore) Delete(ctx context.Context, table string, filter driven.Filter) error {
	query, args := buildDelete(table, filter)
	logger.Debug("datastore delete: %s", query)
	if _, err := d.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("deleting from %s: %w", table, err)
	}
	return nil
}

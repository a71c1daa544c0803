// Package memory provides an in-memory implementation of the datastore
// port for tests and offline use.
package memory

import (
	"context"
	"sync"

	"github.com/atlas-intel/atlas-cli/internal/core/ports/driven"
)

// Ensure Datastore implements the interface.
var _ driven.Datastore = (*Datastore)(nil)

// Datastore is an in-memory implementation of driven.Datastore backed by
// per-table row slices. Insertion order is preserved.
type Datastore struct {
	mu     sync.RWMutex
	tables map[string][]driven.Row
}

// NewDatastore creates an empty in-memory datastore.
func NewDatastore() *Datastore {
	return &Datastore{
		tables: make(map[string][]driven.Row),
	}
}

// Select returns copies of the rows matching the filter.
func (d *Datastore) Select(_ context.Context, table string, filter driven.Filter) ([]driven.Row, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var result []driven.Row
	for _, row := range d.tables[table] {
		if matches(row, filter) {
			result = append(result, copyRow(row))
		}
	}
	return result, nil
}

// Insert appends copies of the given rows to the table.
func (d *Datastore) Insert(_ context.Context, table string, rows []driven.Row) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, row := range rows {
		d.tables[table] = append(d.tables[table], copyRow(row))
	}
	return nil
}

// Update sets values on every row matching the filter.
func (d *Datastore) Update(_ context.Context, table string, values driven.Row, filter driven.Filter) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, row := range d.tables[table] {
		if matches(row, filter) {
			for k, v := range values {
				row[k] = v
			}
		}
	}
	return nil
}

// Delete removes every row matching the filter.
func (d *Datastore) Delete(_ context.Context, table string, filter driven.Filter) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	kept := d.tables[table][:0]
	for _, row := range d.tables[table] {
		if !matches(row, filter) {
			kept = append(kept, row)
		}
	}
	d.tables[table] = kept
	return nil
}

// Rows returns copies of all rows in a table, in insertion order.
// Test helper.
func (d *Datastore) Rows(table string) []driven.Row {
	d.mu.RLock()
	defer d.mu.RUnlock()

	result := make([]driven.Row, 0, len(d.tables[table]))
	for _, row := range d.tables[table] {
		result = append(result, copyRow(row))
	}
	return result
}

// matches reports whether the row satisfies the filter.
func matches(row driven.Row, filter driven.Filter) bool {
	for col, val := range filter.Eq {
		if row[col] != val {
			return false
		}
	}
	if len(filter.Or) == 0 {
		return true
	}
	for _, alt := range filter.Or {
		ok := true
		for col, val := range alt {
			if row[col] != val {
				ok = false
				break
			}
		}
		if ok {
			return true
		}
	}
	return false
}

func copyRow(row driven.Row) driven.Row {
	out := make(driven.Row, len(row))
	for k, v := range row {
		out[k] = v
	}
	return out
}

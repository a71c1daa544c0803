package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atlas-intel/atlas-cli/internal/core/ports/driven"
)

func TestDatastore_InsertAndSelect(t *testing.T) {
	ds := NewDatastore()
	ctx := context.Background()

	err := ds.Insert(ctx, "companies", []driven.Row{
		{"id": "c-1", "name": "Acme"},
		{"id": "c-2", "name": "Globex"},
	})
	require.NoError(t, err)

	rows, err := ds.Select(ctx, "companies", driven.Filter{Eq: map[string]any{"id": "c-1"}})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Acme", rows[0]["name"])
}

func TestDatastore_SelectAll(t *testing.T) {
	ds := NewDatastore()
	ctx := context.Background()

	require.NoError(t, ds.Insert(ctx, "companies", []driven.Row{
		{"id": "c-1"}, {"id": "c-2"}, {"id": "c-3"},
	}))

	rows, err := ds.Select(ctx, "companies", driven.Filter{})
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestDatastore_OrFilter(t *testing.T) {
	ds := NewDatastore()
	ctx := context.Background()

	require.NoError(t, ds.Insert(ctx, "company_relationships", []driven.Row{
		{"id": "r-1", "parent_company_id": "c-1", "subsidiary_company_id": "c-2"},
		{"id": "r-2", "parent_company_id": "c-3", "subsidiary_company_id": "c-1"},
		{"id": "r-3", "parent_company_id": "c-4", "subsidiary_company_id": "c-5"},
	}))

	filter := driven.Filter{Or: []map[string]any{
		{"parent_company_id": "c-1"},
		{"subsidiary_company_id": "c-1"},
	}}

	rows, err := ds.Select(ctx, "company_relationships", filter)
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	require.NoError(t, ds.Delete(ctx, "company_relationships", filter))
	remaining := ds.Rows("company_relationships")
	require.Len(t, remaining, 1)
	assert.Equal(t, "r-3", remaining[0]["id"])
}

func TestDatastore_Update(t *testing.T) {
	ds := NewDatastore()
	ctx := context.Background()

	require.NoError(t, ds.Insert(ctx, "companies", []driven.Row{
		{"id": "c-1", "name": "Acme", "sector": "tech"},
	}))

	err := ds.Update(ctx, "companies", driven.Row{"name": "Acme Corp"},
		driven.Filter{Eq: map[string]any{"id": "c-1"}})
	require.NoError(t, err)

	rows := ds.Rows("companies")
	require.Len(t, rows, 1)
	assert.Equal(t, "Acme Corp", rows[0]["name"])
	assert.Equal(t, "tech", rows[0]["sector"])
}

func TestDatastore_SelectCopiesRows(t *testing.T) {
	ds := NewDatastore()
	ctx := context.Background()

	require.NoError(t, ds.Insert(ctx, "companies", []driven.Row{{"id": "c-1", "name": "Acme"}}))

	rows, err := ds.Select(ctx, "companies", driven.Filter{})
	require.NoError(t, err)
	rows[0]["name"] = "mutated"

	fresh := ds.Rows("companies")
	assert.Equal(t, "Acme", fresh[0]["name"])
}

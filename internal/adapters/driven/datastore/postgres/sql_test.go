package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/atlas-intel/atlas-cli/internal/core/ports/driven"
)

func TestBuildSelect(t *testing.T) {
	query, args := buildSelect("companies", driven.Filter{})
	assert.Equal(t, `SELECT * FROM "companies"`, query)
	assert.Empty(t, args)

	query, args = buildSelect("companies", driven.Filter{
		Eq: map[string]any{"name_lower": "acme corp"},
	})
	assert.Equal(t, `SELECT * FROM "companies" WHERE "name_lower" = $1`, query)
	assert.Equal(t, []any{"acme corp"}, args)
}

func TestBuildSelectColumnsSorted(t *testing.T) {
	query, args := buildSelect("investors", driven.Filter{
		Eq: map[string]any{"name": "Sequoia", "investor_type": "VENTURE_CAPITAL"},
	})
	assert.Equal(t, `SELECT * FROM "investors" WHERE "investor_type" = $1 AND "name" = $2`, query)
	assert.Equal(t, []any{"VENTURE_CAPITAL", "Sequoia"}, args)
}

func TestBuildSelectOrFilter(t *testing.T) {
	query, args := buildSelect("company_relationships", driven.Filter{
		Or: []map[string]any{
			{"parent_company_id": "co-1"},
			{"subsidiary_company_id": "co-1"},
		},
	})
	assert.Equal(t, `SELECT * FROM "company_relationships" WHERE `+
		`(("parent_company_id" = $1) OR ("subsidiary_company_id" = $2))`, query)
	assert.Equal(t, []any{"co-1", "co-1"}, args)
}

func TestBuildSelectEqAndOrCombineWithAnd(t *testing.T) {
	query, args := buildSelect("funding_investors", driven.Filter{
		Eq: map[string]any{"investor_id": "inv-1"},
		Or: []map[string]any{
			{"funding_round_id": "r-1"},
			{"funding_round_id": "r-2"},
		},
	})
	assert.Equal(t, `SELECT * FROM "funding_investors" WHERE "investor_id" = $1 AND `+
		`(("funding_round_id" = $2) OR ("funding_round_id" = $3))`, query)
	assert.Equal(t, []any{"inv-1", "r-1", "r-2"}, args)
}

func TestBuildInsert(t *testing.T) {
	query, args := buildInsert("company_addresses", driven.Row{
		"id":         "a-1",
		"company_id": "co-1",
		"city":       "Berlin",
	})
	assert.Equal(t, `INSERT INTO "company_addresses" ("city", "company_id", "id") VALUES ($1, $2, $3)`, query)
	assert.Equal(t, []any{"Berlin", "co-1", "a-1"}, args)
}

func TestBuildUpdate(t *testing.T) {
	query, args := buildUpdate("companies",
		driven.Row{"name": "Acme Corp", "name_lower": "acme corp"},
		driven.Filter{Eq: map[string]any{"id": "co-1"}})
	assert.Equal(t, `UPDATE "companies" SET "name" = $1, "name_lower" = $2 WHERE "id" = $3`, query)
	assert.Equal(t, []any{"Acme Corp", "acme corp", "co-1"}, args)
}

func TestBuildDelete(t *testing.T) {
	query, args := buildDelete("company_contacts", driven.Filter{
		Eq: map[string]any{"company_id": "co-1"},
	})
	assert.Equal(t, `DELETE FROM "company_contacts" WHERE "company_id" = $1`, query)
	assert.Equal(t, []any{"co-1"}, args)

	query, args = buildDelete("drafts", driven.Filter{})
	assert.Equal(t, `DELETE FROM "drafts"`, query)
	assert.Empty(t, args)
}

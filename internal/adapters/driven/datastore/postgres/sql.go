package postgres

import (
	"fmt"
	"sort"
	"strings"

	"github.com/atlas-intel/atlas-cli/internal/core/ports/driven"
)

// SQL statement builders. Table and column names come from the
// translator's own row maps, never from user input; they are quoted but
// not escaped. Columns are sorted so generated statements are
// deterministic.

func quoteIdent(name string) string {
	return `"` + name + `"`
}

func sortedColumns(row map[string]any) []string {
	cols := make([]string, 0, len(row))
	for col := range row {
		cols = append(cols, col)
	}
	sort.Strings(cols)
	return cols
}

// whereClause renders the filter as a WHERE clause with numbered
// placeholders starting at next. An empty filter yields no clause.
func whereClause(filter driven.Filter, next int) (string, []any) {
	var conds []string
	var args []any

	for _, col := range sortedColumns(filter.Eq) {
		conds = append(conds, fmt.Sprintf("%s = $%d", quoteIdent(col), next))
		args = append(args, filter.Eq[col])
		next++
	}

	if len(filter.Or) > 0 {
		var alts []string
		for _, alt := range filter.Or {
			var parts []string
			for _, col := range sortedColumns(alt) {
				parts = append(parts, fmt.Sprintf("%s = $%d", quoteIdent(col), next))
				args = append(args, alt[col])
				next++
			}
			alts = append(alts, "("+strings.Join(parts, " AND ")+")")
		}
		conds = append(conds, "("+strings.Join(alts, " OR ")+")")
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func buildSelect(table string, filter driven.Filter) (string, []any) {
	where, args := whereClause(filter, 1)
	return "SELECT * FROM " + quoteIdent(table) + where, args
}

func buildInsert(table string, row driven.Row) (string, []any) {
	cols := sortedColumns(row)
	quoted := make([]string, len(cols))
	placeholders := make([]string, len(cols))
	args := make([]any, len(cols))
	for i, col := range cols {
		quoted[i] = quoteIdent(col)
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = row[col]
	}
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		quoteIdent(table), strings.Join(quoted, ", "), strings.Join(placeholders, ", "))
	return query, args
}

func buildUpdate(table string, values driven.Row, filter driven.Filter) (string, []any) {
	cols := sortedColumns(values)
	sets := make([]string, len(cols))
	args := make([]any, 0, len(cols))
	for i, col := range cols {
		sets[i] = fmt.Sprintf("%s = $%d", quoteIdent(col), i+1)
		args = append(args, values[col])
	}
	where, whereArgs := whereClause(filter, len(cols)+1)
	query := "UPDATE " + quoteIdent(table) + " SET " + strings.Join(sets, ", ") + where
	return query, append(args, whereArgs...)
}

func buildDelete(table string, filter driven.Filter) (string, []any) {
	where, args := whereClause(filter, 1)
	return "DELETE FROM " + quoteIdent(table) + where, args
}

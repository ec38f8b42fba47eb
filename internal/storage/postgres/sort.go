package postgres

import "strings"

const defaultSortField = "posted_at"

// sortableFields is the allow-list shared by both stores. A table may only
// use the ones it has columns for.
var sortableFields = []string{"posted_at", "deadline", "view_count", "created_at", "event_date", "title"}

// CompileSort validates field and order against the table's allow-list and
// returns an ORDER BY clause. Unknown fields fall back to posted_at, unknown
// orders to DESC. id breaks ties so pages never overlap.
func CompileSort(field, order string, allowed map[string]bool) string {
	field = strings.ToLower(strings.TrimSpace(field))
	if !allowed[field] {
		field = defaultSortField
	}

	dir := "DESC"
	if strings.EqualFold(strings.TrimSpace(order), "asc") {
		dir = "ASC"
	}

	return " ORDER BY " + field + " " + dir + " NULLS LAST, id ASC"
}

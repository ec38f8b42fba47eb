package postgres

import (
	"strings"

	"campus_connect/internal/domain"
)

// Table describes one opportunity table. Both stores share every query
// shape; only this description differs between them.
type Table struct {
	Name       string
	TypeColumn string

	// Columns is the select and RETURNING list.
	Columns []string
	// Insert are the columns bound by name from the row on insert.
	Insert []string
	// Overwrite are refreshed from the incoming row on conflict.
	Overwrite []string
	// Coalesce are refreshed on conflict unless the incoming value is null.
	Coalesce []string
	// Arrays are refreshed on conflict unless the incoming array is empty.
	Arrays []string
	// Revivable statuses flip back to active when the row is re-ingested.
	Revivable []domain.Status

	Writable map[string]bool
	Sortable map[string]bool
	Filters  FilterCompiler

	// Archive makes Delete flip the status instead of removing the row.
	Archive bool
}

var workTable = Table{
	Name:       "work_opportunities",
	TypeColumn: "type",
	Columns: []string{
		"id", "type", "title", "apply_url", "city", "country", "work_style",
		"organization", "company", "image_url", "stipend", "duration", "salary",
		"experience", "skills", "tags", "eligibility", "deadline", "status",
		"is_verified", "is_featured", "view_count", "source", "external_id",
		"posted_at", "last_seen_at", "created_at", "updated_at",
	},
	Insert: []string{
		"type", "title", "apply_url", "city", "country", "work_style",
		"organization", "company", "image_url", "stipend", "duration", "salary",
		"experience", "skills", "tags", "eligibility", "deadline", "status",
		"is_verified", "is_featured", "source", "external_id", "posted_at",
	},
	Overwrite: []string{"title"},
	Coalesce: []string{
		"city", "country", "work_style", "organization", "company", "image_url",
		"stipend", "duration", "salary", "experience", "eligibility", "deadline", "source",
	},
	Arrays:    []string{"skills", "tags"},
	Revivable: []domain.Status{domain.StatusExpired},
	Writable: allow(
		"title", "city", "country", "work_style", "organization", "company",
		"image_url", "stipend", "duration", "salary", "experience", "skills",
		"tags", "eligibility", "deadline", "status", "is_verified", "is_featured",
	),
	Sortable: allow("posted_at", "deadline", "view_count", "created_at", "title"),
	Filters: FilterCompiler{
		TypeColumn: "type",
		Exact:      map[string]string{"work_style": "work_style"},
		Arrays:     map[string]string{"tags": "tags", "skills": "skills"},
	},
}

var eventTable = Table{
	Name:       "event_opportunities",
	TypeColumn: "type",
	Columns: []string{
		"id", "type", "title", "apply_url", "city", "country", "organization",
		"image_url", "team_size", "fees", "perks", "event_date", "learning_type",
		"tags", "domain", "deadline", "status", "is_verified", "is_featured",
		"view_count", "source", "external_id", "posted_at", "last_seen_at",
		"created_at", "updated_at",
	},
	Insert: []string{
		"type", "title", "apply_url", "city", "country", "organization",
		"image_url", "team_size", "fees", "perks", "event_date", "learning_type",
		"tags", "domain", "deadline", "status", "is_verified", "is_featured",
		"source", "external_id", "posted_at",
	},
	Overwrite: []string{"title"},
	Coalesce: []string{
		"city", "country", "organization", "image_url", "team_size", "fees",
		"perks", "event_date", "learning_type", "deadline", "source",
	},
	Arrays:    []string{"tags", "domain"},
	Revivable: []domain.Status{domain.StatusExpired, domain.StatusArchived},
	Writable: allow(
		"title", "city", "country", "organization", "image_url", "team_size",
		"fees", "perks", "event_date", "learning_type", "tags", "domain",
		"deadline", "status", "is_verified", "is_featured",
	),
	Sortable: allow(sortableFields...),
	Filters: FilterCompiler{
		TypeColumn: "type",
		Exact:      map[string]string{"fees": "fees"},
		Arrays:     map[string]string{"tags": "tags", "domain": "domain"},
	},
	Archive: true,
}

func allow(fields ...string) map[string]bool {
	m := make(map[string]bool, len(fields))
	for _, f := range fields {
		m[f] = true
	}
	return m
}

func (t Table) selectList() string {
	return strings.Join(t.Columns, ", ")
}

// upsertSQL builds the single-statement insert-or-refresh for the table.
// (xmax = 0) is true only for rows this statement inserted.
func (t Table) upsertSQL() string {
	var sb strings.Builder

	sb.WriteString("INSERT INTO ")
	sb.WriteString(t.Name)
	sb.WriteString(" AS t (")
	sb.WriteString(strings.Join(t.Insert, ", "))
	sb.WriteString(", last_seen_at) VALUES (")
	for i, c := range t.Insert {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(":")
		sb.WriteString(c)
	}
	sb.WriteString(", NOW())")

	sb.WriteString(" ON CONFLICT (")
	sb.WriteString(t.TypeColumn)
	sb.WriteString(", apply_url) DO UPDATE SET ")

	var sets []string
	for _, c := range t.Overwrite {
		sets = append(sets, c+" = EXCLUDED."+c)
	}
	for _, c := range t.Coalesce {
		sets = append(sets, c+" = COALESCE(EXCLUDED."+c+", t."+c+")")
	}
	for _, c := range t.Arrays {
		sets = append(sets, c+" = COALESCE(NULLIF(EXCLUDED."+c+", '{}'), t."+c+")")
	}
	sets = append(sets,
		"last_seen_at = NOW()",
		"updated_at = NOW()",
		"status = CASE WHEN t.status IN ("+quoteStatuses(t.Revivable)+") THEN '"+string(domain.StatusActive)+"' ELSE t.status END",
	)
	sb.WriteString(strings.Join(sets, ", "))

	sb.WriteString(" RETURNING ")
	sb.WriteString(t.selectList())
	sb.WriteString(", (xmax = 0) AS inserted")

	return sb.String()
}

func quoteStatuses(statuses []domain.Status) string {
	quoted := make([]string, len(statuses))
	for i, s := range statuses {
		quoted[i] = "'" + string(s) + "'"
	}
	return strings.Join(quoted, ", ")
}

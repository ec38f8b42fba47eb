package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompileSort(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		order   string
		allowed map[string]bool
		want    string
	}{
		{"default", "", "", workTable.Sortable, " ORDER BY posted_at DESC NULLS LAST, id ASC"},
		{"allowed ascending", "deadline", "asc", workTable.Sortable, " ORDER BY deadline ASC NULLS LAST, id ASC"},
		{"case insensitive", " Title ", "ASC", workTable.Sortable, " ORDER BY title ASC NULLS LAST, id ASC"},
		{"unknown order is descending", "view_count", "sideways", workTable.Sortable, " ORDER BY view_count DESC NULLS LAST, id ASC"},
		{"injection falls back", "title; DROP TABLE work_opportunities", "asc", workTable.Sortable, " ORDER BY posted_at ASC NULLS LAST, id ASC"},
		{"event_date on work table", "event_date", "asc", workTable.Sortable, " ORDER BY posted_at ASC NULLS LAST, id ASC"},
		{"event_date on event table", "event_date", "asc", eventTable.Sortable, " ORDER BY event_date ASC NULLS LAST, id ASC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CompileSort(tt.field, tt.order, tt.allowed))
		})
	}
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPageRequest(t *testing.T) {
	tests := []struct {
		name        string
		page, limit string
		want        PageRequest
	}{
		{"defaults", "", "", PageRequest{Page: 1, Limit: 10}},
		{"explicit", "3", "25", PageRequest{Page: 3, Limit: 25}},
		{"limit capped", "1", "500", PageRequest{Page: 1, Limit: MaxLimit}},
		{"zero limit", "1", "0", PageRequest{Page: 1, Limit: 1}},
		{"negative page", "-2", "5", PageRequest{Page: 1, Limit: 5}},
		{"garbage", "abc", "x", PageRequest{Page: 1, Limit: 10}},
		{"huge page", "4611686018427387904", "50", PageRequest{Page: MaxPage, Limit: 50}},
		{"page beyond int", "99999999999999999999999", "10", PageRequest{Page: MaxPage, Limit: 10}},
		{"limit beyond int", "1", "-99999999999999999999999", PageRequest{Page: 1, Limit: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewPageRequest(tt.page, tt.limit))
		})
	}
}

func TestPageRequest_Offset(t *testing.T) {
	assert.Equal(t, 0, PageRequest{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 40, PageRequest{Page: 5, Limit: 10}.Offset())
	assert.Positive(t, NewPageRequest("9223372036854775807", "50").Offset())
}

func TestNewPagination(t *testing.T) {
	for total := 0; total <= 30; total++ {
		for limit := 1; limit <= 7; limit++ {
			for page := 1; page <= 6; page++ {
				p := NewPagination(PageRequest{Page: page, Limit: limit}, total)
				assert.Equal(t, page*limit < total, p.HasMore)
				assert.GreaterOrEqual(t, p.TotalPages*limit, total)
			}
		}
	}

	p := NewPagination(PageRequest{Page: 2, Limit: 10}, 25)
	assert.Equal(t, Pagination{Total: 25, Page: 2, Limit: 10, TotalPages: 3, HasMore: true}, p)

	huge := NewPagination(NewPageRequest("4611686018427387904", "50"), 3)
	assert.Equal(t, Pagination{Total: 3, Page: MaxPage, Limit: 50, TotalPages: 1, HasMore: false}, huge)
}

func TestFilters(t *testing.T) {
	f := Filters{
		"city":     {"  ", "Pune"},
		"tags":     {"go, rust", "sql", ""},
		"featured": {"true"},
		"verified": {"nope"},
		"empty":    {""},
	}

	assert.Equal(t, "Pune", f.Get("city"))
	assert.Equal(t, "", f.Get("missing"))
	assert.Equal(t, []string{"go", "rust", "sql"}, f.List("tags"))
	assert.True(t, f.Bool("featured"))
	assert.False(t, f.Bool("verified"))

	f.Set("type", "job")
	assert.Equal(t, []string{"job"}, f["type"])

	assert.Equal(t, map[string]string{
		"city":     "Pune",
		"tags":     "go, rust",
		"featured": "true",
		"verified": "nope",
		"type":     "job",
	}, f.Applied())
}

func TestNewStats(t *testing.T) {
	s := NewStats(map[Kind][]StatRow{
		KindWork: {
			{Type: TypeJob, Status: StatusActive, Count: 4, Views: 10},
			{Type: TypeInternship, Status: StatusExpired, Count: 1, Views: 2},
		},
		KindEvent: {
			{Type: TypeHackathon, Status: StatusArchived, Count: 2, Views: 5},
		},
	})

	assert.Equal(t, 7, s.Total)
	assert.Equal(t, int64(17), s.Views)
	assert.Equal(t, 4, s.ByType[TypeJob])
	assert.Equal(t, 1, s.ByStatus[KindWork][StatusExpired])
	assert.Equal(t, 2, s.ByStatus[KindEvent][StatusArchived])
}

package domain

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 50
	// MaxPage keeps the offset within a 32-bit int and a Postgres OFFSET.
	MaxPage = math.MaxInt32 / MaxLimit
)

// Filters is the raw query-parameter bag of a list request. A key may carry
// several values; scalar filters read only the first one.
type Filters map[string][]string

// Get returns the first non-blank value for key.
func (f Filters) Get(key string) string {
	for _, v := range f[key] {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

// List returns every value for key, splitting comma-joined entries.
func (f Filters) List(key string) []string {
	var out []string
	for _, raw := range f[key] {
		for _, v := range strings.Split(raw, ",") {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}

// Bool reports whether key is set to a true value.
func (f Filters) Bool(key string) bool {
	b, err := strconv.ParseBool(f.Get(key))
	return err == nil && b
}

// Set replaces key with a single value.
func (f Filters) Set(key, value string) {
	f[key] = []string{value}
}

// Applied returns the scalar view of the filters that carry a value,
// echoed back to clients next to list results.
func (f Filters) Applied() map[string]string {
	out := make(map[string]string, len(f))
	for k := range f {
		if v := f.Get(k); v != "" {
			out[k] = v
		}
	}
	return out
}

// PageRequest is a clamped page/limit pair.
type PageRequest struct {
	Page  int
	Limit int
}

// NewPageRequest parses raw page and limit values. Missing or malformed
// values fall back to the defaults; out-of-range values are clamped.
func NewPageRequest(page, limit string) PageRequest {
	p := parseOr(page, DefaultPage)
	switch {
	case p < 1:
		p = 1
	case p > MaxPage:
		p = MaxPage
	}

	l := parseOr(limit, DefaultLimit)
	switch {
	case l < 1:
		l = 1
	case l > MaxLimit:
		l = MaxLimit
	}

	return PageRequest{Page: p, Limit: l}
}

func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

func parseOr(raw string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if errors.Is(err, strconv.ErrRange) {
		// n holds the saturated value
		return n
	}
	if err != nil {
		return def
	}
	return n
}

// Pagination is the page metadata returned with list results.
type Pagination struct {
	Total      int  `json:"total"`
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	TotalPages int  `json:"totalPages"`
	HasMore    bool `json:"hasMore"`
}

func NewPagination(req PageRequest, total int) Pagination {
	pages := 0
	if req.Limit > 0 {
		pages = (total + req.Limit - 1) / req.Limit
	}
	return Pagination{
		Total:      total,
		Page:       req.Page,
		Limit:      req.Limit,
		TotalPages: pages,
		HasMore:    req.Page < pages,
	}
}

// ListQuery is a filtered, sorted, paginated read against one store.
type ListQuery struct {
	Filters Filters
	Sort    string
	Order   string
	Page    PageRequest
}

// StatRow is one (type, status) bucket of a store.
type StatRow struct {
	Type   OpportunityType `db:"type" json:"type"`
	Status Status          `db:"status" json:"status"`
	Count  int             `db:"count" json:"count"`
	Views  int64           `db:"views" json:"views"`
}

// Stats summarises both stores.
type Stats struct {
	Total    int                     `json:"total"`
	Views    int64                   `json:"views"`
	ByType   map[OpportunityType]int `json:"byType"`
	ByStatus map[Kind]map[Status]int `json:"byStatus"`
	Rows     map[Kind][]StatRow      `json:"rows"`
}

// NewStats folds per-store stat rows into totals.
func NewStats(rows map[Kind][]StatRow) *Stats {
	s := &Stats{
		ByType:   make(map[OpportunityType]int),
		ByStatus: make(map[Kind]map[Status]int),
		Rows:     rows,
	}
	for kind, bucket := range rows {
		s.ByStatus[kind] = make(map[Status]int)
		for _, r := range bucket {
			s.Total += r.Count
			s.Views += r.Views
			s.ByType[r.Type] += r.Count
			s.ByStatus[kind][r.Status] += r.Count
		}
	}
	return s
}

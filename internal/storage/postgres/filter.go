package postgres

import (
	"sort"
	"strconv"
	"strings"

	"github.com/lib/pq"

	"campus_connect/internal/domain"
)

// deadlineWindows maps the deadline filter to a forward window in days.
var deadlineWindows = map[string]int{
	"upcoming":   30,
	"this_week":  7,
	"this_month": 30,
}

// FilterCompiler turns a filter bag into parameterized predicates for one
// table. Values are never interpolated into the SQL text.
type FilterCompiler struct {
	// TypeColumn is the discriminator column matched by the type filter.
	TypeColumn string
	// Exact maps filter keys to columns matched by equality (work_style, fees).
	Exact map[string]string
	// Arrays maps filter keys to text[] columns matched by overlap (tags, skills, domain).
	Arrays map[string]string
}

// Compile returns the predicates for the recognised filters in f, the bound
// values in the same order, and the next free parameter index. start is the
// index of the first placeholder to use.
func (c FilterCompiler) Compile(f domain.Filters, start int) ([]string, []any, int) {
	b := &predicateBuilder{next: start}

	typ := f.Get("type")
	if typ == "" {
		typ = f.Get("subtype")
	}
	if typ != "" {
		b.add(c.TypeColumn+" = "+b.param(typ))
	}

	if status := f.Get("status"); status != "" {
		b.add("status = " + b.param(status))
	} else if !f.Bool("include_inactive") {
		b.add("status = " + b.param(string(domain.StatusActive)))
	}

	for _, key := range []string{"city", "country"} {
		if v := f.Get(key); v != "" {
			b.add(key + " ILIKE " + b.param(likePattern(v)))
		}
	}

	for _, key := range sortedKeys(c.Exact) {
		if v := f.Get(key); v != "" {
			b.add(c.Exact[key] + " = " + b.param(v))
		}
	}

	if f.Bool("featured") {
		b.add("is_featured = " + b.param(true))
	}
	if f.Bool("verified") {
		b.add("is_verified = " + b.param(true))
	}

	if q := f.Get("search"); q != "" {
		b.add("search_vector @@ plainto_tsquery('english', " + b.param(q) + ")")
	}

	for _, key := range sortedKeys(c.Arrays) {
		if values := f.List(key); len(values) > 0 {
			b.add(c.Arrays[key] + " && " + b.param(pq.StringArray(values)))
		}
	}

	if days, ok := deadlineWindows[f.Get("deadline")]; ok {
		b.add("deadline >= NOW() AND deadline <= NOW() + make_interval(days => " + b.param(days) + ")")
	}

	return b.clauses, b.args, b.next
}

// Where joins predicates into a WHERE clause, or returns "" when there are none.
func Where(clauses []string) string {
	if len(clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(clauses, " AND ")
}

type predicateBuilder struct {
	clauses []string
	args    []any
	next    int
}

func (b *predicateBuilder) param(v any) string {
	b.args = append(b.args, v)
	p := "$" + strconv.Itoa(b.next)
	b.next++
	return p
}

func (b *predicateBuilder) add(clause string) {
	b.clauses = append(b.clauses, clause)
}

// likePattern wraps v for a substring ILIKE, escaping LIKE wildcards.
func likePattern(v string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(v) + "%"
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"campus_connect/internal/domain"
)

// WorkStore reads and writes work_opportunities (internships and jobs).
type WorkStore struct {
	*Store[domain.WorkOpportunity]
}

func NewWorkStore(db *sqlx.DB) *WorkStore {
	return &WorkStore{
		Store: newStore(db, workTable, func(w *domain.WorkOpportunity) bool { return w.Inserted }),
	}
}

// ByOrganization lists active rows whose organization or company contains name.
func (s *WorkStore) ByOrganization(ctx context.Context, name string, page domain.PageRequest) ([]domain.WorkOpportunity, domain.Pagination, error) {
	b := &predicateBuilder{next: 1}
	pattern := b.param(likePattern(name))
	b.add("(organization ILIKE " + pattern + " OR company ILIKE " + pattern + ")")
	b.add("status = " + b.param(string(domain.StatusActive)))

	return s.page(ctx, b.clauses, b.args, b.next, " ORDER BY posted_at DESC, id ASC", page)
}

// Expiring lists active rows whose deadline falls within the next days.
func (s *WorkStore) Expiring(ctx context.Context, days int, page domain.PageRequest) ([]domain.WorkOpportunity, domain.Pagination, error) {
	b := &predicateBuilder{next: 1}
	b.add("status = " + b.param(string(domain.StatusActive)))
	b.add("deadline >= NOW() AND deadline <= NOW() + make_interval(days => " + b.param(days) + ")")

	return s.page(ctx, b.clauses, b.args, b.next, " ORDER BY deadline ASC, id ASC", page)
}

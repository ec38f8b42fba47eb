package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"campus_connect/internal/domain"
)

// EventStore reads and writes event_opportunities (hackathons, learning
// programs and scholarships). Deleting an event archives it.
type EventStore struct {
	*Store[domain.EventOpportunity]
}

func NewEventStore(db *sqlx.DB) *EventStore {
	return &EventStore{
		Store: newStore(db, eventTable, func(e *domain.EventOpportunity) bool { return e.Inserted }),
	}
}

// Upcoming lists active events taking place within the next days.
func (s *EventStore) Upcoming(ctx context.Context, days int, page domain.PageRequest) ([]domain.EventOpportunity, domain.Pagination, error) {
	b := &predicateBuilder{next: 1}
	b.add("status = " + b.param(string(domain.StatusActive)))
	b.add("event_date >= NOW() AND event_date <= NOW() + make_interval(days => " + b.param(days) + ")")

	return s.page(ctx, b.clauses, b.args, b.next, " ORDER BY event_date ASC, id ASC", page)
}

// Free lists active unpaid events, optionally restricted to one type.
func (s *EventStore) Free(ctx context.Context, typ domain.OpportunityType, page domain.PageRequest) ([]domain.EventOpportunity, domain.Pagination, error) {
	b := &predicateBuilder{next: 1}
	if typ != "" {
		b.add(s.table.TypeColumn + " = " + b.param(string(typ)))
	}
	b.add("status = " + b.param(string(domain.StatusActive)))
	b.add("fees = " + b.param("unpaid"))

	return s.page(ctx, b.clauses, b.args, b.next, " ORDER BY posted_at DESC, id ASC", page)
}

package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"campus_connect/internal/domain"
	"campus_connect/internal/validation"
)

const (
	DefaultFeaturedLimit = 6
	MaxFeaturedLimit     = 50

	DefaultExpiringDays = 7
	DefaultUpcomingDays = 30
	MaxWindowDays       = 365
)

// OpportunityService serves the per-type endpoints: creation, listings and
// the read conveniences over each store.
type OpportunityService struct {
	work      WorkStore
	events    EventStore
	txManager TransactionManager
	announcer announcer
	logger    *slog.Logger
	now       func() time.Time
}

func NewOpportunityService(
	work WorkStore,
	events EventStore,
	txManager TransactionManager,
	publisher Publisher,
	logger *slog.Logger,
) *OpportunityService {
	logger = logger.With("component", "opportunities")
	return &OpportunityService{
		work:      work,
		events:    events,
		txManager: txManager,
		announcer: announcer{publisher: publisher, logger: logger},
		logger:    logger,
		now:       time.Now,
	}
}

// CreateWork validates and upserts one internship or job.
func (s *OpportunityService) CreateWork(ctx context.Context, in *domain.WorkOpportunity) (*domain.WorkOpportunity, domain.Action, error) {
	in.Normalize(s.now())
	if err := validation.Struct(in); err != nil {
		return nil, "", err
	}

	row, action, err := s.work.Upsert(ctx, in)
	if err != nil {
		return nil, "", fmt.Errorf("upsert work opportunity: %w", err)
	}

	s.logger.Debug("work opportunity stored", "id", row.ID, "type", row.Type, "action", action)
	s.announcer.upserted(ctx, domain.KindWork, row.Type, row.ID, action, row)
	return row, action, nil
}

// CreateEvent validates and upserts one hackathon, learning program or scholarship.
func (s *OpportunityService) CreateEvent(ctx context.Context, in *domain.EventOpportunity) (*domain.EventOpportunity, domain.Action, error) {
	in.Normalize(s.now())
	if err := validation.Struct(in); err != nil {
		return nil, "", err
	}

	row, action, err := s.events.Upsert(ctx, in)
	if err != nil {
		return nil, "", fmt.Errorf("upsert event opportunity: %w", err)
	}

	s.logger.Debug("event opportunity stored", "id", row.ID, "type", row.Type, "action", action)
	s.announcer.upserted(ctx, domain.KindEvent, row.Type, row.ID, action, row)
	return row, action, nil
}

// ListWork lists one work type. The type is pinned by the route and
// overrides any type filter in q.
func (s *OpportunityService) ListWork(ctx context.Context, typ domain.OpportunityType, q domain.ListQuery) ([]domain.WorkOpportunity, domain.Pagination, error) {
	pinType(&q, typ)
	items, page, err := s.work.List(ctx, q)
	if err != nil {
		return nil, domain.Pagination{}, fmt.Errorf("list %s: %w", typ, err)
	}
	return items, page, nil
}

func (s *OpportunityService) ListEvents(ctx context.Context, typ domain.OpportunityType, q domain.ListQuery) ([]domain.EventOpportunity, domain.Pagination, error) {
	pinType(&q, typ)
	items, page, err := s.events.List(ctx, q)
	if err != nil {
		return nil, domain.Pagination{}, fmt.Errorf("list %s: %w", typ, err)
	}
	return items, page, nil
}

func pinType(q *domain.ListQuery, typ domain.OpportunityType) {
	if q.Filters == nil {
		q.Filters = domain.Filters{}
	}
	delete(q.Filters, "subtype")
	q.Filters.Set("type", string(typ))
}

// Featured returns the newest featured active items of typ. The result is a
// slice of the row type of the store typ belongs to.
func (s *OpportunityService) Featured(ctx context.Context, typ domain.OpportunityType, limit int) (any, error) {
	limit = clamp(limit, DefaultFeaturedLimit, MaxFeaturedLimit)

	kind, ok := domain.KindOf(typ)
	if !ok {
		return nil, domain.NewValidationError("type", "unknown opportunity type")
	}

	var (
		items any
		err   error
	)
	switch kind {
	case domain.KindWork:
		items, err = s.work.Featured(ctx, typ, limit)
	default:
		items, err = s.events.Featured(ctx, typ, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("featured %s: %w", typ, err)
	}
	return items, nil
}

func (s *OpportunityService) ByOrganization(ctx context.Context, name string, page domain.PageRequest) ([]domain.WorkOpportunity, domain.Pagination, error) {
	if name == "" {
		return nil, domain.Pagination{}, domain.NewValidationError("name", "is required")
	}
	items, p, err := s.work.ByOrganization(ctx, name, page)
	if err != nil {
		return nil, domain.Pagination{}, fmt.Errorf("list by organization: %w", err)
	}
	return items, p, nil
}

func (s *OpportunityService) Expiring(ctx context.Context, days int, page domain.PageRequest) ([]domain.WorkOpportunity, domain.Pagination, error) {
	days = clamp(days, DefaultExpiringDays, MaxWindowDays)
	items, p, err := s.work.Expiring(ctx, days, page)
	if err != nil {
		return nil, domain.Pagination{}, fmt.Errorf("list expiring: %w", err)
	}
	return items, p, nil
}

func (s *OpportunityService) Upcoming(ctx context.Context, days int, page domain.PageRequest) ([]domain.EventOpportunity, domain.Pagination, error) {
	days = clamp(days, DefaultUpcomingDays, MaxWindowDays)
	items, p, err := s.events.Upcoming(ctx, days, page)
	if err != nil {
		return nil, domain.Pagination{}, fmt.Errorf("list upcoming: %w", err)
	}
	return items, p, nil
}

// Free lists unpaid events. typ is optional but must be an event type when set.
func (s *OpportunityService) Free(ctx context.Context, typ domain.OpportunityType, page domain.PageRequest) ([]domain.EventOpportunity, domain.Pagination, error) {
	if typ != "" {
		if kind, ok := domain.KindOf(typ); !ok || kind != domain.KindEvent {
			return nil, domain.Pagination{}, domain.NewValidationError("type", "must be hackathon, learning or scholarship")
		}
	}
	items, p, err := s.events.Free(ctx, typ, page)
	if err != nil {
		return nil, domain.Pagination{}, fmt.Errorf("list free: %w", err)
	}
	return items, p, nil
}

// Stats reads both stores from one snapshot.
func (s *OpportunityService) Stats(ctx context.Context) (*domain.Stats, error) {
	rows := make(map[domain.Kind][]domain.StatRow, 2)

	err := s.txManager.Snapshot(ctx, func(ctx context.Context) error {
		work, err := s.work.Stats(ctx)
		if err != nil {
			return err
		}
		events, err := s.events.Stats(ctx)
		if err != nil {
			return err
		}
		rows[domain.KindWork] = work
		rows[domain.KindEvent] = events
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read stats: %w", err)
	}

	return domain.NewStats(rows), nil
}

// clamp returns def for a non-positive n and caps n at max.
func clamp(n, def, max int) int {
	switch {
	case n <= 0:
		return def
	case n > max:
		return max
	}
	return n
}

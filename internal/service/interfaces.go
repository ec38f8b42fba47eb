package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"campus_connect/internal/domain"
)

type WorkStore interface {
	Upsert(ctx context.Context, row *domain.WorkOpportunity) (*domain.WorkOpportunity, domain.Action, error)
	List(ctx context.Context, q domain.ListQuery) ([]domain.WorkOpportunity, domain.Pagination, error)
	Get(ctx context.Context, id string) (*domain.WorkOpportunity, error)
	Patch(ctx context.Context, id string, fields map[string]any) (*domain.WorkOpportunity, error)
	Delete(ctx context.Context, id string) error
	IncrementViews(ctx context.Context, id string) (*domain.WorkOpportunity, error)
	Featured(ctx context.Context, typ domain.OpportunityType, limit int) ([]domain.WorkOpportunity, error)
	Stats(ctx context.Context) ([]domain.StatRow, error)
	ByOrganization(ctx context.Context, name string, page domain.PageRequest) ([]domain.WorkOpportunity, domain.Pagination, error)
	Expiring(ctx context.Context, days int, page domain.PageRequest) ([]domain.WorkOpportunity, domain.Pagination, error)
}

type EventStore interface {
	Upsert(ctx context.Context, row *domain.EventOpportunity) (*domain.EventOpportunity, domain.Action, error)
	List(ctx context.Context, q domain.ListQuery) ([]domain.EventOpportunity, domain.Pagination, error)
	Get(ctx context.Context, id string) (*domain.EventOpportunity, error)
	Patch(ctx context.Context, id string, fields map[string]any) (*domain.EventOpportunity, error)
	Delete(ctx context.Context, id string) error
	IncrementViews(ctx context.Context, id string) (*domain.EventOpportunity, error)
	Featured(ctx context.Context, typ domain.OpportunityType, limit int) ([]domain.EventOpportunity, error)
	Stats(ctx context.Context) ([]domain.StatRow, error)
	Upcoming(ctx context.Context, days int, page domain.PageRequest) ([]domain.EventOpportunity, domain.Pagination, error)
	Free(ctx context.Context, typ domain.OpportunityType, page domain.PageRequest) ([]domain.EventOpportunity, domain.Pagination, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
	Snapshot(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	Publish(ctx context.Context, event domain.OpportunityEvent) error
	Close() error
}

package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"campus_connect/internal/domain"
	"campus_connect/internal/validation"
)

// Backend is one store as seen by the Resolver.
type Backend interface {
	Kind() domain.Kind
	Get(ctx context.Context, id string) (any, error)
	Patch(ctx context.Context, id string, fields map[string]any) (any, error)
	Delete(ctx context.Context, id string) error
	IncrementViews(ctx context.Context, id string) (any, error)
}

type workBackend struct{ store WorkStore }

func (b workBackend) Kind() domain.Kind { return domain.KindWork }

func (b workBackend) Get(ctx context.Context, id string) (any, error) {
	return b.store.Get(ctx, id)
}

func (b workBackend) Patch(ctx context.Context, id string, fields map[string]any) (any, error) {
	return b.store.Patch(ctx, id, fields)
}

func (b workBackend) Delete(ctx context.Context, id string) error {
	return b.store.Delete(ctx, id)
}

func (b workBackend) IncrementViews(ctx context.Context, id string) (any, error) {
	return b.store.IncrementViews(ctx, id)
}

type eventBackend struct{ store EventStore }

func (b eventBackend) Kind() domain.Kind { return domain.KindEvent }

func (b eventBackend) Get(ctx context.Context, id string) (any, error) {
	return b.store.Get(ctx, id)
}

func (b eventBackend) Patch(ctx context.Context, id string, fields map[string]any) (any, error) {
	return b.store.Patch(ctx, id, fields)
}

func (b eventBackend) Delete(ctx context.Context, id string) error {
	return b.store.Delete(ctx, id)
}

func (b eventBackend) IncrementViews(ctx context.Context, id string) (any, error) {
	return b.store.IncrementViews(ctx, id)
}

// Resolver treats both stores as one namespace of identifiers. Every
// operation probes the backends in order and stops at the first that
// holds the id.
type Resolver struct {
	backends  []Backend
	txManager TransactionManager
	announcer announcer
	logger    *slog.Logger
}

func NewResolver(
	work WorkStore,
	events EventStore,
	txManager TransactionManager,
	publisher Publisher,
	logger *slog.Logger,
) *Resolver {
	logger = logger.With("component", "resolver")
	return &Resolver{
		backends:  []Backend{workBackend{work}, eventBackend{events}},
		txManager: txManager,
		announcer: announcer{publisher: publisher, logger: logger},
		logger:    logger,
	}
}

// Get returns the opportunity with id without side effects.
func (r *Resolver) Get(ctx context.Context, id string) (*domain.Resolved, error) {
	return r.probe(id, func(b Backend) (any, error) { return b.Get(ctx, id) })
}

// View returns the opportunity with id and counts the view.
func (r *Resolver) View(ctx context.Context, id string) (*domain.Resolved, error) {
	return r.probe(id, func(b Backend) (any, error) { return b.IncrementViews(ctx, id) })
}

func (r *Resolver) probe(id string, fn func(Backend) (any, error)) (*domain.Resolved, error) {
	for _, b := range r.backends {
		v, err := fn(b)
		if errors.Is(err, domain.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("resolve %s in %s: %w", id, b.Kind(), err)
		}
		return &domain.Resolved{Kind: b.Kind(), Opportunity: v}, nil
	}
	return nil, domain.ErrNotFound
}

// Patch applies a partial update. The body is validated against the fields
// writable on the store that holds id; a type key is always rejected.
func (r *Resolver) Patch(ctx context.Context, id string, body map[string]any) (*domain.Resolved, error) {
	if err := validation.RejectTypeChange(body); err != nil {
		return nil, err
	}

	var out *domain.Resolved
	err := r.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		for _, b := range r.backends {
			if _, err := b.Get(ctx, id); err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					continue
				}
				return fmt.Errorf("locate %s in %s: %w", id, b.Kind(), err)
			}

			fields, err := validation.Patch(b.Kind(), body)
			if err != nil {
				return err
			}
			v, err := b.Patch(ctx, id, fields)
			if err != nil {
				return fmt.Errorf("patch %s in %s: %w", id, b.Kind(), err)
			}
			out = &domain.Resolved{Kind: b.Kind(), Opportunity: v}
			return nil
		}
		return domain.ErrNotFound
	})
	if err != nil {
		return nil, err
	}

	r.announcer.publish(ctx, domain.OpportunityEvent{
		Action:      domain.EventUpdate,
		Kind:        out.Kind,
		Type:        typeOf(out.Opportunity),
		ID:          id,
		Opportunity: out.Opportunity,
	})
	return out, nil
}

// Delete removes a work opportunity or archives an event opportunity.
func (r *Resolver) Delete(ctx context.Context, id string) (domain.Kind, error) {
	for _, b := range r.backends {
		err := b.Delete(ctx, id)
		if errors.Is(err, domain.ErrNotFound) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("delete %s in %s: %w", id, b.Kind(), err)
		}

		r.logger.Info("opportunity deleted", "id", id, "kind", b.Kind())
		r.announcer.publish(ctx, domain.OpportunityEvent{
			Action: domain.EventDelete,
			Kind:   b.Kind(),
			ID:     id,
		})
		return b.Kind(), nil
	}
	return "", domain.ErrNotFound
}

func typeOf(v any) domain.OpportunityType {
	switch o := v.(type) {
	case *domain.WorkOpportunity:
		return o.Type
	case *domain.EventOpportunity:
		return o.Type
	}
	return ""
}

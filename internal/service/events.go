package service

import (
	"context"
	"log/slog"
	"time"

	"campus_connect/internal/domain"
	"campus_connect/internal/metrics"
)

// announcer publishes opportunity events. Publishing is best effort: a
// failure is logged and counted but never fails the write it follows.
type announcer struct {
	publisher Publisher
	logger    *slog.Logger
}

func (a announcer) publish(ctx context.Context, event domain.OpportunityEvent) {
	if a.publisher == nil {
		return
	}
	event.Timestamp = time.Now().UTC()
	if err := a.publisher.Publish(ctx, event); err != nil {
		metrics.PublishFailures.Inc()
		a.logger.Warn("failed to publish opportunity event",
			"id", event.ID,
			"action", event.Action,
			"error", err,
		)
	}
}

func (a announcer) upserted(ctx context.Context, kind domain.Kind, typ domain.OpportunityType, id string, action domain.Action, row any) {
	metrics.Upserts.WithLabelValues(string(typ), string(action)).Inc()
	a.publish(ctx, domain.OpportunityEvent{
		Action:      action.EventName(),
		Kind:        kind,
		Type:        typ,
		ID:          id,
		Opportunity: row,
	})
}

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"campus_connect/internal/domain"
	"campus_connect/internal/metrics"
	"campus_connect/internal/validation"
)

// BatchService ingests mixed submissions from scrapers and imports.
type BatchService struct {
	work      WorkStore
	events    EventStore
	announcer announcer
	logger    *slog.Logger
	now       func() time.Time
}

func NewBatchService(work WorkStore, events EventStore, publisher Publisher, logger *slog.Logger) *BatchService {
	logger = logger.With("component", "batch")
	return &BatchService{
		work:      work,
		events:    events,
		announcer: announcer{publisher: publisher, logger: logger},
		logger:    logger,
		now:       time.Now,
	}
}

// Ingest upserts every item of req into the store its type belongs to.
// Items are processed one at a time; an item that fails is counted and
// reported without affecting the others. Items with an unknown type are
// skipped. The request as a whole is rejected before any write when the
// list is missing, empty or larger than domain.MaxBatchSize.
func (s *BatchService) Ingest(ctx context.Context, req domain.BatchRequest) (*domain.BatchResult, error) {
	startTime := time.Now()

	if req.Opportunities == nil || len(*req.Opportunities) == 0 {
		return nil, domain.ErrBatchEmpty
	}
	items := *req.Opportunities
	if len(items) > domain.MaxBatchSize {
		return nil, fmt.Errorf("%w: got %d, max %d", domain.ErrBatchTooLarge, len(items), domain.MaxBatchSize)
	}

	s.logger.Info("starting batch", "source", req.Source, "items", len(items))

	var workIdx, eventIdx []int
	result := &domain.BatchResult{
		Source: req.Source,
		ByType: make(map[domain.OpportunityType]domain.Tally),
	}
	result.Summary.Total = len(items)

	for i, item := range items {
		switch kind, ok := domain.KindOf(item.Type); {
		case !ok:
			result.Summary.Skipped++
		case kind == domain.KindWork:
			workIdx = append(workIdx, i)
		default:
			eventIdx = append(eventIdx, i)
		}
	}
	metrics.BatchItems.WithLabelValues("skipped").Add(float64(result.Summary.Skipped))

	for _, i := range workIdx {
		action, err := s.upsertWork(ctx, items[i], req.Source)
		s.record(result, i, items[i].Type, action, err)
	}
	for _, i := range eventIdx {
		action, err := s.upsertEvent(ctx, items[i], req.Source)
		s.record(result, i, items[i].Type, action, err)
	}

	result.Duration = time.Since(startTime)

	s.logger.Info("batch completed",
		"source", req.Source,
		"created", result.Summary.Created,
		"updated", result.Summary.Updated,
		"failed", result.Summary.Failed,
		"skipped", result.Summary.Skipped,
		"duration", result.Duration,
	)

	return result, nil
}

func (s *BatchService) record(result *domain.BatchResult, index int, typ domain.OpportunityType, action domain.Action, err error) {
	tally := result.ByType[typ]
	tally.Record(action, err)
	result.ByType[typ] = tally

	switch {
	case err != nil:
		result.Summary.Failed++
		result.Errors = append(result.Errors, domain.BatchItemError{Index: index, Type: typ, Error: err.Error()})
		metrics.BatchItems.WithLabelValues("failed").Inc()
		s.logger.Debug("batch item failed", "index", index, "type", typ, "error", err)
	case action == domain.ActionCreated:
		result.Summary.Created++
		metrics.BatchItems.WithLabelValues(string(domain.ActionCreated)).Inc()
	default:
		result.Summary.Updated++
		metrics.BatchItems.WithLabelValues(string(domain.ActionUpdated)).Inc()
	}
}

func (s *BatchService) upsertWork(ctx context.Context, item domain.BatchItem, source string) (domain.Action, error) {
	var in domain.WorkOpportunity
	if err := json.Unmarshal(item.Raw, &in); err != nil {
		return "", fmt.Errorf("decode item: %w", err)
	}
	if in.Source == nil && source != "" {
		in.Source = &source
	}

	in.Normalize(s.now())
	if err := validation.Struct(&in); err != nil {
		return "", err
	}

	row, action, err := s.work.Upsert(ctx, &in)
	if err != nil {
		return "", fmt.Errorf("upsert work opportunity: %w", err)
	}
	s.announcer.upserted(ctx, domain.KindWork, row.Type, row.ID, action, row)
	return action, nil
}

func (s *BatchService) upsertEvent(ctx context.Context, item domain.BatchItem, source string) (domain.Action, error) {
	var in domain.EventOpportunity
	if err := json.Unmarshal(item.Raw, &in); err != nil {
		return "", fmt.Errorf("decode item: %w", err)
	}
	if in.Source == nil && source != "" {
		in.Source = &source
	}

	in.Normalize(s.now())
	if err := validation.Struct(&in); err != nil {
		return "", err
	}

	row, action, err := s.events.Upsert(ctx, &in)
	if err != nil {
		return "", fmt.Errorf("upsert event opportunity: %w", err)
	}
	s.announcer.upserted(ctx, domain.KindEvent, row.Type, row.ID, action, row)
	return action, nil
}

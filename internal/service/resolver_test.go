package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"campus_connect/internal/domain"
	"campus_connect/internal/service/mocks"
)

const testID = "5f0c3a4e-1d2b-4c6f-8e9a-0b1c2d3e4f50"

type ResolverTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	work      *mocks.MockWorkStore
	events    *mocks.MockEventStore
	txManager *mocks.MockTransactionManager
	publisher *mocks.MockPublisher

	resolver *Resolver
}

func (s *ResolverTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.work = mocks.NewMockWorkStore(s.ctrl)
	s.events = mocks.NewMockEventStore(s.ctrl)
	s.txManager = mocks.NewMockTransactionManager(s.ctrl)
	s.publisher = mocks.NewMockPublisher(s.ctrl)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s.resolver = NewResolver(s.work, s.events, s.txManager, s.publisher, logger)
}

func (s *ResolverTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestResolverTestSuite(t *testing.T) {
	suite.Run(t, new(ResolverTestSuite))
}

func (s *ResolverTestSuite) passThroughTx(ctx context.Context) {
	s.txManager.EXPECT().WithTransaction(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
}

func (s *ResolverTestSuite) TestView_FallsBackToEventStore() {
	ctx := context.Background()
	event := &domain.EventOpportunity{ID: testID, Type: domain.TypeHackathon, ViewCount: 4}

	gomock.InOrder(
		s.work.EXPECT().IncrementViews(ctx, testID).Return(nil, domain.ErrNotFound),
		s.events.EXPECT().IncrementViews(ctx, testID).Return(event, nil),
	)

	got, err := s.resolver.View(ctx, testID)

	s.NoError(err)
	s.Equal(domain.KindEvent, got.Kind)
	s.Equal(event, got.Opportunity)
}

func (s *ResolverTestSuite) TestView_WorkStoreWins() {
	ctx := context.Background()
	work := &domain.WorkOpportunity{ID: testID, Type: domain.TypeJob}

	s.work.EXPECT().IncrementViews(ctx, testID).Return(work, nil)

	got, err := s.resolver.View(ctx, testID)

	s.NoError(err)
	s.Equal(domain.KindWork, got.Kind)
	s.Equal(work, got.Opportunity)
}

func (s *ResolverTestSuite) TestGet_NotFoundInEither() {
	ctx := context.Background()

	s.work.EXPECT().Get(ctx, testID).Return(nil, domain.ErrNotFound)
	s.events.EXPECT().Get(ctx, testID).Return(nil, domain.ErrNotFound)

	got, err := s.resolver.Get(ctx, testID)

	s.Nil(got)
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *ResolverTestSuite) TestGet_StoreErrorStopsProbe() {
	ctx := context.Background()

	s.work.EXPECT().Get(ctx, testID).Return(nil, errors.New("connection reset"))

	_, err := s.resolver.Get(ctx, testID)

	s.Error(err)
	s.NotErrorIs(err, domain.ErrNotFound)
}

func (s *ResolverTestSuite) TestPatch_RejectsTypeChange() {
	_, err := s.resolver.Patch(context.Background(), testID, map[string]any{"type": "job", "title": "x"})

	var verr *domain.ValidationError
	s.Require().ErrorAs(err, &verr)
	s.Equal("type", verr.Fields[0].Field)
}

func (s *ResolverTestSuite) TestPatch_EventFieldsOnEventStore() {
	ctx := context.Background()
	s.passThroughTx(ctx)

	patched := &domain.EventOpportunity{ID: testID, Type: domain.TypeScholarship, Fees: ptr("unpaid")}

	s.work.EXPECT().Get(ctx, testID).Return(nil, domain.ErrNotFound)
	s.events.EXPECT().Get(ctx, testID).Return(&domain.EventOpportunity{ID: testID}, nil)
	s.events.EXPECT().Patch(ctx, testID, map[string]any{
		"fees":   "unpaid",
		"domain": pq.StringArray{"finance", "stem"},
	}).Return(patched, nil)

	var published domain.OpportunityEvent
	s.publisher.EXPECT().Publish(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, e domain.OpportunityEvent) error {
			published = e
			return nil
		},
	)

	got, err := s.resolver.Patch(ctx, testID, map[string]any{
		"fees":       "unpaid",
		"domain":     "finance, stem",
		"salary":     "ignored on events",
		"view_count": 1000,
	})

	s.NoError(err)
	s.Equal(domain.KindEvent, got.Kind)
	s.Equal(patched, got.Opportunity)
	s.Equal(domain.EventUpdate, published.Action)
	s.Equal(domain.TypeScholarship, published.Type)
}

func (s *ResolverTestSuite) TestPatch_FieldsNotWritableOnResolvedStore() {
	ctx := context.Background()
	s.passThroughTx(ctx)

	s.work.EXPECT().Get(ctx, testID).Return(&domain.WorkOpportunity{ID: testID}, nil)

	_, err := s.resolver.Patch(ctx, testID, map[string]any{"fees": "paid"})

	var verr *domain.ValidationError
	s.Require().ErrorAs(err, &verr)
	s.Equal("body", verr.Fields[0].Field)
}

func (s *ResolverTestSuite) TestPatch_NotFound() {
	ctx := context.Background()
	s.passThroughTx(ctx)

	s.work.EXPECT().Get(ctx, testID).Return(nil, domain.ErrNotFound)
	s.events.EXPECT().Get(ctx, testID).Return(nil, domain.ErrNotFound)

	_, err := s.resolver.Patch(ctx, testID, map[string]any{"title": "New"})

	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *ResolverTestSuite) TestDelete_WorkIsRemoved() {
	ctx := context.Background()

	s.work.EXPECT().Delete(ctx, testID).Return(nil)
	s.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	kind, err := s.resolver.Delete(ctx, testID)

	s.NoError(err)
	s.Equal(domain.KindWork, kind)
}

func (s *ResolverTestSuite) TestDelete_EventIsArchived() {
	ctx := context.Background()

	gomock.InOrder(
		s.work.EXPECT().Delete(ctx, testID).Return(domain.ErrNotFound),
		s.events.EXPECT().Delete(ctx, testID).Return(nil),
	)
	s.publisher.EXPECT().Publish(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, e domain.OpportunityEvent) error {
			s.Equal(domain.EventDelete, e.Action)
			s.Equal(domain.KindEvent, e.Kind)
			return nil
		},
	)

	kind, err := s.resolver.Delete(ctx, testID)

	s.NoError(err)
	s.Equal(domain.KindEvent, kind)
}

func (s *ResolverTestSuite) TestDelete_NotFound() {
	ctx := context.Background()

	s.work.EXPECT().Delete(ctx, testID).Return(domain.ErrNotFound)
	s.events.EXPECT().Delete(ctx, testID).Return(domain.ErrNotFound)

	_, err := s.resolver.Delete(ctx, testID)

	s.ErrorIs(err, domain.ErrNotFound)
}

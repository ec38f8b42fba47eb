//go:build integration

package ratelimit

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

type RedisIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *tcredis.RedisContainer
	client    *redis.Client
	logger    *slog.Logger
}

func (s *RedisIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	container, err := tcredis.Run(s.ctx, "redis:7-alpine")
	s.Require().NoError(err)
	s.container = container

	uri, err := container.ConnectionString(s.ctx)
	s.Require().NoError(err)

	opts, err := redis.ParseURL(uri)
	s.Require().NoError(err)

	client, err := Connect(s.ctx, opts.Addr, opts.Password, opts.DB)
	s.Require().NoError(err)
	s.client = client
}

func (s *RedisIntegrationSuite) TearDownSuite() {
	if s.client != nil {
		s.client.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *RedisIntegrationSuite) SetupTest() {
	s.Require().NoError(s.client.FlushDB(s.ctx).Err())
}

func TestRedisIntegrationSuite(t *testing.T) {
	suite.Run(t, new(RedisIntegrationSuite))
}

func (s *RedisIntegrationSuite) TestAllow_BlocksAfterLimit() {
	limiter := New(s.client, map[Tier]Rule{TierWrite: {Limit: 3, Window: time.Minute}}, s.logger)

	for i := 1; i <= 3; i++ {
		d, err := limiter.Allow(s.ctx, TierWrite, "10.0.0.1")
		s.Require().NoError(err)
		s.True(d.Allowed, "request %d", i)
		s.Equal(int64(3-i), d.Remaining())
	}

	d, err := limiter.Allow(s.ctx, TierWrite, "10.0.0.1")
	s.NoError(err)
	s.False(d.Allowed)
	s.Equal(int64(4), d.Count)
	s.Greater(d.RetryAfter, time.Duration(0))
	s.LessOrEqual(d.RetryAfter, time.Minute)
}

func (s *RedisIntegrationSuite) TestAllow_CountsPerClientAndTier() {
	limiter := New(s.client, map[Tier]Rule{
		TierRead:  {Limit: 1, Window: time.Minute},
		TierWrite: {Limit: 1, Window: time.Minute},
	}, s.logger)

	d, _ := limiter.Allow(s.ctx, TierRead, "a")
	s.True(d.Allowed)
	d, _ = limiter.Allow(s.ctx, TierRead, "b")
	s.True(d.Allowed)
	d, _ = limiter.Allow(s.ctx, TierWrite, "a")
	s.True(d.Allowed)
	d, _ = limiter.Allow(s.ctx, TierRead, "a")
	s.False(d.Allowed)
}

func (s *RedisIntegrationSuite) TestAllow_WindowNotExtended() {
	limiter := New(s.client, map[Tier]Rule{TierBatch: {Limit: 10, Window: time.Hour}}, s.logger)

	_, err := limiter.Allow(s.ctx, TierBatch, "c")
	s.Require().NoError(err)
	first, err := s.client.TTL(s.ctx, Key(TierBatch, "c")).Result()
	s.Require().NoError(err)

	time.Sleep(1100 * time.Millisecond)

	_, err = limiter.Allow(s.ctx, TierBatch, "c")
	s.Require().NoError(err)
	second, err := s.client.TTL(s.ctx, Key(TierBatch, "c")).Result()
	s.Require().NoError(err)

	s.Less(second, first)
}

func (s *RedisIntegrationSuite) TestAllow_UnknownTierIsUnlimited() {
	limiter := New(s.client, nil, s.logger)

	d, err := limiter.Allow(s.ctx, TierRead, "x")
	s.NoError(err)
	s.True(d.Allowed)

	n, err := s.client.Exists(s.ctx, Key(TierRead, "x")).Result()
	s.NoError(err)
	s.Zero(n)
}

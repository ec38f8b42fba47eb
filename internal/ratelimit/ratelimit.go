// Package ratelimit implements fixed-window request counters in Redis.
package ratelimit

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Tier is a class of requests sharing one quota.
type Tier string

const (
	TierRead  Tier = "read"
	TierWrite Tier = "write"
	TierBatch Tier = "batch"
)

// Rule allows Limit requests per client within each Window.
type Rule struct {
	Limit  int64
	Window time.Duration
}

// Decision is the outcome of counting one request.
type Decision struct {
	Allowed    bool
	Count      int64
	Limit      int64
	RetryAfter time.Duration
}

// Remaining returns how many requests are left in the current window.
func (d Decision) Remaining() int64 {
	if d.Count >= d.Limit {
		return 0
	}
	return d.Limit - d.Count
}

type Limiter struct {
	client *redis.Client
	rules  map[Tier]Rule
	logger *slog.Logger
}

func New(client *redis.Client, rules map[Tier]Rule, logger *slog.Logger) *Limiter {
	return &Limiter{
		client: client,
		rules:  rules,
		logger: logger.With("component", "ratelimit"),
	}
}

// Connect opens a Redis client and checks it with a ping.
func Connect(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	return client, nil
}

func Key(tier Tier, client string) string {
	return fmt.Sprintf("ratelimit:%s:%s", tier, client)
}

// Allow counts one request from client against tier. A tier without a rule
// is unlimited. The window starts with the first request and is not
// extended by later ones.
func (l *Limiter) Allow(ctx context.Context, tier Tier, client string) (Decision, error) {
	rule, ok := l.rules[tier]
	if !ok || rule.Limit <= 0 {
		return Decision{Allowed: true}, nil
	}

	key := Key(tier, client)
	pipe := l.client.Pipeline()
	incrCmd := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, rule.Window)
	ttlCmd := pipe.TTL(ctx, key)

	if _, err := pipe.Exec(ctx); err != nil {
		l.logger.Error("failed to increment rate limit counter", "key", key, "error", err)
		return Decision{Allowed: true}, fmt.Errorf("increment %s: %w", key, err)
	}

	retry := ttlCmd.Val()
	if retry <= 0 {
		retry = rule.Window
	}

	count := incrCmd.Val()
	return Decision{
		Allowed:    count <= rule.Limit,
		Count:      count,
		Limit:      rule.Limit,
		RetryAfter: retry,
	}, nil
}

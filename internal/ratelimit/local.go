package ratelimit

import (
	"context"
	"log/slog"
	"math"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// LocalLimiter keeps one token bucket per tier and client in process memory.
// It serves a single instance when Redis is not configured: each bucket
// holds Limit tokens and refills at Limit per Window.
type LocalLimiter struct {
	rules  map[Tier]Rule
	logger *slog.Logger
	now    func() time.Time

	mu        sync.Mutex
	buckets   map[string]*bucket
	lastSweep time.Time
}

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
	window   time.Duration
}

func NewLocal(rules map[Tier]Rule, logger *slog.Logger) *LocalLimiter {
	return &LocalLimiter{
		rules:   rules,
		logger:  logger.With("component", "ratelimit", "backend", "memory"),
		now:     time.Now,
		buckets: make(map[string]*bucket),
	}
}

// Allow takes one token from the client's bucket for tier. A tier without a
// rule is unlimited. It never returns an error.
func (l *LocalLimiter) Allow(_ context.Context, tier Tier, client string) (Decision, error) {
	rule, ok := l.rules[tier]
	if !ok || rule.Limit <= 0 {
		return Decision{Allowed: true}, nil
	}

	now := l.now()
	key := Key(tier, client)

	l.mu.Lock()
	defer l.mu.Unlock()

	l.sweep(now)

	b, ok := l.buckets[key]
	if !ok {
		every := rule.Window / time.Duration(rule.Limit)
		b = &bucket{
			limiter: rate.NewLimiter(rate.Every(every), int(rule.Limit)),
			window:  rule.Window,
		}
		l.buckets[key] = b
	}
	b.lastSeen = now

	allowed := b.limiter.AllowN(now, 1)
	tokens := b.limiter.TokensAt(now)

	d := Decision{
		Allowed: allowed,
		Count:   rule.Limit - int64(math.Max(0, math.Floor(tokens))),
		Limit:   rule.Limit,
	}
	if !allowed {
		d.Count = rule.Limit + 1
		missing := 1 - tokens
		d.RetryAfter = time.Duration(missing * float64(rule.Window) / float64(rule.Limit))
		l.logger.Debug("request limited", "key", key, "retry_after", d.RetryAfter)
	}
	return d, nil
}

// sweep drops buckets idle for longer than their window, which have refilled
// by then. Caller holds l.mu.
func (l *LocalLimiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < time.Minute {
		return
	}
	l.lastSweep = now
	for key, b := range l.buckets {
		if now.Sub(b.lastSeen) > b.window {
			delete(l.buckets, key)
		}
	}
}

// Len returns the number of tracked buckets.
func (l *LocalLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}

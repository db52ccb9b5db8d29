package redis

import (
	"context"
	"fmt"
	"time"
)

// RateLimiter is a fixed-window counter shared across server instances.
// Counts are keyed by identity and window start and expire with the window,
// so restarts and horizontal scaling do not reset or fragment the budget.
type RateLimiter struct {
	prefix string
	limit  int64
	window time.Duration
}

// NewRateLimiter creates a rate limiter allowing limit operations per window
func NewRateLimiter(prefix string, limit int64, window time.Duration) *RateLimiter {
	return &RateLimiter{
		prefix: prefix,
		limit:  limit,
		window: window,
	}
}

// Allow consumes one unit of budget for the given identity. It returns false
// once the identity has exhausted the current window.
func (r *RateLimiter) Allow(ctx context.Context, identity string) (bool, error) {
	windowStart := time.Now().Truncate(r.window).Unix()
	key := fmt.Sprintf("%s:%s:%d", r.prefix, identity, windowStart)

	count, err := Incr(ctx, key)
	if err != nil {
		return false, err
	}
	if count == 1 {
		// First hit in the window owns the expiry. Two windows of TTL keeps
		// the key alive through clock skew between instances.
		if err := Expire(ctx, key, 2*r.window); err != nil {
			return false, err
		}
	}

	return count <= r.limit, nil
}

package ratelimit

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// TokenLimiter enforces a per-minute token budget for LLM requests.
type TokenLimiter struct {
	limiter *rate.Limiter
	max     int
}

// NewTokenLimiter creates a limiter that refills maxTokensPerMinute tokens
// evenly over each minute. A non-positive budget disables limiting.
func NewTokenLimiter(maxTokensPerMinute int) *TokenLimiter {
	if maxTokensPerMinute <= 0 {
		return &TokenLimiter{}
	}
	perToken := time.Minute / time.Duration(maxTokensPerMinute)
	return &TokenLimiter{
		limiter: rate.NewLimiter(rate.Every(perToken), maxTokensPerMinute),
		max:     maxTokensPerMinute,
	}
}

// Wait blocks until n tokens are available or the context is done. Requests
// larger than the full budget are clamped so they can eventually proceed.
func (l *TokenLimiter) Wait(ctx context.Context, n int) error {
	if l.limiter == nil || n <= 0 {
		return nil
	}
	if n > l.max {
		n = l.max
	}
	return l.limiter.WaitN(ctx, n)
}

// GetRemaining returns the number of tokens currently available.
func (l *TokenLimiter) GetRemaining() int {
	if l.limiter == nil {
		return 0
	}
	return int(l.limiter.Tokens())
}

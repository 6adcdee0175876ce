package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"quotelock/internal/infrastructure/metrics"
	"quotelock/internal/usecase/interfaces"
)

var ErrRateLimited = errors.New("too many requests")

const (
	DefaultRateLimitMaxRequests = 5
	DefaultRateLimitWindow      = 60 * time.Second
)

// IRateLimitUseCase throttles anonymous actions per client address.
type IRateLimitUseCase interface {
	Allow(ctx context.Context, ip, action string) error
}

// RateLimitUseCase is a fixed-window counter. Each window gets its own key, so counters
// reset when the window rolls over and old keys simply expire in the store.
type RateLimitUseCase struct {
	repo        interfaces.IRateCounterRepository
	maxRequests int64
	window      time.Duration
	now         func() time.Time
}

var _ IRateLimitUseCase = (*RateLimitUseCase)(nil)

func NewRateLimitUseCase(repo interfaces.IRateCounterRepository, maxRequests int, window time.Duration) *RateLimitUseCase {
	if maxRequests <= 0 {
		maxRequests = DefaultRateLimitMaxRequests
	}
	if window <= 0 {
		window = DefaultRateLimitWindow
	}
	return &RateLimitUseCase{repo: repo, maxRequests: int64(maxRequests), window: window, now: time.Now}
}

func (u *RateLimitUseCase) Allow(ctx context.Context, ip, action string) error {
	if ip == "" {
		ip = "unknown"
	}
	now := u.now().UTC()
	windowStart := now.Truncate(u.window)
	key := fmt.Sprintf("%s:%s:%d", ip, action, windowStart.Unix())

	count, err := u.repo.Increment(ctx, key, windowStart.Add(2*u.window))
	if err != nil {
		// Fail open on counter store errors.
		log.Printf("[ratelimit][usecase] increment failed key=%s err=%v", key, err)
		return nil
	}
	if count > u.maxRequests {
		metrics.RateLimitedRequestsTotal.WithLabelValues(action).Inc()
		log.Printf("[ratelimit][usecase] limited ip=%s action=%s count=%d", ip, action, count)
		return ErrRateLimited
	}
	return nil
}

package middleware

import (
	"context"
	"sync"

	"github.com/questx-lab/scratchcard/pkg/errorx"
	"github.com/questx-lab/scratchcard/pkg/router"
	"github.com/questx-lab/scratchcard/pkg/xcontext"
	"golang.org/x/time/rate"
)

// RateLimiter throttles requests per user, or per remote address for
// anonymous requests.
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func NewRateLimiter(requestsPerSecond float64, burst int) *RateLimiter {
	return &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Limit(requestsPerSecond),
		burst:    burst,
	}
}

func (rl *RateLimiter) Middleware() router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		key := xcontext.RequestUserID(ctx)
		if key == "" {
			if req := xcontext.HTTPRequest(ctx); req != nil {
				key = req.RemoteAddr
			}
		}

		if !rl.getLimiter(key).Allow() {
			return nil, errorx.New(errorx.TooManyRequests, "Too many requests, slow down")
		}

		return nil, nil
	}
}

// Reset drops every limiter, a dropped key starts again with a full burst.
func (rl *RateLimiter) Reset() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.limiters = make(map[string]*rate.Limiter)
}

func (rl *RateLimiter) getLimiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	limiter, ok := rl.limiters[key]
	if !ok {
		limiter = rate.NewLimiter(rl.limit, rl.burst)
		rl.limiters[key] = limiter
	}

	return limiter
}

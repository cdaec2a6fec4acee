package app

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"orderdesk/internal/config"
	"orderdesk/internal/http/middleware/ratelimit"
	"orderdesk/internal/logx"
	"orderdesk/internal/metrics"
)

func newRateLimitClock() ratelimit.Clock {
	return ratelimit.RealClock{}
}

func newRateLimiter(cfg *config.Config, clock ratelimit.Clock) ratelimit.Limiter {
	rl := cfg.RateLimit
	if !rl.Enabled {
		return ratelimit.NopLimiter{}
	}
	return ratelimit.NewTokenBucketLimiter(clock, ratelimit.Config{
		Rate:       rl.Rate,
		Burst:      rl.Burst,
		TTL:        rl.TTL,
		MaxBuckets: rl.MaxBuckets,
	})
}

type rateLimitIn struct {
	dig.In
	Logger  logx.Logger
	Counter prometheus.Counter `name:"rate_limit_exceeded_total"`
	Limiter ratelimit.Limiter
}

func newRateLimitMiddleware(in rateLimitIn) *ratelimit.Middleware {
	return ratelimit.New(in.Logger, in.Counter, in.Limiter)
}

func registerRateLimit(container *dig.Container) error {
	counterProvider := func() prometheus.Counter {
		c := metrics.NewRateLimitExceededTotal()
		prometheus.MustRegister(c)
		return c
	}
	if err := container.Provide(counterProvider, dig.Name("rate_limit_exceeded_total")); err != nil {
		return fmt.Errorf("provide rate limit counter: %w", err)
	}
	return provideAll(container,
		newRateLimitClock,
		newRateLimiter,
		newRateLimitMiddleware,
	)
}

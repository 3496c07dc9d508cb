package middleware

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"mealplanner/config"
	"mealplanner/internal/infra/metrics"
	"mealplanner/internal/util"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const (
	defaultRequestsPerMinute = 20
	defaultBurst             = 5
	defaultCleanupInterval   = 5 * time.Minute
)

type clientLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// RateLimiter throttles requests per client IP.
type RateLimiter struct {
	enabled         bool
	limit           rate.Limit
	burst           int
	cleanupInterval time.Duration
	recorder        metrics.Recorder

	mu       sync.Mutex
	limiters map[string]*clientLimiter

	stopCh chan struct{}
	once   sync.Once
}

// NewRateLimiter builds a limiter from cfg.RateLimit; a nil section disables it.
func NewRateLimiter(cfg *config.Config, recorder metrics.Recorder) *RateLimiter {
	rl := &RateLimiter{
		limit:           rate.Limit(defaultRequestsPerMinute / 60.0),
		burst:           defaultBurst,
		cleanupInterval: defaultCleanupInterval,
		recorder:        recorder,
		limiters:        make(map[string]*clientLimiter),
		stopCh:          make(chan struct{}),
	}
	if rl.recorder == nil {
		rl.recorder = metrics.Nop{}
	}

	if rlCfg := cfg.RateLimit; rlCfg != nil {
		rl.enabled = rlCfg.Enabled
		if rlCfg.RequestsPerMinute > 0 {
			rl.limit = rate.Limit(rlCfg.RequestsPerMinute / 60.0)
		}
		if rlCfg.Burst > 0 {
			rl.burst = rlCfg.Burst
		}
		if rlCfg.CleanupInterval > 0 {
			rl.cleanupInterval = rlCfg.CleanupInterval
		}
	}

	return rl
}

// Start runs the background eviction of idle clients until Stop is called.
func (rl *RateLimiter) Start(context.Context) error {
	if rl.enabled {
		go rl.cleanupLoop()
	}

	return nil
}

// Stop ends the eviction loop.
func (rl *RateLimiter) Stop(context.Context) error {
	rl.once.Do(func() { close(rl.stopCh) })

	return nil
}

// Limit rejects requests over the per-IP budget with 429 and a Retry-After header.
func (rl *RateLimiter) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !rl.enabled {
			return next(c)
		}

		if !rl.limiterFor(c.RealIP()).Allow() {
			rl.recorder.RecordRateLimited(c.Path())
			retryAfter := rl.retryAfterSeconds()
			c.Response().Header().Set("Retry-After", strconv.Itoa(retryAfter))

			return echo.NewHTTPError(http.StatusTooManyRequests,
				"Too many requests, retry in "+util.FormatDuration(time.Duration(retryAfter)*time.Second))
		}

		return next(c)
	}
}

// ClientCount returns the number of tracked clients.
func (rl *RateLimiter) ClientCount() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	return len(rl.limiters)
}

func (rl *RateLimiter) limiterFor(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	if cl, ok := rl.limiters[ip]; ok {
		cl.lastAccess = now

		return cl.limiter
	}

	cl := &clientLimiter{
		limiter:    rate.NewLimiter(rl.limit, rl.burst),
		lastAccess: now,
	}
	rl.limiters[ip] = cl

	return cl.limiter
}

func (rl *RateLimiter) retryAfterSeconds() int {
	return max(1, int(math.Ceil(1/float64(rl.limit))))
}

func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(rl.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.evictIdle(time.Now())
		case <-rl.stopCh:
			return
		}
	}
}

// evictIdle drops clients idle for more than two cleanup intervals.
func (rl *RateLimiter) evictIdle(now time.Time) {
	ttl := rl.cleanupInterval * 2

	rl.mu.Lock()
	defer rl.mu.Unlock()

	for ip, cl := range rl.limiters {
		if now.Sub(cl.lastAccess) > ttl {
			delete(rl.limiters, ip)
		}
	}
}

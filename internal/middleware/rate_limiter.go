package middleware

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"sync"
	"time"

	"retailapi/internal/apierror"
	"retailapi/internal/infra"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Counter counts hits of key in fixed windows. Hit returns the count in the
// current window and the time left until it resets.
type Counter interface {
	Hit(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error)
}

// ── In-process counter ────────────────────────────────────────────────────────

type rateEntry struct {
	count     int64
	windowEnd time.Time
}

// MemoryCounter keeps counters in a map. Expired entries are swept at most
// once per purgeInterval, on the request path.
type MemoryCounter struct {
	mu        sync.Mutex
	entries   map[string]*rateEntry
	lastPurge time.Time
	now       func() time.Time
}

const purgeInterval = 5 * time.Minute

func NewMemoryCounter() *MemoryCounter {
	return &MemoryCounter{entries: make(map[string]*rateEntry), now: time.Now}
}

func (m *MemoryCounter) Hit(_ context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if now.Sub(m.lastPurge) >= purgeInterval {
		m.purge(now)
	}

	entry, ok := m.entries[key]
	if !ok || now.After(entry.windowEnd) {
		entry = &rateEntry{windowEnd: now.Add(window)}
		m.entries[key] = entry
	}
	entry.count++
	return entry.count, entry.windowEnd.Sub(now), nil
}

// must be called under lock
func (m *MemoryCounter) purge(now time.Time) {
	purged := 0
	for key, entry := range m.entries {
		if now.After(entry.windowEnd) {
			delete(m.entries, key)
			purged++
		}
	}
	m.lastPurge = now
	if purged > 0 {
		log.Debug().
			Int("entries_purged", purged).
			Int("entries_remaining", len(m.entries)).
			Msg("rate limiter map purged")
	}
}

// ── Redis counter ─────────────────────────────────────────────────────────────

// RedisCounter shares counters between replicas with INCR + EXPIRE. Calls go
// through a circuit breaker; while Redis is failing the fallback counter is used.
type RedisCounter struct {
	rdb      *redis.Client
	breaker  *infra.CircuitBreaker
	fallback Counter
}

func NewRedisCounter(rdb *redis.Client, breaker *infra.CircuitBreaker, fallback Counter) *RedisCounter {
	return &RedisCounter{rdb: rdb, breaker: breaker, fallback: fallback}
}

func (r *RedisCounter) Hit(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	var (
		count int64
		ttl   time.Duration
	)
	err := r.breaker.Execute(func() error {
		redisKey := "ratelimit:" + key
		n, err := r.rdb.Incr(ctx, redisKey).Result()
		if err != nil {
			return err
		}
		if n == 1 {
			if err := r.rdb.Expire(ctx, redisKey, window).Err(); err != nil {
				return err
			}
		}
		left, err := r.rdb.PTTL(ctx, redisKey).Result()
		if err != nil {
			return err
		}
		if left < 0 {
			// key lost its expiry; restore it so the window can end
			left = window
			if err := r.rdb.Expire(ctx, redisKey, window).Err(); err != nil {
				return err
			}
		}
		count, ttl = n, left
		return nil
	})
	if err != nil {
		if !errors.Is(err, infra.ErrCircuitOpen) {
			log.Warn().Err(err).Msg("redis rate limit counter failed, using in-process counter")
		}
		return r.fallback.Hit(ctx, key, window)
	}
	return count, ttl, nil
}

// ── Middleware ────────────────────────────────────────────────────────────────

// RateLimiter allows limit requests per window per client IP. A counter error
// lets the request through.
func RateLimiter(counter Counter, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		n, left, err := counter.Hit(c.Request.Context(), c.ClientIP(), window)
		if err != nil {
			log.Error().Err(err).Str("request_id", c.GetString(RequestIDKey)).Msg("rate limiter")
			c.Next()
			return
		}
		if n > int64(limit) {
			c.Header("Retry-After", strconv.Itoa(int(left.Round(time.Second).Seconds())))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New("Demasiadas solicitudes. Intente nuevamente en un momento."))
			return
		}
		c.Next()
	}
}

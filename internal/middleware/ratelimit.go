package middleware

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/avesong/go-api-skeleton/internal/config"
	"github.com/avesong/go-api-skeleton/internal/response"
)

// NewGlobalRateLimiter returns the single limiter applied to every route.
// One shared token bucket covers the whole service.  With a Redis client the
// bucket state lives in Redis so replicas share the budget; without one the
// bucket is a process-local rate.Limiter.  Redis failures fail open.
func NewGlobalRateLimiter(cfg config.RateLimitConfig, rdb *redis.Client, log *zap.Logger) echo.MiddlewareFunc {
	if !cfg.Enabled {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error { return next(c) }
		}
	}
	if rdb != nil {
		return newRedisBucket(cfg, rdb, log)
	}
	return newLocalBucket(cfg)
}

// retryAfterSeconds is the Retry-After hint when the bucket is empty: the
// time until the next refill grants at least one token.
func retryAfterSeconds(cfg config.RateLimitConfig) int {
	secs := int(math.Ceil(cfg.RefillInterval.Seconds() / float64(cfg.RefillTokens)))
	if secs < 1 {
		secs = 1
	}
	return secs
}

func denied(c echo.Context, cfg config.RateLimitConfig) error {
	c.Response().Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds(cfg)))
	return response.NewTooManyRequests("rate limit exceeded").WithDetails(map[string]any{
		"retry_after": retryAfterSeconds(cfg),
	})
}

func newLocalBucket(cfg config.RateLimitConfig) echo.MiddlewareFunc {
	limit := rate.Limit(float64(cfg.RefillTokens) / cfg.RefillInterval.Seconds())
	lim := rate.NewLimiter(limit, cfg.Capacity)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(cfg.Capacity))
			if !lim.Allow() {
				c.Response().Header().Set("X-RateLimit-Remaining", "0")
				return denied(c, cfg)
			}
			remaining := int64(lim.Tokens())
			if remaining < 0 {
				remaining = 0
			}
			c.Response().Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))
			return next(c)
		}
	}
}

func newRedisBucket(cfg config.RateLimitConfig, rdb *redis.Client, log *zap.Logger) echo.MiddlewareFunc {
	limiterScript := redis.NewScript(`
        local key = KEYS[1]
        local now_ms = tonumber(ARGV[1])
        local capacity = tonumber(ARGV[2])
        local refill_tokens = tonumber(ARGV[3])
        local interval_ms = tonumber(ARGV[4])
        local ttl_seconds = tonumber(ARGV[5])

        local state = redis.call('HMGET', key, 'tokens', 'last_refill_ms')
        local tokens = tonumber(state[1])
        local last_refill = tonumber(state[2])

        if tokens == nil or last_refill == nil then
            tokens = capacity
            last_refill = now_ms
        end

        if interval_ms > 0 and refill_tokens > 0 then
            local elapsed = math.max(0, now_ms - last_refill)
            local intervals = math.floor(elapsed / interval_ms)
            if intervals > 0 then
                tokens = math.min(capacity, tokens + (intervals * refill_tokens))
                last_refill = last_refill + (intervals * interval_ms)
            end
        end

        local allowed = 0
        if tokens > 0 then
            allowed = 1
            tokens = tokens - 1
        end

        redis.call('HMSET', key, 'tokens', tokens, 'last_refill_ms', last_refill, 'capacity', capacity)
        redis.call('EXPIRE', key, ttl_seconds)

        return { allowed, tokens }
    `)

	key := cfg.Prefix + ":global"

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			now := time.Now()

			args := []interface{}{
				now.UnixMilli(),
				cfg.Capacity,
				cfg.RefillTokens,
				cfg.RefillInterval.Milliseconds(),
				int64(cfg.TTL / time.Second),
			}

			ctx := c.Request().Context()
			vals, err := limiterScript.Run(ctx, rdb, []string{key}, args...).Result()
			if err != nil {
				if cfg.Debug {
					log.Warn("rate limiter redis error, failing open",
						zap.String("key", key), zap.Error(err))
				}
				return next(c)
			}

			allowed := false
			remaining := int64(0)
			if arr, ok := vals.([]interface{}); ok && len(arr) == 2 {
				if i, ok := arr[0].(int64); ok {
					allowed = i == 1
				} else {
					allowed = fmt.Sprint(arr[0]) == "1"
				}
				remaining = asInt64(arr[1])
			} else {
				if cfg.Debug {
					log.Warn("rate limiter unexpected script result, failing open",
						zap.String("key", key), zap.Any("result", vals))
				}
				return next(c)
			}

			c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(cfg.Capacity))
			c.Response().Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

			if !allowed {
				if cfg.Debug {
					log.Info("rate limiter block",
						zap.String("key", key), zap.Int64("remaining", remaining))
				}
				return denied(c, cfg)
			}
			return next(c)
		}
	}
}

func asInt64(v interface{}) int64 {
	switch t := v.(type) {
	case int64:
		return t
	case int32:
		return int64(t)
	case int:
		return int64(t)
	case float64:
		return int64(t)
	case float32:
		return int64(t)
	case string:
		if n, err := strconv.ParseInt(t, 10, 64); err == nil {
			return n
		}
	}
	return 0
}

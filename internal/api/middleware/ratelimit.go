package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/userdir/user-directory-api/internal/api/metrics"
)

// RateLimitConfig controls the fixed-window limiter on the auth routes.
type RateLimitConfig struct {
	// Window is the length of the counting window.
	Window time.Duration
	// Max is the number of requests allowed per client IP per window.
	Max int
}

// RateLimit returns a fixed-window per-IP limiter backed by Redis.
// Key format: ratelimit:<ip>:<window_start_unix>
//
// The counter is created with INCR and given the window as TTL on first use,
// so state cleans itself up. If Redis is unreachable the request is let
// through: the limiter is a brute-force brake, not an availability
// dependency.
func RateLimit(rdb *redis.Client, cfg RateLimitConfig, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			window := time.Now().Unix() / int64(cfg.Window.Seconds())
			key := fmt.Sprintf("ratelimit:%s:%d", c.RealIP(), window)

			pipe := rdb.TxPipeline()
			count := pipe.Incr(ctx, key)
			pipe.Expire(ctx, key, cfg.Window)
			if _, err := pipe.Exec(ctx); err != nil {
				log.Warn().Err(err).Msg("rate limiter unavailable, allowing request")
				return next(c)
			}

			if count.Val() > int64(cfg.Max) {
				metrics.RateLimitedTotal.Inc()
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many requests, try again later")
			}

			return next(c)
		}
	}
}

package middleware

import (
	"fmt"
	"strconv"
	"time"

	redisStore "boltcard-gateway/internal/adapter/storage/redis"
	"boltcard-gateway/pkg/apperror"
	"boltcard-gateway/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RateLimitRule defines a rate limit for an endpoint group.
type RateLimitRule struct {
	Limit  int64
	Window time.Duration
}

// DefaultRateLimitRules returns the rate limits per endpoint group. The
// LNURL protocol endpoints are the tightest: they are unauthenticated and a
// flood of malformed taps is indistinguishable from tamper probing.
func DefaultRateLimitRules() map[string]RateLimitRule {
	return map[string]RateLimitRule{
		"ln_withdraw":     {Limit: 30, Window: time.Minute},
		"ln_callback":     {Limit: 30, Window: time.Minute},
		"ln_register":     {Limit: 10, Window: time.Minute},
		"settlement":      {Limit: 120, Window: time.Minute},
		"owner_api":       {Limit: 60, Window: time.Minute},
		"owner_api_write": {Limit: 20, Window: time.Minute},
	}
}

// RateLimiter creates a rate-limiting middleware for a given endpoint group.
// LNURL endpoints get the wire-level error shape instead of the envelope.
func RateLimiter(store *redisStore.RateLimitStore, group string, rule RateLimitRule, lnurl bool, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("%s:%s", c.ClientIP(), group)

		result, err := store.Allow(c.Request.Context(), key, rule.Limit, rule.Window)
		if err != nil {
			log.Warn().Err(err).Str("group", group).Msg("rate limit check failed, allowing request (degraded mode)")
			c.Next()
			return
		}

		// Always set rate limit headers
		c.Header("X-RateLimit-Limit", strconv.FormatInt(result.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(result.Remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt, 10))

		if !result.Allowed {
			retryAfter := result.ResetAt - time.Now().Unix()
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.FormatInt(retryAfter, 10))
			if lnurl {
				response.LNURLFail(c, apperror.ErrRateLimitExceeded())
			} else {
				response.Error(c, apperror.ErrRateLimitExceeded())
			}
			c.Abort()
			return
		}

		c.Next()
	}
}

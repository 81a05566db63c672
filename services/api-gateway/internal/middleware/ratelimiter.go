package middleware

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type RateLimiter struct {
	redisClient *redis.Client
}

func NewRateLimiter(client *redis.Client) *RateLimiter {
	return &RateLimiter{redisClient: client}
}

// limitKey buckets authenticated callers by user id so couples sharing a
// network do not starve each other; anonymous requests fall back to the IP.
func limitKey(c *gin.Context, keySuffix string) string {
	who := c.GetString("userId")
	if who == "" {
		who = "ip:" + c.ClientIP()
	}
	return fmt.Sprintf("rate_limit:%s:%s", keySuffix, who)
}

// allow bumps the fixed-window counter at key. The window starts with the
// first hit; retryAfter is what is left of it once the limit is exceeded.
func (rl *RateLimiter) allow(ctx context.Context, key string, limit int, window time.Duration) (ok bool, retryAfter time.Duration, err error) {
	var (
		incr *redis.IntCmd
		ttl  *redis.DurationCmd
	)
	_, err = rl.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.ExpireNX(ctx, key, window)
		ttl = pipe.PTTL(ctx, key)
		return nil
	})
	if err != nil {
		return false, 0, err
	}
	if incr.Val() <= int64(limit) {
		return true, 0, nil
	}
	retryAfter = ttl.Val()
	if retryAfter <= 0 {
		retryAfter = window
	}
	return false, retryAfter, nil
}

// Limit allows limit requests per caller per window. Redis errors let the
// request through.
func (rl *RateLimiter) Limit(keySuffix string, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl == nil || rl.redisClient == nil {
			c.Next()
			return
		}

		ok, retryAfter, err := rl.allow(c, limitKey(c, keySuffix), limit, window)
		if err != nil || ok {
			c.Next()
			return
		}

		seconds := int(math.Ceil(retryAfter.Seconds()))
		c.Header("Retry-After", strconv.Itoa(seconds))
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
			"error":               "too many requests",
			"retry_after_seconds": seconds,
		})
	}
}

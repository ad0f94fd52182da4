package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

type RateLimiter struct {
	redisClient *redis.Client
	logger      zerolog.Logger
}

func NewRateLimiter(client *redis.Client, logger zerolog.Logger) *RateLimiter {
	return &RateLimiter{redisClient: client, logger: logger}
}

// Limit counts requests per client ip in a fixed window.
func (rl *RateLimiter) Limit(keySuffix string, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("rate_limit:%s:%s", keySuffix, c.ClientIP())

		// окно создается вместе с ключом, счетчик без TTL не остается
		var incr *redis.IntCmd
		_, _ = rl.redisClient.TxPipelined(c, func(pipe redis.Pipeliner) error {
			pipe.SetNX(c, key, 0, window)
			incr = pipe.Incr(c, key)
			return nil
		})
		count, err := incr.Result()
		if err != nil {
			// redis недоступен: не блокируем логин
			rl.logger.Warn().Err(err).Str("key", key).Msg("Rate limiter unavailable")
			c.Next()
			return
		}
		if count > int64(limit) {
			ttl, _ := rl.redisClient.TTL(c, key).Result()
			if ttl < time.Second {
				ttl = time.Second
			}
			c.Header("Retry-After", strconv.Itoa(int(ttl.Seconds())))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "Too many login attempts, try again later",
				"retry_after": int(ttl.Seconds()),
			})
			return
		}
		c.Next()
	}
}

package middlewares

import (
	"fmt"
	"net/http"
	"time"
	"travelbharat/config"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RateLimitMiddleware applies a fixed-window request limit per client address,
// counted in redis. When redis is unreachable the request is let through;
// limiting is never allowed to take the API down.
func RateLimitMiddleware(rdb *redis.Client, name string, max int64, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("ratelimit:%s:%s", name, c.ClientIP())

		count, err := rdb.Incr(config.Ctx, key).Result()
		if err != nil {
			c.Next()
			return
		}

		if count == 1 {
			rdb.Expire(config.Ctx, key, window)
		}

		if count > max {
			c.JSON(http.StatusTooManyRequests, gin.H{"code": 0, "mess": "Too many requests from this IP, please try again later."})
			c.Abort()
			return
		}

		c.Next()
	}
}

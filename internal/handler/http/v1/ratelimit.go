package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// RateLimiter - счетчик запросов с фиксированным окном в Redis, ключ по IP клиента
type RateLimiter struct {
	redisClient *redis.Client
	logger      *logrus.Logger
}

func NewRateLimiter(client *redis.Client, logger *logrus.Logger) *RateLimiter {
	return &RateLimiter{redisClient: client, logger: logger}
}

// Limit пропускает не больше limit запросов за window. Если Redis недоступен, запрос пропускается.
func (rl *RateLimiter) Limit(keySuffix string, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.redisClient == nil || limit <= 0 {
			c.Next()
			return
		}

		key := fmt.Sprintf("rate_limit:%s:%s", keySuffix, c.ClientIP())

		count, err := rl.redisClient.Incr(c, key).Result()
		if err != nil {
			rl.logger.WithError(err).Warn("Rate limiter unavailable, request allowed")
			c.Next()
			return
		}

		// Первый запрос в окне задает время жизни ключа
		if count == 1 {
			rl.redisClient.Expire(c, key, window)
		}

		if count > int64(limit) {
			ttl, _ := rl.redisClient.TTL(c, key).Result()
			c.Header("Retry-After", fmt.Sprintf("%.0f", ttl.Seconds()))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}

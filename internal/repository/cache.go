package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// SeenCache помнит недавно виденные incident_id в Redis.
// Источник истины - хранилище; кэш лишь экономит лишний SELECT для дубликатов.
type SeenCache struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewSeenCache(redisClient *redis.Client, ttl time.Duration) *SeenCache {
	return &SeenCache{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

// MarkSeen возвращает true, если incident_id встретился впервые за время жизни ключа
func (c *SeenCache) MarkSeen(ctx context.Context, incidentID string) (bool, error) {
	key := fmt.Sprintf("incident:seen:%s", incidentID)
	firstSeen, err := c.redisClient.SetNX(ctx, key, 1, c.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to mark incident as seen: %w", err)
	}
	return firstSeen, nil
}

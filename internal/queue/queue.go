// Package queue доставляет incident_id от приема сообщения до обработчика рассылки.
package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const incidentQueueKey = "incident_jobs"

// Job - задание на обработку инцидента
type Job struct {
	IncidentID string    `json:"incident_id"`
	EnqueuedAt time.Time `json:"enqueued_at"`
}

// RedisQueue - очередь заданий в списке Redis (LPUSH / BRPOP)
type RedisQueue struct {
	redisClient *redis.Client
}

func NewRedisQueue(client *redis.Client) *RedisQueue {
	return &RedisQueue{redisClient: client}
}

// Enqueue добавляет задание в левую часть списка
func (q *RedisQueue) Enqueue(ctx context.Context, incidentID string) error {
	payload, err := json.Marshal(Job{IncidentID: incidentID, EnqueuedAt: time.Now().UTC()})
	if err != nil {
		return fmt.Errorf("failed to marshal incident job: %w", err)
	}
	if err := q.redisClient.LPush(ctx, incidentQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to enqueue incident job to Redis: %w", err)
	}
	return nil
}

// Dequeue блокируется до timeout. Пустая очередь - это ("", nil).
func (q *RedisQueue) Dequeue(ctx context.Context, timeout time.Duration) (string, error) {
	result, err := q.redisClient.BRPop(ctx, timeout, incidentQueueKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("failed to pop incident job from Redis: %w", err)
	}

	// result[0] - ключ, result[1] - значение
	var job Job
	if err := json.Unmarshal([]byte(result[1]), &job); err != nil {
		return "", fmt.Errorf("failed to unmarshal incident job: %w", err)
	}
	return job.IncidentID, nil
}

// LocalQueue - очередь в памяти процесса для запуска без Redis
type LocalQueue struct {
	jobs chan string
}

func NewLocalQueue(size int) *LocalQueue {
	return &LocalQueue{jobs: make(chan string, size)}
}

// Enqueue не блокируется: при переполнении инцидент подберет sweeper
func (q *LocalQueue) Enqueue(_ context.Context, incidentID string) error {
	select {
	case q.jobs <- incidentID:
		return nil
	default:
		return fmt.Errorf("local incident queue is full")
	}
}

func (q *LocalQueue) Dequeue(ctx context.Context, timeout time.Duration) (string, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case id := <-q.jobs:
		return id, nil
	case <-timer.C:
		return "", nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

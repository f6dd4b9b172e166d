package queue

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisQueue(t *testing.T) *RedisQueue {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisQueue(client)
}

func TestRedisQueue_FIFO(t *testing.T) {
	q := newTestRedisQueue(t)
	ctx := context.Background()

	require.NoError(t, q.Enqueue(ctx, "X1"))
	require.NoError(t, q.Enqueue(ctx, "X2"))

	first, err := q.Dequeue(ctx, time.Second)
	require.NoError(t, err)
	second, err := q.Dequeue(ctx, time.Second)
	require.NoError(t, err)

	assert.Equal(t, "X1", first)
	assert.Equal(t, "X2", second)
}

func TestLocalQueue_EmptyAndFull(t *testing.T) {
	q := NewLocalQueue(1)
	ctx := context.Background()

	id, err := q.Dequeue(ctx, 10*time.Millisecond)
	require.NoError(t, err)
	assert.Empty(t, id)

	require.NoError(t, q.Enqueue(ctx, "X1"))
	assert.Error(t, q.Enqueue(ctx, "X2"))

	id, err = q.Dequeue(ctx, time.Second)
	require.NoError(t, err)
	assert.Equal(t, "X1", id)
}

type recordingProcessor struct {
	mu   sync.Mutex
	seen []string
	done chan struct{}
}

func (p *recordingProcessor) Process(_ context.Context, incidentID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.seen = append(p.seen, incidentID)
	if len(p.seen) == 2 {
		close(p.done)
	}
	return nil
}

func TestWorker_ProcessesQueuedIncidents(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	q := NewLocalQueue(10)
	proc := &recordingProcessor{done: make(chan struct{})}
	w := NewWorker(q, proc, logger, 2)
	w.pollTimeout = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	w.Start(ctx)

	require.NoError(t, q.Enqueue(ctx, "X1"))
	require.NoError(t, q.Enqueue(ctx, "X2"))

	select {
	case <-proc.done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not process queued incidents")
	}
	cancel()
	w.Wait()

	proc.mu.Lock()
	defer proc.mu.Unlock()
	assert.ElementsMatch(t, []string{"X1", "X2"}, proc.seen)
}

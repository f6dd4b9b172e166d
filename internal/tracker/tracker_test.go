package tracker

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/crash_alert_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type alertTracker interface {
	RecordOpenAlert(ctx context.Context, scopeKey string, alert models.OpenAlert) error
	RetractAll(ctx context.Context, scopeKey string) (int, error)
	HasOpenAlerts(ctx context.Context, scopeKey string) (bool, error)
	OpenAlertCount(ctx context.Context, scopeKey string) (int, error)
	OpenAlerts(ctx context.Context, scopeKey string) ([]models.OpenAlert, error)
}

func newTestRedisTracker(t *testing.T) *RedisTracker {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisTracker(client)
}

func forEachTracker(t *testing.T, fn func(t *testing.T, tr alertTracker)) {
	t.Run("memory", func(t *testing.T) { fn(t, NewMemoryTracker()) })
	t.Run("redis", func(t *testing.T) { fn(t, newTestRedisTracker(t)) })
}

func TestTracker_RecordAndRetract(t *testing.T) {
	forEachTracker(t, func(t *testing.T, tr alertTracker) {
		ctx := context.Background()

		require.NoError(t, tr.RecordOpenAlert(ctx, "C1", models.OpenAlert{AlertID: "a1", IncidentID: "X1"}))
		require.NoError(t, tr.RecordOpenAlert(ctx, "C1", models.OpenAlert{AlertID: "a2", IncidentID: "X1"}))
		require.NoError(t, tr.RecordOpenAlert(ctx, "C1", models.OpenAlert{AlertID: "a1", IncidentID: "X1"}))

		n, err := tr.OpenAlertCount(ctx, "C1")
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		alerts, err := tr.OpenAlerts(ctx, "C1")
		require.NoError(t, err)
		assert.ElementsMatch(t, []models.OpenAlert{{AlertID: "a1", IncidentID: "X1"}, {AlertID: "a2", IncidentID: "X1"}}, alerts)

		retracted, err := tr.RetractAll(ctx, "C1")
		require.NoError(t, err)
		assert.Equal(t, 2, retracted)

		has, err := tr.HasOpenAlerts(ctx, "C1")
		require.NoError(t, err)
		assert.False(t, has)
	})
}

func TestTracker_RetractIsIdempotent(t *testing.T) {
	forEachTracker(t, func(t *testing.T, tr alertTracker) {
		ctx := context.Background()

		n, err := tr.RetractAll(ctx, "never-used")
		require.NoError(t, err)
		assert.Zero(t, n)

		require.NoError(t, tr.RecordOpenAlert(ctx, "victim:U1", models.OpenAlert{AlertID: "a1", IncidentID: "X1"}))

		first, err := tr.RetractAll(ctx, "victim:U1")
		require.NoError(t, err)
		second, err := tr.RetractAll(ctx, "victim:U1")
		require.NoError(t, err)

		assert.Equal(t, 1, first)
		assert.Zero(t, second)
	})
}

func TestTracker_ScopesAreIndependent(t *testing.T) {
	forEachTracker(t, func(t *testing.T, tr alertTracker) {
		ctx := context.Background()

		require.NoError(t, tr.RecordOpenAlert(ctx, "C1", models.OpenAlert{AlertID: "a1", IncidentID: "X1"}))
		require.NoError(t, tr.RecordOpenAlert(ctx, "C2", models.OpenAlert{AlertID: "a2", IncidentID: "X1"}))

		_, err := tr.RetractAll(ctx, "C1")
		require.NoError(t, err)

		has, err := tr.HasOpenAlerts(ctx, "C2")
		require.NoError(t, err)
		assert.True(t, has)
	})
}

func TestTracker_RetractClearsSiblingScopes(t *testing.T) {
	forEachTracker(t, func(t *testing.T, tr alertTracker) {
		ctx := context.Background()
		shared := models.OpenAlert{AlertID: "a1", IncidentID: "X1"}
		own := models.OpenAlert{AlertID: "a2", IncidentID: "X2"}

		require.NoError(t, tr.RecordOpenAlert(ctx, "C1", shared))
		require.NoError(t, tr.RecordOpenAlert(ctx, "victim:U1", shared))
		require.NoError(t, tr.RecordOpenAlert(ctx, "C1", own))

		// помощь подтверждена: алерт снимается и у контакта
		victim, err := tr.RetractAll(ctx, "victim:U1")
		require.NoError(t, err)
		assert.Equal(t, 1, victim)

		alerts, err := tr.OpenAlerts(ctx, "C1")
		require.NoError(t, err)
		assert.Equal(t, []models.OpenAlert{own}, alerts)

		// приложение открыто у контакта: a1 уже снят и второй раз не считается
		contact, err := tr.RetractAll(ctx, "C1")
		require.NoError(t, err)
		assert.Equal(t, 1, contact)

		has, err := tr.HasOpenAlerts(ctx, "C1")
		require.NoError(t, err)
		assert.False(t, has)
	})
}

func TestTracker_ConcurrentRetractAcrossScopesCountsOnce(t *testing.T) {
	forEachTracker(t, func(t *testing.T, tr alertTracker) {
		ctx := context.Background()
		for i := 0; i < 20; i++ {
			alert := models.OpenAlert{AlertID: fmt.Sprintf("a%d", i), IncidentID: "X1"}
			require.NoError(t, tr.RecordOpenAlert(ctx, "C1", alert))
			require.NoError(t, tr.RecordOpenAlert(ctx, "victim:U1", alert))
		}

		var wg sync.WaitGroup
		var mu sync.Mutex
		total := 0
		for _, scope := range []string{"C1", "victim:U1", "C1", "victim:U1"} {
			wg.Add(1)
			go func(scope string) {
				defer wg.Done()
				n, err := tr.RetractAll(ctx, scope)
				assert.NoError(t, err)
				mu.Lock()
				total += n
				mu.Unlock()
			}(scope)
		}
		wg.Wait()

		assert.Equal(t, 20, total)
		for _, scope := range []string{"C1", "victim:U1"} {
			has, err := tr.HasOpenAlerts(ctx, scope)
			require.NoError(t, err)
			assert.False(t, has)
		}
	})
}

func TestMemoryTracker_ConcurrentRecordThenRetract(t *testing.T) {
	tr := NewMemoryTracker()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = tr.RecordOpenAlert(ctx, "C1", models.OpenAlert{AlertID: fmt.Sprintf("a%d", i), IncidentID: "X1"})
		}(i)
	}
	wg.Wait()

	var total int
	var mu sync.Mutex
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n, _ := tr.RetractAll(ctx, "C1")
			mu.Lock()
			total += n
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, total, "every alert is retracted exactly once")
	n, err := tr.OpenAlertCount(ctx, "C1")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRedisTracker_RedisDown(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	tr := NewRedisTracker(client)
	mr.Close()

	_, err := tr.RetractAll(context.Background(), "C1")

	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to retract open alerts")
}

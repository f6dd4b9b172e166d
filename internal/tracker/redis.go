package tracker

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/crash_alert_system/internal/models"
)

const (
	openAlertsKeyPrefix  = "alerts:open:"
	alertScopesKeyPrefix = "alerts:scopes:"
)

// RedisTracker хранит набор scope в Redis SET, чтобы состояние разделялось между инстансами
type RedisTracker struct {
	redisClient *redis.Client
}

func NewRedisTracker(client *redis.Client) *RedisTracker {
	return &RedisTracker{redisClient: client}
}

func openAlertsKey(scopeKey string) string {
	return openAlertsKeyPrefix + scopeKey
}

// alertScopesKey - SET scope, в которых алерт еще открыт
func alertScopesKey(alertID string) string {
	return alertScopesKeyPrefix + alertID
}

func (t *RedisTracker) RecordOpenAlert(ctx context.Context, scopeKey string, alert models.OpenAlert) error {
	member, err := json.Marshal(alert)
	if err != nil {
		return fmt.Errorf("failed to marshal open alert: %w", err)
	}
	_, err = t.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.SAdd(ctx, openAlertsKey(scopeKey), member)
		pipe.SAdd(ctx, alertScopesKey(alert.AlertID), scopeKey)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to record open alert in Redis: %w", err)
	}
	return nil
}

// RetractAll забирает набор scope в одной транзакции MULTI/EXEC, затем снимает
// те же алерты из соседних scope. Алерт засчитывается тому вызову, который удалил
// его индекс, поэтому конкурирующие снятия не считают его дважды.
func (t *RedisTracker) RetractAll(ctx context.Context, scopeKey string) (int, error) {
	key := openAlertsKey(scopeKey)

	var members *redis.StringSliceCmd
	_, err := t.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		members = pipe.SMembers(ctx, key)
		pipe.Del(ctx, key)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to retract open alerts in Redis: %w", err)
	}
	if len(members.Val()) == 0 {
		return 0, nil
	}

	alertIDs := make([]string, 0, len(members.Val()))
	for _, m := range members.Val() {
		var a models.OpenAlert
		if err := json.Unmarshal([]byte(m), &a); err != nil {
			return 0, fmt.Errorf("failed to unmarshal open alert: %w", err)
		}
		alertIDs = append(alertIDs, a.AlertID)
	}

	scopes := make([]*redis.StringSliceCmd, len(alertIDs))
	dels := make([]*redis.IntCmd, len(alertIDs))
	_, err = t.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, id := range alertIDs {
			scopes[i] = pipe.SMembers(ctx, alertScopesKey(id))
			dels[i] = pipe.Del(ctx, alertScopesKey(id))
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to retract open alerts in Redis: %w", err)
	}

	n := 0
	stale := make(map[string][]interface{})
	for i, m := range members.Val() {
		if dels[i].Val() == 0 {
			// уже снят через другой scope
			continue
		}
		n++
		for _, sc := range scopes[i].Val() {
			if sc != scopeKey {
				stale[sc] = append(stale[sc], m)
			}
		}
	}
	if len(stale) == 0 {
		return n, nil
	}

	_, err = t.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for sc, ms := range stale {
			pipe.SRem(ctx, openAlertsKey(sc), ms...)
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to retract open alerts from sibling scopes in Redis: %w", err)
	}
	return n, nil
}

func (t *RedisTracker) HasOpenAlerts(ctx context.Context, scopeKey string) (bool, error) {
	n, err := t.OpenAlertCount(ctx, scopeKey)
	return n > 0, err
}

func (t *RedisTracker) OpenAlertCount(ctx context.Context, scopeKey string) (int, error) {
	n, err := t.redisClient.SCard(ctx, openAlertsKey(scopeKey)).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to count open alerts in Redis: %w", err)
	}
	return int(n), nil
}

func (t *RedisTracker) OpenAlerts(ctx context.Context, scopeKey string) ([]models.OpenAlert, error) {
	members, err := t.redisClient.SMembers(ctx, openAlertsKey(scopeKey)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list open alerts in Redis: %w", err)
	}

	alerts := make([]models.OpenAlert, 0, len(members))
	for _, m := range members {
		var a models.OpenAlert
		if err := json.Unmarshal([]byte(m), &a); err != nil {
			return nil, fmt.Errorf("failed to unmarshal open alert: %w", err)
		}
		alerts = append(alerts, a)
	}
	sort.Slice(alerts, func(i, j int) bool { return alerts[i].AlertID < alerts[j].AlertID })
	return alerts, nil
}

// Package tracker хранит наборы открытых (sticky) алертов по scope.
// Запись и снятие в одном scope упорядочены, разные scope не блокируют друг друга.
// Один алерт может лежать в нескольких scope; снятие в любом из них снимает его
// везде и учитывается ровно один раз.
package tracker

import (
	"context"
	"slices"
	"sync"

	"github.com/shenikar/crash_alert_system/internal/models"
)

type scopeSet struct {
	mu     sync.Mutex
	alerts []models.OpenAlert
}

// MemoryTracker - трекер в памяти процесса. Записи scope никогда не удаляются,
// поэтому mutex scope живет столько же, сколько процесс.
type MemoryTracker struct {
	mu     sync.RWMutex
	scopes map[string]*scopeSet

	// index: alert_id -> scope, в которых алерт еще открыт.
	// Порядок блокировок: scope, затем index.
	indexMu sync.Mutex
	index   map[string][]string
}

func NewMemoryTracker() *MemoryTracker {
	return &MemoryTracker{
		scopes: make(map[string]*scopeSet),
		index:  make(map[string][]string),
	}
}

func (t *MemoryTracker) scope(scopeKey string) *scopeSet {
	t.mu.RLock()
	set, ok := t.scopes[scopeKey]
	t.mu.RUnlock()
	if ok {
		return set
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if set, ok = t.scopes[scopeKey]; !ok {
		set = &scopeSet{}
		t.scopes[scopeKey] = set
	}
	return set
}

// RecordOpenAlert добавляет алерт в набор scope; повторная запись того же alert_id игнорируется
func (t *MemoryTracker) RecordOpenAlert(_ context.Context, scopeKey string, alert models.OpenAlert) error {
	set := t.scope(scopeKey)
	set.mu.Lock()
	defer set.mu.Unlock()

	for _, a := range set.alerts {
		if a.AlertID == alert.AlertID {
			return nil
		}
	}
	set.alerts = append(set.alerts, alert)

	t.indexMu.Lock()
	t.index[alert.AlertID] = append(t.index[alert.AlertID], scopeKey)
	t.indexMu.Unlock()
	return nil
}

// RetractAll очищает набор и убирает те же алерты из соседних scope.
// Возвращает число алертов, которые были сняты именно этим вызовом.
func (t *MemoryTracker) RetractAll(_ context.Context, scopeKey string) (int, error) {
	set := t.scope(scopeKey)
	set.mu.Lock()
	alerts := set.alerts
	set.alerts = nil

	n := 0
	siblings := make(map[string][]string)
	t.indexMu.Lock()
	for _, a := range alerts {
		scopes, ok := t.index[a.AlertID]
		if !ok {
			// уже снят через другой scope
			continue
		}
		delete(t.index, a.AlertID)
		n++
		for _, sc := range scopes {
			if sc != scopeKey {
				siblings[sc] = append(siblings[sc], a.AlertID)
			}
		}
	}
	t.indexMu.Unlock()
	set.mu.Unlock()

	for sc, ids := range siblings {
		t.scope(sc).remove(ids)
	}
	return n, nil
}

func (s *scopeSet) remove(alertIDs []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.alerts[:0]
	for _, a := range s.alerts {
		if !slices.Contains(alertIDs, a.AlertID) {
			kept = append(kept, a)
		}
	}
	s.alerts = kept
}

func (t *MemoryTracker) HasOpenAlerts(ctx context.Context, scopeKey string) (bool, error) {
	n, err := t.OpenAlertCount(ctx, scopeKey)
	return n > 0, err
}

func (t *MemoryTracker) OpenAlertCount(_ context.Context, scopeKey string) (int, error) {
	set := t.scope(scopeKey)
	set.mu.Lock()
	defer set.mu.Unlock()

	return len(set.alerts), nil
}

func (t *MemoryTracker) OpenAlerts(_ context.Context, scopeKey string) ([]models.OpenAlert, error) {
	set := t.scope(scopeKey)
	set.mu.Lock()
	defer set.mu.Unlock()

	return append([]models.OpenAlert{}, set.alerts...), nil
}

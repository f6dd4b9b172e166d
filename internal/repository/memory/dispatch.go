package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/shenikar/crash_alert_system/internal/models"
)

type DispatchStore struct {
	mu       sync.Mutex
	attempts map[string]*models.DispatchAttempt
}

func NewDispatchStore() *DispatchStore {
	return &DispatchStore{attempts: make(map[string]*models.DispatchAttempt)}
}

func (s *DispatchStore) CreateAttempt(_ context.Context, a *models.DispatchAttempt) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.attempts[a.AlertID]; ok {
		return fmt.Errorf("dispatch attempt %s already exists", a.AlertID)
	}
	c := *a
	s.attempts[a.AlertID] = &c
	return nil
}

func (s *DispatchStore) FinishAttempt(_ context.Context, a *models.DispatchAttempt) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.attempts[a.AlertID]
	if !ok || stored.State != models.AttemptPending {
		return nil
	}
	stored.State = a.State
	stored.Attempts = a.Attempts
	stored.DeliveredAt = a.DeliveredAt
	stored.FailureReason = a.FailureReason
	return nil
}

func (s *DispatchStore) FailStalePending(_ context.Context, olderThan time.Time, reason string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for _, a := range s.attempts {
		if a.State == models.AttemptPending && a.CreatedAt.Before(olderThan) {
			a.State = models.AttemptFailed
			a.FailureReason = reason
			n++
		}
	}
	return n, nil
}

func (s *DispatchStore) ListByIncident(_ context.Context, incidentID string) ([]*models.DispatchAttempt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*models.DispatchAttempt, 0)
	for _, a := range s.attempts {
		if a.IncidentID == incidentID {
			c := *a
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

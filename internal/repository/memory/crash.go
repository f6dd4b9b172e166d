// Package memory содержит хранилища в памяти процесса. Каждое хранилище -
// единственный писатель под своим mutex, поэтому транзакционные операции
// атомарны в пределах процесса. Используется для локального запуска и тестов.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/shenikar/crash_alert_system/internal/models"
)

type CrashStore struct {
	mu      sync.Mutex
	records map[string]*models.CrashRecord
}

func NewCrashStore() *CrashStore {
	return &CrashStore{records: make(map[string]*models.CrashRecord)}
}

func (s *CrashStore) GetByIncidentID(_ context.Context, incidentID string) (*models.CrashRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.records[incidentID]
	if !ok {
		return nil, fmt.Errorf("incident %s: %w", incidentID, models.ErrIncidentNotFound)
	}
	return cloneRecord(record), nil
}

func (s *CrashStore) CreateOrMerge(_ context.Context, record *models.CrashRecord) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.records[record.IncidentID]; ok {
		existing.DuplicateReports = append(existing.DuplicateReports, models.DuplicateReport{
			ReporterID: record.FirstReporterID,
			ReportedAt: record.ReportedAt,
			Location:   record.Location,
		})
		return false, nil
	}
	s.records[record.IncidentID] = cloneRecord(record)
	return true, nil
}

func (s *CrashStore) AppendDuplicate(_ context.Context, incidentID string, dup models.DuplicateReport) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.records[incidentID]
	if !ok {
		return false, nil
	}
	record.DuplicateReports = append(record.DuplicateReports, dup)
	return true, nil
}

func (s *CrashStore) TransitionState(_ context.Context, incidentID string, from, to models.ProcessingState, at time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.records[incidentID]
	if !ok {
		return false, fmt.Errorf("incident %s: %w", incidentID, models.ErrIncidentNotFound)
	}
	if record.ProcessingState != from || !from.CanTransitionTo(to) {
		return false, nil
	}

	record.ProcessingState = to
	switch to {
	case models.StateClaimed:
		record.ProcessingClaimedAt = &at
	case models.StateCompleted:
		record.CompletedAt = &at
	}
	return true, nil
}

func (s *CrashStore) ListByState(_ context.Context, state models.ProcessingState) ([]*models.CrashRecord, error) {
	out := s.filter(func(r *models.CrashRecord) bool { return r.ProcessingState == state })
	sort.Slice(out, func(i, j int) bool { return out[i].ReportedAt.Before(out[j].ReportedAt) })
	return out, nil
}

func (s *CrashStore) ListByVictim(_ context.Context, victimUserID string) ([]*models.CrashRecord, error) {
	out := s.filter(func(r *models.CrashRecord) bool { return r.VictimUserID == victimUserID })
	sort.Slice(out, func(i, j int) bool { return out[i].ReportedAt.After(out[j].ReportedAt) })
	return out, nil
}

func (s *CrashStore) filter(keep func(*models.CrashRecord) bool) []*models.CrashRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*models.CrashRecord, 0)
	for _, r := range s.records {
		if keep(r) {
			out = append(out, cloneRecord(r))
		}
	}
	return out
}

func cloneRecord(r *models.CrashRecord) *models.CrashRecord {
	c := *r
	c.DuplicateReports = append([]models.DuplicateReport{}, r.DuplicateReports...)
	if r.ProcessingClaimedAt != nil {
		t := *r.ProcessingClaimedAt
		c.ProcessingClaimedAt = &t
	}
	if r.CompletedAt != nil {
		t := *r.CompletedAt
		c.CompletedAt = &t
	}
	return &c
}

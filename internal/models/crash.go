package models

import (
	"time"
)

// ProcessingState - состояние обработки инцидента, меняется только вперед
type ProcessingState string

const (
	StateUnclaimed ProcessingState = "unclaimed"
	StateClaimed   ProcessingState = "claimed"
	StateCompleted ProcessingState = "completed"
)

// CanTransitionTo сообщает, допустим ли переход из текущего состояния
func (s ProcessingState) CanTransitionTo(next ProcessingState) bool {
	switch s {
	case StateUnclaimed:
		return next == StateClaimed
	case StateClaimed:
		return next == StateCompleted
	}
	return false
}

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Valid проверяет диапазоны координат
func (l Location) Valid() bool {
	return l.Latitude >= -90 && l.Latitude <= 90 && l.Longitude >= -180 && l.Longitude <= 180
}

// DuplicateReport - повторное сообщение о том же инциденте от другого (или того же) репортера
type DuplicateReport struct {
	ReporterID string    `json:"reporter_id"`
	ReportedAt time.Time `json:"reported_at"`
	Location   Location  `json:"location"`
}

// CrashRecord - каноническая запись об аварии, одна на incident_id
type CrashRecord struct {
	IncidentID          string            `json:"incident_id"`
	FirstReporterID     string            `json:"first_reporter_id"`
	VictimUserID        string            `json:"victim_user_id"`
	Location            Location          `json:"location"`
	ReportedAt          time.Time         `json:"reported_at"`
	ProcessingState     ProcessingState   `json:"processing_state"`
	ProcessingClaimedAt *time.Time        `json:"processing_claimed_at,omitempty"`
	CompletedAt         *time.Time        `json:"completed_at,omitempty"`
	DuplicateReports    []DuplicateReport `json:"duplicate_reports"`
}

// CrashReport - входящее сообщение об аварии от устройства
type CrashReport struct {
	IncidentID   string
	ReporterID   string
	VictimUserID string
	Location     Location
	ReportedAt   time.Time
}

// Validate проверяет обязательные поля до обращения к хранилищу
func (r CrashReport) Validate() error {
	switch {
	case r.IncidentID == "":
		return invalid("incident_id is required")
	case r.ReporterID == "":
		return invalid("reporter_id is required")
	case r.VictimUserID == "":
		return invalid("victim_user_id is required")
	case !r.Location.Valid():
		return invalid("coordinates out of range")
	}
	return nil
}

// NewCrashRecord создает запись из первого сообщения
func NewCrashRecord(r CrashReport) *CrashRecord {
	return &CrashRecord{
		IncidentID:       r.IncidentID,
		FirstReporterID:  r.ReporterID,
		VictimUserID:     r.VictimUserID,
		Location:         r.Location,
		ReportedAt:       r.ReportedAt,
		ProcessingState:  StateUnclaimed,
		DuplicateReports: []DuplicateReport{},
	}
}

// AsDuplicate превращает сообщение в запись о дубликате
func (r CrashReport) AsDuplicate() DuplicateReport {
	return DuplicateReport{
		ReporterID: r.ReporterID,
		ReportedAt: r.ReportedAt,
		Location:   r.Location,
	}
}

// ReportResult - ответ репортеру: новый инцидент или дубликат
type ReportResult struct {
	IsNewIncident bool `json:"is_new_incident"`
}

// ClaimResult - результат попытки захвата инцидента на обработку
type ClaimResult struct {
	Claimed bool `json:"claimed"`
}

// CompleteResult - результат перевода claimed -> completed
type CompleteResult struct {
	Completed bool `json:"completed"`
}

// IncidentStats - агрегаты по сообщениям об инциденте
type IncidentStats struct {
	IncidentID        string          `json:"incident_id"`
	ReportCount       int             `json:"report_count"`
	DistinctReporters int             `json:"distinct_reporters"`
	FirstReportAt     time.Time       `json:"first_report_at"`
	LastReportAt      time.Time       `json:"last_report_at"`
	ProcessingState   ProcessingState `json:"processing_state"`
}

// Stats считает агрегаты по записи
func (c *CrashRecord) Stats() IncidentStats {
	stats := IncidentStats{
		IncidentID:      c.IncidentID,
		ReportCount:     1 + len(c.DuplicateReports),
		FirstReportAt:   c.ReportedAt,
		LastReportAt:    c.ReportedAt,
		ProcessingState: c.ProcessingState,
	}
	reporters := map[string]struct{}{c.FirstReporterID: {}}
	for _, d := range c.DuplicateReports {
		reporters[d.ReporterID] = struct{}{}
		if d.ReportedAt.Before(stats.FirstReportAt) {
			stats.FirstReportAt = d.ReportedAt
		}
		if d.ReportedAt.After(stats.LastReportAt) {
			stats.LastReportAt = d.ReportedAt
		}
	}
	stats.DistinctReporters = len(reporters)
	return stats
}

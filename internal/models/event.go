package models

import "time"

type EventType string

const (
	EventIncidentReported  EventType = "incident.reported"
	EventIncidentClaimed   EventType = "incident.claimed"
	EventIncidentCompleted EventType = "incident.completed"
	EventAlertsRetracted   EventType = "alerts.retracted"
)

// Event - событие жизненного цикла для внешних потребителей (аудит, аналитика)
type Event struct {
	Type         EventType     `json:"type"`
	IncidentID   string        `json:"incident_id,omitempty"`
	VictimUserID string        `json:"victim_user_id,omitempty"`
	ScopeKey     string        `json:"scope_key,omitempty"`
	Reason       RetractReason `json:"reason,omitempty"`
	Count        int           `json:"count,omitempty"`
	OccurredAt   time.Time     `json:"occurred_at"`
}

// Key - ключ партиционирования: события одного инцидента/scope идут по порядку
func (e Event) Key() string {
	if e.IncidentID != "" {
		return e.IncidentID
	}
	return e.ScopeKey
}

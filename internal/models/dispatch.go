package models

import "time"

type AttemptState string

const (
	AttemptPending   AttemptState = "pending"
	AttemptDelivered AttemptState = "delivered"
	AttemptFailed    AttemptState = "failed"
)

// DispatchAttempt - одна попытка доставки алерта на одно устройство.
// После delivered/failed запись не меняется.
type DispatchAttempt struct {
	AlertID         string       `json:"alert_id"`
	IncidentID      string       `json:"incident_id"`
	RecipientUserID string       `json:"recipient_user_id"`
	TargetDeviceID  string       `json:"target_device_id"`
	State           AttemptState `json:"state"`
	Attempts        int          `json:"attempts"`
	DeliveredAt     *time.Time   `json:"delivered_at,omitempty"`
	FailureReason   string       `json:"failure_reason,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
}

// AlertPayload - содержимое алерта; диспетчер читает из него только IncidentID
type AlertPayload struct {
	IncidentID   string   `json:"incident_id"`
	VictimUserID string   `json:"victim_user_id"`
	Title        string   `json:"title"`
	Body         string   `json:"body"`
	Location     Location `json:"location"`
	Sticky       bool     `json:"sticky"`
}

type DispatchOutcome string

const (
	OutcomeDelivered       DispatchOutcome = "delivered"
	OutcomePartial         DispatchOutcome = "partial"
	OutcomeAllFailed       DispatchOutcome = "all_failed"
	OutcomeNoActiveDevices DispatchOutcome = "no_active_devices"
)

// DeviceDelivery - итог доставки на конкретное устройство
type DeviceDelivery struct {
	DeviceID string       `json:"device_id"`
	AlertID  string       `json:"alert_id"`
	State    AttemptState `json:"state"`
	Error    string       `json:"error,omitempty"`
}

// DispatchReport - агрегированный результат рассылки пользователю
type DispatchReport struct {
	UserID          string            `json:"user_id"`
	Outcome         DispatchOutcome   `json:"outcome"`
	Attempted       int               `json:"attempted"`
	Delivered       int               `json:"delivered"`
	Failed          int               `json:"failed"`
	PerDeviceErrors map[string]string `json:"per_device_errors,omitempty"`
	Deliveries      []DeviceDelivery  `json:"deliveries"`
}

// Success - доставлено хотя бы на одно устройство
func (r *DispatchReport) Success() bool {
	return r.Delivered >= 1
}

// DeliveredAlertIDs возвращает идентификаторы доставленных алертов
func (r *DispatchReport) DeliveredAlertIDs() []string {
	ids := make([]string, 0, r.Delivered)
	for _, d := range r.Deliveries {
		if d.State == AttemptDelivered {
			ids = append(ids, d.AlertID)
		}
	}
	return ids
}

// Finalize считает итоговый outcome по счетчикам
func (r *DispatchReport) Finalize() {
	switch {
	case r.Attempted == 0:
		r.Outcome = OutcomeNoActiveDevices
	case r.Failed == 0:
		r.Outcome = OutcomeDelivered
	case r.Delivered == 0:
		r.Outcome = OutcomeAllFailed
	default:
		r.Outcome = OutcomePartial
	}
}

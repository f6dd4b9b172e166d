package v1

import "time"

// ReportCrashRequest DTO сообщения об аварии от устройства
// @Description DTO сообщения об аварии от устройства
type ReportCrashRequest struct {
	IncidentID   string     `json:"incident_id" validate:"required,max=128"`
	ReporterID   string     `json:"reporter_id" validate:"required,max=128"`
	VictimUserID string     `json:"victim_user_id" validate:"required,max=128"`
	Latitude     *float64   `json:"latitude" validate:"required,latitude"`
	Longitude    *float64   `json:"longitude" validate:"required,longitude"`
	ReportedAt   *time.Time `json:"reported_at,omitempty"`
}

// ReportCrashResponse DTO ответа репортеру
// @Description DTO ответа репортеру
type ReportCrashResponse struct {
	IsNewIncident bool `json:"is_new_incident"`
}

// DuplicateReportResponse DTO повторного сообщения
type DuplicateReportResponse struct {
	ReporterID string    `json:"reporter_id"`
	ReportedAt time.Time `json:"reported_at"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
}

// CrashResponse DTO записи об аварии
// @Description DTO записи об аварии
type CrashResponse struct {
	IncidentID          string                    `json:"incident_id"`
	FirstReporterID     string                    `json:"first_reporter_id"`
	VictimUserID        string                    `json:"victim_user_id"`
	Latitude            float64                   `json:"latitude"`
	Longitude           float64                   `json:"longitude"`
	ReportedAt          time.Time                 `json:"reported_at"`
	ProcessingState     string                    `json:"processing_state"`
	ProcessingClaimedAt *time.Time                `json:"processing_claimed_at,omitempty"`
	CompletedAt         *time.Time                `json:"completed_at,omitempty"`
	DuplicateReports    []DuplicateReportResponse `json:"duplicate_reports"`
}

// StatsResponse DTO агрегатов по инциденту
// @Description DTO агрегатов по инциденту
type StatsResponse struct {
	IncidentID        string    `json:"incident_id"`
	ReportCount       int       `json:"report_count"`
	DistinctReporters int       `json:"distinct_reporters"`
	FirstReportAt     time.Time `json:"first_report_at"`
	LastReportAt      time.Time `json:"last_report_at"`
	ProcessingState   string    `json:"processing_state"`
}

type ClaimResponse struct {
	Claimed bool `json:"claimed"`
}

type CompleteResponse struct {
	Completed bool `json:"completed"`
}

// AttemptResponse DTO попытки доставки
// @Description DTO попытки доставки
type AttemptResponse struct {
	AlertID         string     `json:"alert_id"`
	IncidentID      string     `json:"incident_id"`
	RecipientUserID string     `json:"recipient_user_id"`
	TargetDeviceID  string     `json:"target_device_id"`
	State           string     `json:"state"`
	Attempts        int        `json:"attempts"`
	DeliveredAt     *time.Time `json:"delivered_at,omitempty"`
	FailureReason   string     `json:"failure_reason,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// RegisterDeviceRequest DTO регистрации устройства или обновления токена
// @Description DTO регистрации устройства или обновления токена
type RegisterDeviceRequest struct {
	UserID          string `json:"user_id" validate:"required,max=128"`
	DeviceID        string `json:"device_id" validate:"required,max=128"`
	DeliveryAddress string `json:"delivery_address" validate:"required,max=4096"`
}

// DeviceResponse DTO устройства пользователя
// @Description DTO устройства пользователя
type DeviceResponse struct {
	UserID          string    `json:"user_id"`
	DeviceID        string    `json:"device_id"`
	DeliveryAddress string    `json:"delivery_address"`
	IsPrimary       bool      `json:"is_primary"`
	IsActive        bool      `json:"is_active"`
	LastActiveAt    time.Time `json:"last_active_at"`
	CreatedAt       time.Time `json:"created_at"`
}

// RetractRequest DTO снятия открытых алертов
// @Description DTO снятия открытых алертов
type RetractRequest struct {
	ScopeKey string `json:"scope_key" validate:"required,max=256"`
	Reason   string `json:"reason" validate:"required,oneof=app_opened help_confirmed"`
}

type RetractResponse struct {
	ScopeKey       string `json:"scope_key"`
	Reason         string `json:"reason"`
	RetractedCount int    `json:"retracted_count"`
}

type OpenAlertResponse struct {
	AlertID    string `json:"alert_id"`
	IncidentID string `json:"incident_id"`
}

// OpenAlertsResponse DTO открытых алертов scope
// @Description DTO открытых алертов scope
type OpenAlertsResponse struct {
	ScopeKey  string              `json:"scope_key"`
	OpenCount int                 `json:"open_count"`
	Alerts    []OpenAlertResponse `json:"alerts"`
}

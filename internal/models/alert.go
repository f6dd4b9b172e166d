package models

type RetractReason string

const (
	RetractAppOpened     RetractReason = "app_opened"
	RetractHelpConfirmed RetractReason = "help_confirmed"
)

func (r RetractReason) Valid() bool {
	return r == RetractAppOpened || r == RetractHelpConfirmed
}

// OpenAlert - еще не снятый (sticky) алерт в наборе scope
type OpenAlert struct {
	AlertID    string `json:"alert_id"`
	IncidentID string `json:"incident_id"`
}

// RetractResult - сколько алертов было снято; 0 для пустого набора
type RetractResult struct {
	ScopeKey       string        `json:"scope_key"`
	Reason         RetractReason `json:"reason"`
	RetractedCount int           `json:"retracted_count"`
}

// VictimScope - ключ scope для алертов, отправленных по инциденту пострадавшего.
// Для получателя scope - это его user_id.
func VictimScope(victimUserID string) string {
	return "victim:" + victimUserID
}

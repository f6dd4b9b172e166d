package v1

import "github.com/shenikar/crash_alert_system/internal/models"

// DTOToCrashReport преобразует провалидированный DTO в доменное сообщение; пустое reported_at заполнит сервис
func DTOToCrashReport(dto ReportCrashRequest) models.CrashReport {
	report := models.CrashReport{
		IncidentID:   dto.IncidentID,
		ReporterID:   dto.ReporterID,
		VictimUserID: dto.VictimUserID,
	}
	if dto.Latitude != nil && dto.Longitude != nil {
		report.Location = models.Location{Latitude: *dto.Latitude, Longitude: *dto.Longitude}
	}
	if dto.ReportedAt != nil {
		report.ReportedAt = dto.ReportedAt.UTC()
	}
	return report
}

// ModelToCrashResponse преобразует доменную модель в DTO для ответа
func ModelToCrashResponse(model *models.CrashRecord) *CrashResponse {
	dups := make([]DuplicateReportResponse, len(model.DuplicateReports))
	for i, d := range model.DuplicateReports {
		dups[i] = DuplicateReportResponse{
			ReporterID: d.ReporterID,
			ReportedAt: d.ReportedAt,
			Latitude:   d.Location.Latitude,
			Longitude:  d.Location.Longitude,
		}
	}
	return &CrashResponse{
		IncidentID:          model.IncidentID,
		FirstReporterID:     model.FirstReporterID,
		VictimUserID:        model.VictimUserID,
		Latitude:            model.Location.Latitude,
		Longitude:           model.Location.Longitude,
		ReportedAt:          model.ReportedAt,
		ProcessingState:     string(model.ProcessingState),
		ProcessingClaimedAt: model.ProcessingClaimedAt,
		CompletedAt:         model.CompletedAt,
		DuplicateReports:    dups,
	}
}

// ModelsToCrashResponses преобразует слайс моделей в слайс DTO
func ModelsToCrashResponses(records []*models.CrashRecord) []*CrashResponse {
	responses := make([]*CrashResponse, len(records))
	for i, r := range records {
		responses[i] = ModelToCrashResponse(r)
	}
	return responses
}

func ModelToStatsResponse(stats *models.IncidentStats) StatsResponse {
	return StatsResponse{
		IncidentID:        stats.IncidentID,
		ReportCount:       stats.ReportCount,
		DistinctReporters: stats.DistinctReporters,
		FirstReportAt:     stats.FirstReportAt,
		LastReportAt:      stats.LastReportAt,
		ProcessingState:   string(stats.ProcessingState),
	}
}

func ModelsToAttemptResponses(attempts []*models.DispatchAttempt) []AttemptResponse {
	responses := make([]AttemptResponse, len(attempts))
	for i, a := range attempts {
		responses[i] = AttemptResponse{
			AlertID:         a.AlertID,
			IncidentID:      a.IncidentID,
			RecipientUserID: a.RecipientUserID,
			TargetDeviceID:  a.TargetDeviceID,
			State:           string(a.State),
			Attempts:        a.Attempts,
			DeliveredAt:     a.DeliveredAt,
			FailureReason:   a.FailureReason,
			CreatedAt:       a.CreatedAt,
		}
	}
	return responses
}

func ModelToDeviceResponse(model *models.DeviceEntry) *DeviceResponse {
	return &DeviceResponse{
		UserID:          model.UserID,
		DeviceID:        model.DeviceID,
		DeliveryAddress: model.DeliveryAddress,
		IsPrimary:       model.IsPrimary,
		IsActive:        model.IsActive,
		LastActiveAt:    model.LastActiveAt,
		CreatedAt:       model.CreatedAt,
	}
}

func ModelsToDeviceResponses(devices []*models.DeviceEntry) []*DeviceResponse {
	responses := make([]*DeviceResponse, len(devices))
	for i, d := range devices {
		responses[i] = ModelToDeviceResponse(d)
	}
	return responses
}

func ModelToOpenAlertsResponse(scopeKey string, alerts []models.OpenAlert) OpenAlertsResponse {
	out := OpenAlertsResponse{
		ScopeKey:  scopeKey,
		OpenCount: len(alerts),
		Alerts:    make([]OpenAlertResponse, len(alerts)),
	}
	for i, a := range alerts {
		out.Alerts[i] = OpenAlertResponse{AlertID: a.AlertID, IncidentID: a.IncidentID}
	}
	return out
}

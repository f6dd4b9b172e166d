package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/crash_alert_system/internal/config"
	"github.com/shenikar/crash_alert_system/internal/models"
	"github.com/shenikar/crash_alert_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type handlerMocks struct {
	crash      *mocks.MockCrashService
	device     *mocks.MockDeviceService
	dispatch   *mocks.MockDispatchService
	retraction *mocks.MockRetractionService
}

var authHeader = map[string]string{"X-API-Key": "test-api-key"}

// newTestHandler создает новый экземпляр Handler с мокированными сервисами
func newTestHandler(t *testing.T) (*Handler, handlerMocks, *gin.Engine) {
	ctrl := gomock.NewController(t)
	m := handlerMocks{
		crash:      mocks.NewMockCrashService(ctrl),
		device:     mocks.NewMockDeviceService(ctrl),
		dispatch:   mocks.NewMockDispatchService(ctrl),
		retraction: mocks.NewMockRetractionService(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys: []string{"test-api-key"},
	}

	handler := NewHandler(m.crash, m.device, m.dispatch, m.retraction, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, m, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func ptr(v float64) *float64 {
	return &v
}

func validCrashRequest() ReportCrashRequest {
	return ReportCrashRequest{
		IncidentID:   "X1",
		ReporterID:   "A",
		VictimUserID: "U1",
		Latitude:     ptr(55.75),
		Longitude:    ptr(37.61),
	}
}

func TestAuth_MissingAndInvalidKey(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.crash.EXPECT().GetIncident(gomock.Any(), gomock.Any()).Times(0)

	missing := makeRequest(router, "GET", "/api/v1/crashes/X1", nil)
	invalid := makeRequest(router, "GET", "/api/v1/crashes/X1", nil, map[string]string{"X-API-Key": "wrong"})

	assert.Equal(t, http.StatusUnauthorized, missing.Code)
	assert.Contains(t, missing.Body.String(), "API key required")
	assert.Equal(t, http.StatusUnauthorized, invalid.Code)
	assert.Contains(t, invalid.Body.String(), "Invalid API key")
}

func TestAuth_BearerToken(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.crash.EXPECT().GetUnprocessedIncidents(gomock.Any()).Return([]*models.CrashRecord{}, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/crashes/unprocessed", nil, map[string]string{"Authorization": "Bearer test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHealthCheck_NoAuth(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestReportCrash_NewIncident(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := validCrashRequest()

	m.crash.EXPECT().
		ReportCrash(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, report models.CrashReport) (models.ReportResult, error) {
			assert.Equal(t, "X1", report.IncidentID)
			assert.Equal(t, "A", report.ReporterID)
			assert.Equal(t, 55.75, report.Location.Latitude)
			assert.True(t, report.ReportedAt.IsZero())
			return models.ReportResult{IsNewIncident: true}, nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/crashes", bytes.NewBuffer(bodyBytes), authHeader)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp ReportCrashResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.IsNewIncident)
}

func TestReportCrash_Duplicate(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := validCrashRequest()
	reportedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	reqBody.ReportedAt = &reportedAt

	m.crash.EXPECT().
		ReportCrash(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, report models.CrashReport) (models.ReportResult, error) {
			assert.Equal(t, reportedAt, report.ReportedAt)
			return models.ReportResult{IsNewIncident: false}, nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/crashes", bytes.NewBuffer(bodyBytes), authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"is_new_incident":false}`, w.Body.String())
}

func TestReportCrash_InvalidJSON(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.crash.EXPECT().ReportCrash(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", "/api/v1/crashes", bytes.NewBufferString(`{"incident_id": "X1"`), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestReportCrash_ValidationError(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *ReportCrashRequest)
		field  string
	}{
		{name: "missing incident", mutate: func(r *ReportCrashRequest) { r.IncidentID = "" }, field: "IncidentID"},
		{name: "missing victim", mutate: func(r *ReportCrashRequest) { r.VictimUserID = "" }, field: "VictimUserID"},
		{name: "latitude out of range", mutate: func(r *ReportCrashRequest) { r.Latitude = ptr(120) }, field: "Latitude"},
		{name: "longitude out of range", mutate: func(r *ReportCrashRequest) { r.Longitude = ptr(-200) }, field: "Longitude"},
		{name: "missing latitude", mutate: func(r *ReportCrashRequest) { r.Latitude = nil }, field: "Latitude"},
		{name: "missing longitude", mutate: func(r *ReportCrashRequest) { r.Longitude = nil }, field: "Longitude"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, m, router := newTestHandler(t)
			reqBody := validCrashRequest()
			tt.mutate(&reqBody)

			m.crash.EXPECT().ReportCrash(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

			bodyBytes, _ := json.Marshal(reqBody)
			w := makeRequest(router, "POST", "/api/v1/crashes", bytes.NewBuffer(bodyBytes), authHeader)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), fmt.Sprintf("Field validation for '%s' failed", tt.field))
		})
	}
}

func TestReportCrash_ExplicitZeroCoordinatesAccepted(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.crash.EXPECT().
		ReportCrash(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, report models.CrashReport) (models.ReportResult, error) {
			assert.Equal(t, models.Location{}, report.Location)
			return models.ReportResult{IsNewIncident: true}, nil
		}).Times(1)

	body := `{"incident_id":"X1","reporter_id":"A","victim_user_id":"U1","latitude":0,"longitude":0}`
	w := makeRequest(router, "POST", "/api/v1/crashes", bytes.NewBufferString(body), authHeader)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestReportCrash_ServiceError(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.crash.EXPECT().ReportCrash(gomock.Any(), gomock.Any()).Return(models.ReportResult{}, errors.New("db down")).Times(1)

	bodyBytes, _ := json.Marshal(validCrashRequest())
	w := makeRequest(router, "POST", "/api/v1/crashes", bytes.NewBuffer(bodyBytes), authHeader)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestGetIncident_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	reportedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	record := &models.CrashRecord{
		IncidentID:      "X1",
		FirstReporterID: "A",
		VictimUserID:    "U1",
		ReportedAt:      reportedAt,
		ProcessingState: models.StateUnclaimed,
		DuplicateReports: []models.DuplicateReport{
			{ReporterID: "B", ReportedAt: reportedAt.Add(time.Second)},
		},
	}

	m.crash.EXPECT().GetIncident(gomock.Any(), "X1").Return(record, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/crashes/X1", nil, authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp CrashResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "A", resp.FirstReporterID)
	assert.Equal(t, "unclaimed", resp.ProcessingState)
	require.Len(t, resp.DuplicateReports, 1)
	assert.Equal(t, "B", resp.DuplicateReports[0].ReporterID)
}

func TestGetIncident_NotFound(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.crash.EXPECT().
		GetIncident(gomock.Any(), "missing").
		Return(nil, fmt.Errorf("service: could not get incident: %w", models.ErrIncidentNotFound)).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/crashes/missing", nil, authHeader)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "incident not found")
}

func TestGetStats_Success(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.crash.EXPECT().GetStats(gomock.Any(), "X1").Return(&models.IncidentStats{
		IncidentID:        "X1",
		ReportCount:       3,
		DistinctReporters: 2,
		ProcessingState:   models.StateClaimed,
	}, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/crashes/X1/stats", nil, authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp StatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.ReportCount)
	assert.Equal(t, 2, resp.DistinctReporters)
	assert.Equal(t, "claimed", resp.ProcessingState)
}

func TestClaimIncident(t *testing.T) {
	h, m, router := newTestHandler(t)
	hook := logtest.NewLocal(h.logger)

	gomock.InOrder(
		m.crash.EXPECT().ClaimForProcessing(gomock.Any(), "X1").Return(models.ClaimResult{Claimed: true}, nil),
		m.crash.EXPECT().ClaimForProcessing(gomock.Any(), "X1").Return(models.ClaimResult{Claimed: false}, nil),
	)

	first := makeRequest(router, "POST", "/api/v1/crashes/X1/claim", nil, authHeader)
	second := makeRequest(router, "POST", "/api/v1/crashes/X1/claim", nil, authHeader)

	assert.Equal(t, http.StatusOK, first.Code)
	assert.JSONEq(t, `{"claimed":true}`, first.Body.String())
	assert.Equal(t, http.StatusOK, second.Code)
	assert.JSONEq(t, `{"claimed":false}`, second.Body.String())

	// Только успешный ручной claim предупреждает, что рассылки не будет
	warnings := 0
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel && e.Message == "Incident claimed manually, automatic dispatch suppressed" {
			warnings++
		}
	}
	assert.Equal(t, 1, warnings)
}

func TestCompleteIncident_NotFound(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.crash.EXPECT().MarkCompleted(gomock.Any(), "X9").Return(models.CompleteResult{}, models.ErrIncidentNotFound).Times(1)

	w := makeRequest(router, "POST", "/api/v1/crashes/X9/complete", nil, authHeader)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListAttempts_Success(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.dispatch.EXPECT().ListAttempts(gomock.Any(), "X1").Return([]*models.DispatchAttempt{
		{AlertID: "a1", IncidentID: "X1", TargetDeviceID: "D1", State: models.AttemptDelivered, Attempts: 1},
		{AlertID: "a2", IncidentID: "X1", TargetDeviceID: "D2", State: models.AttemptFailed, Attempts: 3, FailureReason: "token revoked"},
	}, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/crashes/X1/attempts", nil, authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []AttemptResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "failed", resp[1].State)
	assert.Equal(t, "token revoked", resp[1].FailureReason)
}

func TestListVictimIncidents_Success(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.crash.EXPECT().GetIncidentsForVictim(gomock.Any(), "U1").Return([]*models.CrashRecord{
		{IncidentID: "X2", VictimUserID: "U1", ProcessingState: models.StateCompleted},
		{IncidentID: "X1", VictimUserID: "U1", ProcessingState: models.StateCompleted},
	}, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/victims/U1/crashes", nil, authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []CrashResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestRegisterDevice_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := RegisterDeviceRequest{UserID: "U1", DeviceID: "D1", DeliveryAddress: "tok-1"}

	m.device.EXPECT().
		RegisterDevice(gomock.Any(), "U1", "D1", "tok-1").
		Return(&models.DeviceEntry{UserID: "U1", DeviceID: "D1", DeliveryAddress: "tok-1", IsActive: true, IsPrimary: true}, nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/devices", bytes.NewBuffer(bodyBytes), authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp DeviceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.IsPrimary)
}

func TestRegisterDevice_ValidationError(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.device.EXPECT().RegisterDevice(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	bodyBytes, _ := json.Marshal(RegisterDeviceRequest{UserID: "U1", DeviceID: "D1"})
	w := makeRequest(router, "POST", "/api/v1/devices", bytes.NewBuffer(bodyBytes), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'DeliveryAddress' failed on the 'required' tag")
}

func TestSetPrimaryDevice(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.device.EXPECT().SetPrimary(gomock.Any(), "U1", "D2").Return(nil).Times(1)
	m.device.EXPECT().SetPrimary(gomock.Any(), "U1", "D9").Return(models.ErrDeviceNotFound).Times(1)

	ok := makeRequest(router, "PUT", "/api/v1/users/U1/devices/D2/primary", nil, authHeader)
	missing := makeRequest(router, "PUT", "/api/v1/users/U1/devices/D9/primary", nil, authHeader)

	assert.Equal(t, http.StatusNoContent, ok.Code)
	assert.Equal(t, http.StatusNotFound, missing.Code)
	assert.Contains(t, missing.Body.String(), "device not found")
}

func TestDeactivateDevice_Success(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.device.EXPECT().DeactivateDevice(gomock.Any(), "U1", "D1").Return(nil).Times(1)

	w := makeRequest(router, "DELETE", "/api/v1/users/U1/devices/D1", nil, authHeader)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestGetPrimaryDevice(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.device.EXPECT().GetPrimary(gomock.Any(), "U1").Return(&models.DeviceEntry{UserID: "U1", DeviceID: "D1", IsPrimary: true, IsActive: true}, nil).Times(1)
	m.device.EXPECT().GetPrimary(gomock.Any(), "U2").Return(nil, nil).Times(1)

	found := makeRequest(router, "GET", "/api/v1/users/U1/devices/primary", nil, authHeader)
	none := makeRequest(router, "GET", "/api/v1/users/U2/devices/primary", nil, authHeader)

	assert.Equal(t, http.StatusOK, found.Code)
	assert.Contains(t, found.Body.String(), `"device_id":"D1"`)
	assert.Equal(t, http.StatusNotFound, none.Code)
}

func TestListDevices_Success(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.device.EXPECT().GetActiveDevices(gomock.Any(), "U1").Return([]*models.DeviceEntry{
		{UserID: "U1", DeviceID: "D2", IsActive: true},
		{UserID: "U1", DeviceID: "D1", IsActive: true, IsPrimary: true},
	}, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/users/U1/devices", nil, authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []DeviceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestRetractAlerts_Success(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.retraction.EXPECT().
		Retract(gomock.Any(), "victim:U1", models.RetractHelpConfirmed).
		Return(models.RetractResult{ScopeKey: "victim:U1", Reason: models.RetractHelpConfirmed, RetractedCount: 3}, nil).
		Times(1)

	bodyBytes, _ := json.Marshal(RetractRequest{ScopeKey: "victim:U1", Reason: "help_confirmed"})
	w := makeRequest(router, "POST", "/api/v1/alerts/retract", bytes.NewBuffer(bodyBytes), authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"scope_key":"victim:U1","reason":"help_confirmed","retracted_count":3}`, w.Body.String())
}

func TestRetractAlerts_UnknownReason(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.retraction.EXPECT().Retract(gomock.Any(), gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	bodyBytes, _ := json.Marshal(RetractRequest{ScopeKey: "C1", Reason: "dismissed"})
	w := makeRequest(router, "POST", "/api/v1/alerts/retract", bytes.NewBuffer(bodyBytes), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Reason' failed on the 'oneof' tag")
}

func TestListOpenAlerts_Success(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.retraction.EXPECT().OpenAlerts(gomock.Any(), "C1").Return([]models.OpenAlert{
		{AlertID: "a1", IncidentID: "X1"},
	}, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/alerts/C1", nil, authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp OpenAlertsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.OpenCount)
	assert.Equal(t, "a1", resp.Alerts[0].AlertID)
}

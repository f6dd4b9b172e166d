package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shenikar/crash_alert_system/internal/models"
	"github.com/shenikar/crash_alert_system/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type processorMocks struct {
	crashes    *mocks.MockCrashService
	dispatcher *mocks.MockDispatchService
	contacts   *mocks.MockContactResolver
	tracker    *mocks.MockAlertTracker
}

// newTestProcessor - вспомогательная функция для создания процессора с моками.
func newTestProcessor(t *testing.T) (*IncidentProcessor, processorMocks) {
	ctrl := gomock.NewController(t)
	m := processorMocks{
		crashes:    mocks.NewMockCrashService(ctrl),
		dispatcher: mocks.NewMockDispatchService(ctrl),
		contacts:   mocks.NewMockContactResolver(ctrl),
		tracker:    mocks.NewMockAlertTracker(ctrl),
	}
	return NewIncidentProcessor(m.crashes, m.dispatcher, m.contacts, m.tracker, newTestLogger(), newTestConfig()), m
}

func TestProcess_NotClaimedDoesNothing(t *testing.T) {
	// Подготовка
	processor, m := newTestProcessor(t)
	ctx := context.Background()

	// Ожидания: никакой рассылки без успешного claim
	m.crashes.EXPECT().GetIncident(ctx, "X1").Return(models.NewCrashRecord(testReport("A")), nil).Times(1)
	m.crashes.EXPECT().ClaimForProcessing(ctx, "X1").Return(models.ClaimResult{Claimed: false}, nil).Times(1)

	// Действие
	err := processor.Process(ctx, "X1")

	// Проверки
	require.NoError(t, err)
}

func TestProcess_FansOutAndTracksDelivered(t *testing.T) {
	// Подготовка
	processor, m := newTestProcessor(t)
	ctx := context.Background()
	record := models.NewCrashRecord(testReport("A"))

	// Ожидания
	m.crashes.EXPECT().GetIncident(ctx, "X1").Return(record, nil).Times(1)
	m.crashes.EXPECT().ClaimForProcessing(ctx, "X1").Return(models.ClaimResult{Claimed: true}, nil).Times(1)
	m.contacts.EXPECT().ResolveContacts(gomock.Any(), "U1").Return([]string{"C1", "C2"}, nil).Times(1)
	m.dispatcher.EXPECT().
		DispatchToUser(ctx, "C1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, payload models.AlertPayload) (*models.DispatchReport, error) {
			assert.Equal(t, "X1", payload.IncidentID)
			assert.True(t, payload.Sticky)
			return &models.DispatchReport{
				UserID: "C1", Outcome: models.OutcomeDelivered, Attempted: 1, Delivered: 1,
				Deliveries: []models.DeviceDelivery{{DeviceID: "D1", AlertID: "a1", State: models.AttemptDelivered}},
			}, nil
		}).
		Times(1)
	m.dispatcher.EXPECT().
		DispatchToUser(ctx, "C2", gomock.Any()).
		Return(&models.DispatchReport{UserID: "C2", Outcome: models.OutcomeNoActiveDevices}, nil).
		Times(1)
	alert := models.OpenAlert{AlertID: "a1", IncidentID: "X1"}
	m.tracker.EXPECT().RecordOpenAlert(ctx, "C1", alert).Return(nil).Times(1)
	m.tracker.EXPECT().RecordOpenAlert(ctx, "victim:U1", alert).Return(nil).Times(1)
	m.crashes.EXPECT().MarkCompleted(ctx, "X1").Return(models.CompleteResult{Completed: true}, nil).Times(1)

	// Действие
	err := processor.Process(ctx, "X1")

	// Проверки
	require.NoError(t, err)
}

func TestProcess_DispatchErrorDoesNotStopOtherContacts(t *testing.T) {
	// Подготовка
	processor, m := newTestProcessor(t)
	ctx := context.Background()
	record := models.NewCrashRecord(testReport("A"))

	// Ожидания
	m.crashes.EXPECT().GetIncident(ctx, "X1").Return(record, nil).Times(1)
	m.crashes.EXPECT().ClaimForProcessing(ctx, "X1").Return(models.ClaimResult{Claimed: true}, nil).Times(1)
	m.contacts.EXPECT().ResolveContacts(gomock.Any(), "U1").Return([]string{"C1", "C2"}, nil).Times(1)
	m.dispatcher.EXPECT().DispatchToUser(ctx, "C1", gomock.Any()).Return(nil, errors.New("db down")).Times(1)
	m.dispatcher.EXPECT().
		DispatchToUser(ctx, "C2", gomock.Any()).
		Return(&models.DispatchReport{UserID: "C2", Outcome: models.OutcomeAllFailed, Attempted: 1, Failed: 1}, nil).
		Times(1)
	m.crashes.EXPECT().MarkCompleted(ctx, "X1").Return(models.CompleteResult{Completed: true}, nil).Times(1)

	// Действие
	err := processor.Process(ctx, "X1")

	// Проверки
	require.NoError(t, err)
}

func TestProcess_ClaimError(t *testing.T) {
	// Подготовка
	processor, m := newTestProcessor(t)
	ctx := context.Background()

	// Ожидания
	m.crashes.EXPECT().GetIncident(ctx, "X1").Return(models.NewCrashRecord(testReport("A")), nil).Times(1)
	m.crashes.EXPECT().ClaimForProcessing(ctx, "X1").Return(models.ClaimResult{}, errors.New("tx aborted")).Times(1)

	// Действие
	err := processor.Process(ctx, "X1")

	// Проверки
	require.Error(t, err)
	assert.ErrorContains(t, err, "claim failed")
}

func TestProcess_LoadErrorLeavesIncidentUnclaimed(t *testing.T) {
	// Подготовка
	processor, m := newTestProcessor(t)
	ctx := context.Background()

	// Ожидания: без записи claim не выполняется, sweeper повторит инцидент
	m.crashes.EXPECT().GetIncident(ctx, "X1").Return(nil, models.ErrIncidentNotFound).Times(1)

	// Действие
	err := processor.Process(ctx, "X1")

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrIncidentNotFound)
}

func TestProcess_RetriesContactResolution(t *testing.T) {
	// Подготовка
	processor, m := newTestProcessor(t)
	ctx := context.Background()
	record := models.NewCrashRecord(testReport("A"))

	// Ожидания
	m.crashes.EXPECT().GetIncident(ctx, "X1").Return(record, nil).Times(1)
	m.crashes.EXPECT().ClaimForProcessing(ctx, "X1").Return(models.ClaimResult{Claimed: true}, nil).Times(1)
	gomock.InOrder(
		m.contacts.EXPECT().ResolveContacts(gomock.Any(), "U1").Return(nil, errors.New("connection reset by peer")).Times(1),
		m.contacts.EXPECT().ResolveContacts(gomock.Any(), "U1").Return([]string{"C1"}, nil).Times(1),
	)
	m.dispatcher.EXPECT().
		DispatchToUser(ctx, "C1", gomock.Any()).
		Return(&models.DispatchReport{UserID: "C1", Outcome: models.OutcomeNoActiveDevices}, nil).
		Times(1)
	m.crashes.EXPECT().MarkCompleted(ctx, "X1").Return(models.CompleteResult{Completed: true}, nil).Times(1)

	// Действие
	err := processor.Process(ctx, "X1")

	// Проверки
	require.NoError(t, err)
}

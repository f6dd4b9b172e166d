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

// newTestRetractionService - вспомогательная функция для создания инстанса сервиса с моками.
func newTestRetractionService(t *testing.T) (*retractionService, *mocks.MockAlertTracker, *mocks.MockEventPublisher) {
	ctrl := gomock.NewController(t)
	trackerMock := mocks.NewMockAlertTracker(ctrl)
	publisherMock := mocks.NewMockEventPublisher(ctrl)

	service := NewRetractionService(trackerMock, publisherMock, newTestLogger())
	return service.(*retractionService), trackerMock, publisherMock
}

func TestRetract_ClearsOpenAlerts(t *testing.T) {
	// Подготовка
	service, trackerMock, publisherMock := newTestRetractionService(t)
	ctx := context.Background()

	// Ожидания
	trackerMock.EXPECT().RetractAll(ctx, "victim:U1").Return(2, nil).Times(1)
	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, event models.Event) error {
			assert.Equal(t, models.EventAlertsRetracted, event.Type)
			assert.Equal(t, "victim:U1", event.ScopeKey)
			assert.Equal(t, 2, event.Count)
			return nil
		}).
		Times(1)

	// Действие
	result, err := service.Retract(ctx, "victim:U1", models.RetractHelpConfirmed)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 2, result.RetractedCount)
	assert.Equal(t, models.RetractHelpConfirmed, result.Reason)
}

func TestRetract_EmptySetIsNotAnError(t *testing.T) {
	// Подготовка
	service, trackerMock, _ := newTestRetractionService(t)
	ctx := context.Background()

	// Ожидания: пустой набор, событие не публикуется
	trackerMock.EXPECT().RetractAll(ctx, "C1").Return(0, nil).Times(1)

	// Действие
	result, err := service.Retract(ctx, "C1", models.RetractAppOpened)

	// Проверки
	require.NoError(t, err)
	assert.Zero(t, result.RetractedCount)
}

func TestRetract_InvalidInput(t *testing.T) {
	// Подготовка
	service, _, _ := newTestRetractionService(t)
	ctx := context.Background()

	// Действие
	_, errScope := service.Retract(ctx, "", models.RetractAppOpened)
	_, errReason := service.Retract(ctx, "C1", models.RetractReason("dismissed"))

	// Проверки
	assert.ErrorIs(t, errScope, models.ErrInvalidInput)
	assert.ErrorIs(t, errReason, models.ErrInvalidInput)
}

func TestRetract_TrackerError(t *testing.T) {
	// Подготовка
	service, trackerMock, _ := newTestRetractionService(t)
	ctx := context.Background()

	// Ожидания
	trackerMock.EXPECT().RetractAll(ctx, "C1").Return(0, errors.New("redis down")).Times(1)

	// Действие
	_, err := service.Retract(ctx, "C1", models.RetractAppOpened)

	// Проверки
	require.Error(t, err)
	assert.ErrorContains(t, err, "could not retract alerts")
}

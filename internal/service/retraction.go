package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shenikar/crash_alert_system/internal/metrics"
	"github.com/shenikar/crash_alert_system/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=retraction.go -destination=mocks/retraction_mock.go -package=mocks

// AlertTracker хранит наборы открытых (sticky) алертов по scope.
// RetractAll идемпотентен: пустой набор дает 0, а не ошибку.
type AlertTracker interface {
	RecordOpenAlert(ctx context.Context, scopeKey string, alert models.OpenAlert) error
	RetractAll(ctx context.Context, scopeKey string) (int, error)
	HasOpenAlerts(ctx context.Context, scopeKey string) (bool, error)
	OpenAlertCount(ctx context.Context, scopeKey string) (int, error)
	OpenAlerts(ctx context.Context, scopeKey string) ([]models.OpenAlert, error)
}

// RetractionService снимает открытые алерты по событию "приложение открыто" или "помощь подтверждена"
type RetractionService interface {
	Retract(ctx context.Context, scopeKey string, reason models.RetractReason) (models.RetractResult, error)
	OpenAlerts(ctx context.Context, scopeKey string) ([]models.OpenAlert, error)
}

type retractionService struct {
	tracker   AlertTracker
	publisher EventPublisher
	logger    *logrus.Logger
}

func NewRetractionService(tracker AlertTracker, publisher EventPublisher, logger *logrus.Logger) RetractionService {
	return &retractionService{
		tracker:   tracker,
		publisher: publisher,
		logger:    logger,
	}
}

// Retract снимает все открытые алерты scope. Оба события сходятся к пустому набору
// независимо от порядка и количества вызовов.
func (s *retractionService) Retract(ctx context.Context, scopeKey string, reason models.RetractReason) (models.RetractResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "retraction",
		"method":    "Retract",
		"scope_key": scopeKey,
		"reason":    reason,
	})
	if scopeKey == "" {
		return models.RetractResult{}, fmt.Errorf("%w: scope_key is required", models.ErrInvalidInput)
	}
	if !reason.Valid() {
		return models.RetractResult{}, fmt.Errorf("%w: unknown retract reason %q", models.ErrInvalidInput, reason)
	}

	n, err := s.tracker.RetractAll(ctx, scopeKey)
	if err != nil {
		log.WithError(err).Error("Failed to retract open alerts")
		return models.RetractResult{}, fmt.Errorf("service: could not retract alerts: %w", err)
	}

	result := models.RetractResult{ScopeKey: scopeKey, Reason: reason, RetractedCount: n}
	if n == 0 {
		log.Debug("Nothing to retract")
		return result, nil
	}

	metrics.AlertsRetracted.WithLabelValues(string(reason)).Add(float64(n))
	log.WithField("retracted", n).Info("Open alerts retracted")

	if s.publisher != nil {
		event := models.Event{
			Type:       models.EventAlertsRetracted,
			ScopeKey:   scopeKey,
			Reason:     reason,
			Count:      n,
			OccurredAt: time.Now().UTC(),
		}
		if err := s.publisher.Publish(ctx, event); err != nil {
			log.WithError(err).Warn("Failed to publish retraction event")
		}
	}
	return result, nil
}

func (s *retractionService) OpenAlerts(ctx context.Context, scopeKey string) ([]models.OpenAlert, error) {
	if scopeKey == "" {
		return nil, fmt.Errorf("%w: scope_key is required", models.ErrInvalidInput)
	}
	alerts, err := s.tracker.OpenAlerts(ctx, scopeKey)
	if err != nil {
		return nil, fmt.Errorf("service: could not list open alerts: %w", err)
	}
	return alerts, nil
}

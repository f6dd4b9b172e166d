package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/crash_alert_system/internal/config"
	"github.com/shenikar/crash_alert_system/internal/metrics"
	"github.com/shenikar/crash_alert_system/internal/models"
	"github.com/shenikar/crash_alert_system/pkg/retry"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=dispatch.go -destination=mocks/dispatch_mock.go -package=mocks

const stalePendingReason = "pending timeout"

// DispatchRepository хранит попытки доставки
type DispatchRepository interface {
	CreateAttempt(ctx context.Context, attempt *models.DispatchAttempt) error
	// FinishAttempt переводит pending-попытку в терминальное состояние, повторный вызов ничего не меняет
	FinishAttempt(ctx context.Context, attempt *models.DispatchAttempt) error
	FailStalePending(ctx context.Context, olderThan time.Time, reason string) (int64, error)
	ListByIncident(ctx context.Context, incidentID string) ([]*models.DispatchAttempt, error)
}

// DeliveryGateway - внешний шлюз push-доставки, один вызов на попытку
type DeliveryGateway interface {
	Send(ctx context.Context, address string, payload models.AlertPayload) error
}

// DispatchService рассылает алерт на все активные устройства пользователя
type DispatchService interface {
	DispatchToUser(ctx context.Context, userID string, payload models.AlertPayload) (*models.DispatchReport, error)
	ListAttempts(ctx context.Context, incidentID string) ([]*models.DispatchAttempt, error)
	SweepStaleAttempts(ctx context.Context) (int64, error)
}

type dispatchService struct {
	devices DeviceService
	repo    DispatchRepository
	gateway DeliveryGateway
	logger  *logrus.Logger
	cfg     *config.Config
	policy  retry.Policy
	now     func() time.Time
}

func NewDispatchService(devices DeviceService, repo DispatchRepository, gateway DeliveryGateway, logger *logrus.Logger, cfg *config.Config) DispatchService {
	return &dispatchService{
		devices: devices,
		repo:    repo,
		gateway: gateway,
		logger:  logger,
		cfg:     cfg,
		policy: retry.Policy{
			MaxAttempts: cfg.RetryMaxAttempts,
			BaseDelay:   cfg.RetryBaseDelay,
		},
		now: func() time.Time { return time.Now().UTC() },
	}
}

// DispatchToUser отправляет алерт на каждое активное устройство независимо.
// Ошибка возвращается только если не удалось получить список устройств.
func (s *dispatchService) DispatchToUser(ctx context.Context, userID string, payload models.AlertPayload) (*models.DispatchReport, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "dispatch",
		"method":      "DispatchToUser",
		"user_id":     userID,
		"incident_id": payload.IncidentID,
	})

	devices, err := s.devices.GetActiveDevices(ctx, userID)
	if err != nil {
		log.WithError(err).Error("Failed to resolve active devices")
		return nil, fmt.Errorf("service: could not resolve devices: %w", err)
	}

	report := &models.DispatchReport{
		UserID:          userID,
		PerDeviceErrors: map[string]string{},
		Deliveries:      make([]models.DeviceDelivery, len(devices)),
	}

	if len(devices) == 0 {
		report.Finalize()
		metrics.DispatchOutcomes.WithLabelValues(string(report.Outcome)).Inc()
		log.Warn("User has no active devices")
		return report, nil
	}

	var g errgroup.Group
	g.SetLimit(s.cfg.DispatchConcurrency)
	for i, device := range devices {
		g.Go(func() error {
			report.Deliveries[i] = s.deliver(ctx, userID, device, payload, log)
			return nil
		})
	}
	_ = g.Wait()

	for _, d := range report.Deliveries {
		report.Attempted++
		if d.State == models.AttemptDelivered {
			report.Delivered++
			continue
		}
		report.Failed++
		report.PerDeviceErrors[d.DeviceID] = d.Error
	}
	report.Finalize()
	metrics.DispatchOutcomes.WithLabelValues(string(report.Outcome)).Inc()

	log.WithFields(logrus.Fields{
		"attempted": report.Attempted,
		"delivered": report.Delivered,
		"failed":    report.Failed,
	}).Info("Dispatch finished")
	return report, nil
}

func (s *dispatchService) deliver(ctx context.Context, userID string, device *models.DeviceEntry, payload models.AlertPayload, log *logrus.Entry) models.DeviceDelivery {
	attempt := &models.DispatchAttempt{
		AlertID:         uuid.NewString(),
		IncidentID:      payload.IncidentID,
		RecipientUserID: userID,
		TargetDeviceID:  device.DeviceID,
		State:           models.AttemptPending,
		CreatedAt:       s.now(),
	}
	log = log.WithFields(logrus.Fields{"device_id": device.DeviceID, "alert_id": attempt.AlertID})

	// Алерт экстренный: отправляем даже если не удалось записать попытку, но фиксируем это в логе
	recorded := true
	if err := s.storeCall(ctx, func(ctx context.Context) error { return s.repo.CreateAttempt(ctx, attempt) }); err != nil {
		recorded = false
		log.WithError(err).Error("Failed to record pending attempt")
	}

	started := time.Now()
	calls, err := retry.Do(ctx, s.policy, func(ctx context.Context) error {
		gctx, cancel := withTimeout(ctx, s.cfg.GatewayTimeout)
		defer cancel()
		sendErr := s.gateway.Send(gctx, device.DeliveryAddress, payload)
		if errors.Is(sendErr, models.ErrPermanentDelivery) {
			return retry.Permanent(sendErr)
		}
		return sendErr
	})
	metrics.DeliveryDuration.Observe(time.Since(started).Seconds())

	attempt.Attempts = calls
	if err != nil {
		attempt.State = models.AttemptFailed
		attempt.FailureReason = err.Error()
		log.WithError(err).WithField("calls", calls).Warn("Delivery failed")
	} else {
		deliveredAt := s.now()
		attempt.State = models.AttemptDelivered
		attempt.DeliveredAt = &deliveredAt
		log.WithField("calls", calls).Debug("Delivered")
	}
	metrics.DeliveryAttempts.WithLabelValues(string(attempt.State)).Inc()

	if recorded {
		if ferr := s.storeCall(ctx, func(ctx context.Context) error { return s.repo.FinishAttempt(ctx, attempt) }); ferr != nil {
			log.WithError(ferr).Error("Failed to finalize attempt, it stays pending until swept")
		}
	}

	return models.DeviceDelivery{
		DeviceID: device.DeviceID,
		AlertID:  attempt.AlertID,
		State:    attempt.State,
		Error:    attempt.FailureReason,
	}
}

func (s *dispatchService) ListAttempts(ctx context.Context, incidentID string) ([]*models.DispatchAttempt, error) {
	ctx, cancel := withTimeout(ctx, s.cfg.StoreTimeout)
	defer cancel()

	attempts, err := s.repo.ListByIncident(ctx, incidentID)
	if err != nil {
		return nil, fmt.Errorf("service: could not list attempts: %w", err)
	}
	return attempts, nil
}

// SweepStaleAttempts помечает failed попытки, застрявшие в pending дольше таймаута
func (s *dispatchService) SweepStaleAttempts(ctx context.Context) (int64, error) {
	ctx, cancel := withTimeout(ctx, s.cfg.StoreTimeout)
	defer cancel()

	cutoff := s.now().Add(-s.cfg.PendingAttemptTimeout)
	n, err := s.repo.FailStalePending(ctx, cutoff, stalePendingReason)
	if err != nil {
		return 0, fmt.Errorf("service: could not sweep stale attempts: %w", err)
	}
	if n > 0 {
		metrics.StaleAttemptsFailed.Add(float64(n))
		s.logger.WithFields(logrus.Fields{
			"service": "dispatch",
			"method":  "SweepStaleAttempts",
			"count":   n,
		}).Warn("Stale pending attempts marked failed")
	}
	return n, nil
}

// storeCall выполняет запись в хранилище с таймаутом и ограниченным retry
func (s *dispatchService) storeCall(ctx context.Context, fn func(ctx context.Context) error) error {
	_, err := retry.Do(ctx, s.policy, func(ctx context.Context) error {
		sctx, cancel := withTimeout(ctx, s.cfg.StoreTimeout)
		defer cancel()
		return fn(sctx)
	})
	return err
}

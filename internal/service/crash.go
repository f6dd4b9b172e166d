package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shenikar/crash_alert_system/internal/config"
	"github.com/shenikar/crash_alert_system/internal/metrics"
	"github.com/shenikar/crash_alert_system/internal/models"
	"github.com/shenikar/crash_alert_system/pkg/retry"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=crash.go -destination=mocks/crash_mock.go -package=mocks

// CrashRepository определяет контракт хранилища записей об авариях.
// Хранилище обязано поддерживать get-by-key, атомарное добавление в массив
// и транзакционное чтение с условной записью.
type CrashRepository interface {
	GetByIncidentID(ctx context.Context, incidentID string) (*models.CrashRecord, error)
	// CreateOrMerge создает запись; если она уже есть, первый репорт дописывается в дубликаты
	CreateOrMerge(ctx context.Context, record *models.CrashRecord) (created bool, err error)
	// AppendDuplicate атомарно дописывает дубликат, если запись существует
	AppendDuplicate(ctx context.Context, incidentID string, dup models.DuplicateReport) (found bool, err error)
	// TransitionState в одной транзакции проверяет from и пишет to
	TransitionState(ctx context.Context, incidentID string, from, to models.ProcessingState, at time.Time) (bool, error)
	ListByState(ctx context.Context, state models.ProcessingState) ([]*models.CrashRecord, error)
	ListByVictim(ctx context.Context, victimUserID string) ([]*models.CrashRecord, error)
}

// IncidentCache - кэш недавно виденных incident_id, только оптимизация
type IncidentCache interface {
	MarkSeen(ctx context.Context, incidentID string) (firstSeen bool, err error)
}

// IncidentQueue ставит инцидент в очередь на обработку
type IncidentQueue interface {
	Enqueue(ctx context.Context, incidentID string) error
}

// EventPublisher публикует события жизненного цикла
type EventPublisher interface {
	Publish(ctx context.Context, event models.Event) error
}

// CrashService определяет контракт дедупликации сообщений об авариях
type CrashService interface {
	ReportCrash(ctx context.Context, report models.CrashReport) (models.ReportResult, error)
	ClaimForProcessing(ctx context.Context, incidentID string) (models.ClaimResult, error)
	MarkCompleted(ctx context.Context, incidentID string) (models.CompleteResult, error)
	GetIncident(ctx context.Context, incidentID string) (*models.CrashRecord, error)
	GetUnprocessedIncidents(ctx context.Context) ([]*models.CrashRecord, error)
	GetIncidentsForVictim(ctx context.Context, victimUserID string) ([]*models.CrashRecord, error)
	GetStats(ctx context.Context, incidentID string) (*models.IncidentStats, error)
}

type crashService struct {
	repo      CrashRepository
	cache     IncidentCache
	queue     IncidentQueue
	publisher EventPublisher
	logger    *logrus.Logger
	cfg       *config.Config
	policy    retry.Policy
	now       func() time.Time
}

// NewCrashService создает сервис. cache, queue и publisher могут быть nil.
func NewCrashService(repo CrashRepository, cache IncidentCache, queue IncidentQueue, publisher EventPublisher, logger *logrus.Logger, cfg *config.Config) CrashService {
	return &crashService{
		repo:      repo,
		cache:     cache,
		queue:     queue,
		publisher: publisher,
		logger:    logger,
		cfg:       cfg,
		policy: retry.Policy{
			MaxAttempts: cfg.RetryMaxAttempts,
			BaseDelay:   cfg.RetryBaseDelay,
		},
		now: func() time.Time { return time.Now().UTC() },
	}
}

// ReportCrash принимает сообщение об аварии и отвечает, новый это инцидент или дубликат
func (s *crashService) ReportCrash(ctx context.Context, report models.CrashReport) (models.ReportResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "crash",
		"method":      "ReportCrash",
		"incident_id": report.IncidentID,
		"reporter_id": report.ReporterID,
	})

	if err := report.Validate(); err != nil {
		metrics.CrashReports.WithLabelValues("rejected").Inc()
		log.WithError(err).Warn("Rejected invalid crash report")
		return models.ReportResult{}, err
	}
	if report.ReportedAt.IsZero() {
		report.ReportedAt = s.now()
	}

	exists := false
	if s.cache != nil {
		firstSeen, err := s.cache.MarkSeen(ctx, report.IncidentID)
		if err != nil {
			log.WithError(err).Warn("Seen cache unavailable, falling back to store")
		} else {
			exists = !firstSeen
		}
	}

	if !exists {
		err := s.storeCall(ctx, func(ctx context.Context) error {
			_, err := s.repo.GetByIncidentID(ctx, report.IncidentID)
			return err
		})
		switch {
		case err == nil:
			exists = true
		case errors.Is(err, models.ErrIncidentNotFound):
		default:
			log.WithError(err).Error("Failed to look up incident")
			return models.ReportResult{}, fmt.Errorf("service: could not look up incident: %w", err)
		}
	}

	if exists {
		var found bool
		err := s.storeCall(ctx, func(ctx context.Context) error {
			var err error
			found, err = s.repo.AppendDuplicate(ctx, report.IncidentID, report.AsDuplicate())
			return err
		})
		if err != nil {
			log.WithError(err).Error("Failed to append duplicate report")
			return models.ReportResult{}, fmt.Errorf("service: could not append duplicate report: %w", err)
		}
		if found {
			metrics.CrashReports.WithLabelValues("duplicate").Inc()
			log.Info("Duplicate crash report merged")
			return models.ReportResult{IsNewIncident: false}, nil
		}
		log.Warn("Incident marked as seen but missing in store, creating it")
	}

	record := models.NewCrashRecord(report)
	var created bool
	err := s.storeCall(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.repo.CreateOrMerge(ctx, record)
		return err
	})
	if err != nil {
		log.WithError(err).Error("Failed to create crash record")
		return models.ReportResult{}, fmt.Errorf("service: could not create crash record: %w", err)
	}

	if !created {
		metrics.CrashReports.WithLabelValues("duplicate").Inc()
		log.Info("Concurrent report merged into existing incident")
		return models.ReportResult{IsNewIncident: false}, nil
	}

	metrics.CrashReports.WithLabelValues("new").Inc()
	log.WithField("victim_user_id", report.VictimUserID).Info("New incident recorded")
	s.onNewIncident(ctx, record, log)
	return models.ReportResult{IsNewIncident: true}, nil
}

func (s *crashService) onNewIncident(ctx context.Context, record *models.CrashRecord, log *logrus.Entry) {
	s.publish(ctx, models.Event{
		Type:         models.EventIncidentReported,
		IncidentID:   record.IncidentID,
		VictimUserID: record.VictimUserID,
		OccurredAt:   record.ReportedAt,
	}, log)

	if s.queue == nil {
		return
	}
	// Если постановка в очередь не удалась, инцидент подберет sweeper
	if err := s.queue.Enqueue(ctx, record.IncidentID); err != nil {
		log.WithError(err).Error("Failed to enqueue incident for processing")
	}
}

// ClaimForProcessing атомарно переводит инцидент unclaimed -> claimed.
// Вся рассылка должна выполняться только при Claimed == true.
func (s *crashService) ClaimForProcessing(ctx context.Context, incidentID string) (models.ClaimResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "crash",
		"method":      "ClaimForProcessing",
		"incident_id": incidentID,
	})
	if incidentID == "" {
		return models.ClaimResult{}, fmt.Errorf("%w: incident_id is required", models.ErrInvalidInput)
	}

	now := s.now()
	sctx, cancel := s.storeCtx(ctx)
	claimed, err := s.repo.TransitionState(sctx, incidentID, models.StateUnclaimed, models.StateClaimed, now)
	cancel()
	if err != nil {
		if errors.Is(err, models.ErrIncidentNotFound) {
			log.Warn("Attempted to claim a non-existent incident")
			return models.ClaimResult{}, fmt.Errorf("service: incident %s not found for claim: %w", incidentID, err)
		}
		log.WithError(err).Error("Claim transaction failed")
		return models.ClaimResult{}, fmt.Errorf("service: could not claim incident: %w", err)
	}

	if !claimed {
		metrics.Claims.WithLabelValues("lost").Inc()
		log.Info("Incident already claimed")
		return models.ClaimResult{Claimed: false}, nil
	}

	metrics.Claims.WithLabelValues("claimed").Inc()
	log.Info("Incident claimed for processing")
	s.publish(ctx, models.Event{Type: models.EventIncidentClaimed, IncidentID: incidentID, OccurredAt: now}, log)
	return models.ClaimResult{Claimed: true}, nil
}

// MarkCompleted переводит claimed -> completed; в любом другом состоянии это no-op
func (s *crashService) MarkCompleted(ctx context.Context, incidentID string) (models.CompleteResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "crash",
		"method":      "MarkCompleted",
		"incident_id": incidentID,
	})

	now := s.now()
	sctx, cancel := s.storeCtx(ctx)
	done, err := s.repo.TransitionState(sctx, incidentID, models.StateClaimed, models.StateCompleted, now)
	cancel()
	if err != nil {
		if errors.Is(err, models.ErrIncidentNotFound) {
			log.Warn("Attempted to complete a non-existent incident")
			return models.CompleteResult{}, fmt.Errorf("service: incident %s not found for complete: %w", incidentID, err)
		}
		log.WithError(err).Error("Failed to mark incident completed")
		return models.CompleteResult{}, fmt.Errorf("service: could not complete incident: %w", err)
	}
	if !done {
		log.Warn("Incident is not claimed, completion skipped")
		return models.CompleteResult{Completed: false}, nil
	}

	log.Info("Incident completed")
	s.publish(ctx, models.Event{Type: models.EventIncidentCompleted, IncidentID: incidentID, OccurredAt: now}, log)
	return models.CompleteResult{Completed: true}, nil
}

// GetIncident возвращает запись по incident_id
func (s *crashService) GetIncident(ctx context.Context, incidentID string) (*models.CrashRecord, error) {
	var record *models.CrashRecord
	err := s.storeCall(ctx, func(ctx context.Context) error {
		var err error
		record, err = s.repo.GetByIncidentID(ctx, incidentID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}
	return record, nil
}

// GetUnprocessedIncidents возвращает инциденты, которые еще никто не захватил
func (s *crashService) GetUnprocessedIncidents(ctx context.Context) ([]*models.CrashRecord, error) {
	var records []*models.CrashRecord
	err := s.storeCall(ctx, func(ctx context.Context) error {
		var err error
		records, err = s.repo.ListByState(ctx, models.StateUnclaimed)
		return err
	})
	if err != nil {
		s.logger.WithField("method", "GetUnprocessedIncidents").WithError(err).Error("Failed to list unclaimed incidents")
		return nil, fmt.Errorf("service: could not list unprocessed incidents: %w", err)
	}
	return records, nil
}

func (s *crashService) GetIncidentsForVictim(ctx context.Context, victimUserID string) ([]*models.CrashRecord, error) {
	if victimUserID == "" {
		return nil, fmt.Errorf("%w: victim_user_id is required", models.ErrInvalidInput)
	}
	var records []*models.CrashRecord
	err := s.storeCall(ctx, func(ctx context.Context) error {
		var err error
		records, err = s.repo.ListByVictim(ctx, victimUserID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("service: could not list incidents for victim: %w", err)
	}
	return records, nil
}

// GetStats считает количество сообщений и уникальных репортеров
func (s *crashService) GetStats(ctx context.Context, incidentID string) (*models.IncidentStats, error) {
	record, err := s.GetIncident(ctx, incidentID)
	if err != nil {
		return nil, err
	}
	stats := record.Stats()
	return &stats, nil
}

func (s *crashService) publish(ctx context.Context, event models.Event, log *logrus.Entry) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).WithField("event", event.Type).Warn("Failed to publish event")
	}
}

func (s *crashService) storeCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return withTimeout(ctx, s.cfg.StoreTimeout)
}

// storeCall повторяет идемпотентные операции хранилища.
// ErrIncidentNotFound - ответ, а не сбой, поэтому не повторяется.
// TransitionState сюда не передается: его результат нельзя повторять вслепую.
func (s *crashService) storeCall(ctx context.Context, fn func(ctx context.Context) error) error {
	_, err := retry.Do(ctx, s.policy, func(ctx context.Context) error {
		sctx, cancel := s.storeCtx(ctx)
		defer cancel()
		err := fn(sctx)
		if errors.Is(err, models.ErrIncidentNotFound) {
			return retry.Permanent(err)
		}
		return err
	})
	return err
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}

package service

import (
	"context"
	"fmt"

	"github.com/shenikar/crash_alert_system/internal/config"
	"github.com/shenikar/crash_alert_system/internal/models"
	"github.com/shenikar/crash_alert_system/pkg/retry"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=processor.go -destination=mocks/processor_mock.go -package=mocks

// ContactResolver возвращает экстренные контакты пострадавшего
type ContactResolver interface {
	ResolveContacts(ctx context.Context, victimUserID string) ([]string, error)
}

// IncidentProcessor - единственный вызывающий рассылки: работает только после успешного claim
type IncidentProcessor struct {
	crashes    CrashService
	dispatcher DispatchService
	contacts   ContactResolver
	tracker    AlertTracker
	logger     *logrus.Logger
	cfg        *config.Config
	policy     retry.Policy
}

func NewIncidentProcessor(crashes CrashService, dispatcher DispatchService, contacts ContactResolver, tracker AlertTracker, logger *logrus.Logger, cfg *config.Config) *IncidentProcessor {
	return &IncidentProcessor{
		crashes:    crashes,
		dispatcher: dispatcher,
		contacts:   contacts,
		tracker:    tracker,
		logger:     logger,
		cfg:        cfg,
		policy: retry.Policy{
			MaxAttempts: cfg.RetryMaxAttempts,
			BaseDelay:   cfg.RetryBaseDelay,
		},
	}
}

// Process загружает инцидент, захватывает его и рассылает алерт всем устройствам всех контактов.
// Если захват не удался, ничего не делает.
func (p *IncidentProcessor) Process(ctx context.Context, incidentID string) error {
	log := p.logger.WithFields(logrus.Fields{
		"service":     "processor",
		"method":      "Process",
		"incident_id": incidentID,
	})

	// Чтение до захвата безопасно: сбой здесь оставляет инцидент unclaimed, и sweeper его повторит
	record, err := p.crashes.GetIncident(ctx, incidentID)
	if err != nil {
		log.WithError(err).Error("Incident could not be loaded")
		return fmt.Errorf("processor: could not load incident: %w", err)
	}

	claim, err := p.crashes.ClaimForProcessing(ctx, incidentID)
	if err != nil {
		return fmt.Errorf("processor: claim failed: %w", err)
	}
	if !claim.Claimed {
		log.Debug("Incident claimed by another worker, skipping")
		return nil
	}

	// С этого момента инцидент захвачен и повторно не рассылается
	var contacts []string
	_, err = retry.Do(ctx, p.policy, func(ctx context.Context) error {
		cctx, cancel := withTimeout(ctx, p.cfg.StoreTimeout)
		defer cancel()
		var err error
		contacts, err = p.contacts.ResolveContacts(cctx, record.VictimUserID)
		return err
	})
	if err != nil {
		log.WithError(err).Error("Failed to resolve emergency contacts")
		return fmt.Errorf("processor: could not resolve contacts: %w", err)
	}

	payload := alertPayload(record)
	reached := 0
	for _, contactID := range contacts {
		report, err := p.dispatcher.DispatchToUser(ctx, contactID, payload)
		if err != nil {
			log.WithError(err).WithField("contact_id", contactID).Error("Dispatch to contact failed")
			continue
		}
		if report.Success() {
			reached++
		}
		p.trackDelivered(ctx, record, contactID, report, log)
	}

	log.WithFields(logrus.Fields{
		"contacts": len(contacts),
		"reached":  reached,
	}).Info("Incident fan-out finished")

	if _, err := p.crashes.MarkCompleted(ctx, incidentID); err != nil {
		return fmt.Errorf("processor: could not complete incident: %w", err)
	}
	return nil
}

func (p *IncidentProcessor) trackDelivered(ctx context.Context, record *models.CrashRecord, contactID string, report *models.DispatchReport, log *logrus.Entry) {
	for _, alertID := range report.DeliveredAlertIDs() {
		alert := models.OpenAlert{AlertID: alertID, IncidentID: record.IncidentID}
		for _, scope := range []string{contactID, models.VictimScope(record.VictimUserID)} {
			if err := p.tracker.RecordOpenAlert(ctx, scope, alert); err != nil {
				log.WithError(err).WithFields(logrus.Fields{
					"scope_key": scope,
					"alert_id":  alertID,
				}).Error("Failed to record open alert")
			}
		}
	}
}

func alertPayload(record *models.CrashRecord) models.AlertPayload {
	return models.AlertPayload{
		IncidentID:   record.IncidentID,
		VictimUserID: record.VictimUserID,
		Title:        "Crash detected",
		Body: fmt.Sprintf("A possible crash was reported for %s at %.5f, %.5f",
			record.VictimUserID, record.Location.Latitude, record.Location.Longitude),
		Location: record.Location,
		Sticky:   true,
	}
}

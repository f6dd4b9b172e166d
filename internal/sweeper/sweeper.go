// Package sweeper периодически доводит до конца то, что не завершилось штатно:
// зависшие pending-попытки доставки и инциденты, которые никто не захватил.
package sweeper

import (
	"context"
	"time"

	"github.com/shenikar/crash_alert_system/internal/config"
	"github.com/shenikar/crash_alert_system/internal/service"
	"github.com/sirupsen/logrus"
)

type Sweeper struct {
	crashes    service.CrashService
	dispatcher service.DispatchService
	queue      service.IncidentQueue
	logger     *logrus.Logger
	cfg        *config.Config
	now        func() time.Time
}

func New(crashes service.CrashService, dispatcher service.DispatchService, queue service.IncidentQueue, logger *logrus.Logger, cfg *config.Config) *Sweeper {
	return &Sweeper{
		crashes:    crashes,
		dispatcher: dispatcher,
		queue:      queue,
		logger:     logger,
		cfg:        cfg,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Start запускает цикл по тикеру до отмены ctx
func (s *Sweeper) Start(ctx context.Context) {
	s.logger.WithField("interval", s.cfg.SweepInterval.String()).Info("Starting sweeper...")
	go func() {
		ticker := time.NewTicker(s.cfg.SweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				s.logger.Info("Stopping sweeper.")
				return
			case <-ticker.C:
				s.RunOnce(ctx)
			}
		}
	}()
}

// RunOnce выполняет один проход; ошибки только логируются
func (s *Sweeper) RunOnce(ctx context.Context) {
	log := s.logger.WithField("component", "sweeper")

	if _, err := s.dispatcher.SweepStaleAttempts(ctx); err != nil {
		log.WithError(err).Error("Failed to sweep stale attempts")
	}

	records, err := s.crashes.GetUnprocessedIncidents(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list unprocessed incidents")
		return
	}

	cutoff := s.now().Add(-s.cfg.UnclaimedRequeueAfter)
	requeued := 0
	for _, r := range records {
		if r.ReportedAt.After(cutoff) {
			continue
		}
		if err := s.queue.Enqueue(ctx, r.IncidentID); err != nil {
			log.WithError(err).WithField("incident_id", r.IncidentID).Error("Failed to requeue incident")
			continue
		}
		requeued++
	}
	if requeued > 0 {
		log.WithField("count", requeued).Warn("Unclaimed incidents requeued")
	}
}

package queue

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Source - очередь, из которой воркер забирает задания
type Source interface {
	Dequeue(ctx context.Context, timeout time.Duration) (string, error)
}

// Processor обрабатывает один инцидент
type Processor interface {
	Process(ctx context.Context, incidentID string) error
}

// Worker - пул горутин, разбирающих очередь инцидентов
type Worker struct {
	source      Source
	processor   Processor
	logger      *logrus.Logger
	concurrency int
	pollTimeout time.Duration
	errorDelay  time.Duration
	wg          sync.WaitGroup
}

func NewWorker(source Source, processor Processor, logger *logrus.Logger, concurrency int) *Worker {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Worker{
		source:      source,
		processor:   processor,
		logger:      logger,
		concurrency: concurrency,
		pollTimeout: time.Second,
		errorDelay:  time.Second,
	}
}

// Start запускает горутины обработки очереди
func (w *Worker) Start(ctx context.Context) {
	w.logger.WithField("concurrency", w.concurrency).Info("Starting incident worker...")
	for i := 0; i < w.concurrency; i++ {
		w.wg.Add(1)
		go func() {
			defer w.wg.Done()
			w.run(ctx)
		}()
	}
}

// Wait ждет завершения всех горутин после отмены ctx
func (w *Worker) Wait() {
	w.wg.Wait()
	w.logger.Info("Incident worker stopped.")
}

func (w *Worker) run(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			return
		}

		incidentID, err := w.source.Dequeue(ctx, w.pollTimeout)
		if err != nil {
			if errors.Is(err, context.Canceled) || ctx.Err() != nil {
				return
			}
			w.logger.WithError(err).Error("Failed to take incident from queue")
			sleep(ctx, w.errorDelay)
			continue
		}
		if incidentID == "" {
			continue
		}

		log := w.logger.WithField("incident_id", incidentID)
		log.Debug("Processing incident...")
		if err := w.processor.Process(ctx, incidentID); err != nil {
			log.WithError(err).Error("Incident processing failed")
		}
	}
}

func sleep(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}

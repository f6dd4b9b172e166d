package gateway

import (
	"context"
	"fmt"
	"strings"

	"github.com/shenikar/crash_alert_system/internal/models"
	"github.com/sirupsen/logrus"
)

// Sender - один шлюз доставки
type Sender interface {
	Send(ctx context.Context, address string, payload models.AlertPayload) error
}

// Router выбирает шлюз по схеме адреса доставки; адреса без известной схемы уходят в шлюз по умолчанию
type Router struct {
	schemes  map[string]Sender
	fallback Sender
}

func NewRouter(fallback Sender) *Router {
	return &Router{
		schemes:  make(map[string]Sender),
		fallback: fallback,
	}
}

// Handle регистрирует шлюз для префикса адреса, например "tg:"
func (r *Router) Handle(scheme string, sender Sender) {
	r.schemes[scheme] = sender
}

func (r *Router) Send(ctx context.Context, address string, payload models.AlertPayload) error {
	for scheme, sender := range r.schemes {
		if strings.HasPrefix(address, scheme) {
			return sender.Send(ctx, address, payload)
		}
	}
	if r.fallback == nil {
		return fmt.Errorf("no gateway for address %q: %w", address, models.ErrPermanentDelivery)
	}
	return r.fallback.Send(ctx, address, payload)
}

// LogGateway только пишет алерт в лог. Используется, когда шлюз не настроен.
type LogGateway struct {
	logger *logrus.Logger
}

func NewLogGateway(logger *logrus.Logger) *LogGateway {
	return &LogGateway{logger: logger}
}

func (g *LogGateway) Send(_ context.Context, address string, payload models.AlertPayload) error {
	g.logger.WithFields(logrus.Fields{
		"gateway":     "log",
		"address":     address,
		"incident_id": payload.IncidentID,
	}).Warn("Push gateway is not configured. Alert written to log only.")
	return nil
}

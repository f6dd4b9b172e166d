package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "crash_alert"

var (
	// CrashReports считает сообщения об авариях по результату: new, duplicate, rejected
	CrashReports = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "crash_reports_total",
		Help:      "Crash reports received, by result.",
	}, []string{"result"})

	// Claims считает попытки захвата инцидента: claimed, lost
	Claims = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "incident_claims_total",
		Help:      "Claim attempts, by result.",
	}, []string{"result"})

	DeliveryAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "delivery_attempts_total",
		Help:      "Per-device alert deliveries, by final state.",
	}, []string{"state"})

	DispatchOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "dispatch_outcomes_total",
		Help:      "Per-user dispatch outcomes.",
	}, []string{"outcome"})

	DeliveryDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "delivery_duration_seconds",
		Help:      "Time spent delivering an alert to one device, retries included.",
		Buckets:   prometheus.DefBuckets,
	})

	AlertsRetracted = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "alerts_retracted_total",
		Help:      "Open alerts retracted, by reason.",
	}, []string{"reason"})

	StaleAttemptsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stale_attempts_failed_total",
		Help:      "Pending attempts swept to failed after timeout.",
	})
)

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Dispatcher metrics
	DispatchesTotal         *prometheus.CounterVec
	DispatchDurationSeconds *prometheus.HistogramVec

	// Telegram transport metrics
	TelegramUpdatesTotal *prometheus.CounterVec

	// Session store metrics
	SessionOpsTotal *prometheus.CounterVec

	// Scraper metrics
	ScraperRequestsTotal   *prometheus.CounterVec
	ScraperDurationSeconds *prometheus.HistogramVec
}

// New creates a new Metrics instance with all metrics registered
func New(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		DispatchesTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "planbot_dispatches_total",
				Help: "Total number of dispatched messages by matched intent",
			},
			[]string{"intent"}, // intent: help, programs, pick_program, set_tags, ...
		),

		DispatchDurationSeconds: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "planbot_dispatch_duration_seconds",
				Help:    "Message dispatch duration in seconds by matched intent",
				Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5}, // in-memory lookups, sub-ms expected
			},
			[]string{"intent"},
		),

		TelegramUpdatesTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "planbot_telegram_updates_total",
				Help: "Total number of Telegram updates by kind and status",
			},
			[]string{"kind", "status"}, // kind: message, command; status: success, error, skipped
		),

		SessionOpsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "planbot_session_ops_total",
				Help: "Total number of session store operations by op and status",
			},
			[]string{"op", "status"}, // op: load, save; status: success, error
		),

		ScraperRequestsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "planbot_scraper_requests_total",
				Help: "Total number of curriculum scraper requests by program and status",
			},
			[]string{"program", "status"}, // status: success, error, timeout, not_found
		),

		ScraperDurationSeconds: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "planbot_scraper_duration_seconds",
				Help:    "Curriculum scraper request duration in seconds by program",
				Buckets: []float64{0.5, 1, 2, 5, 10, 20, 30, 60}, // matches scraper timeout + backoff
			},
			[]string{"program"},
		),
	}

	return m
}

// RecordDispatch records one dispatched message
func (m *Metrics) RecordDispatch(intent string, duration float64) {
	m.DispatchesTotal.WithLabelValues(intent).Inc()
	m.DispatchDurationSeconds.WithLabelValues(intent).Observe(duration)
}

// RecordTelegramUpdate records one processed Telegram update
func (m *Metrics) RecordTelegramUpdate(kind, status string) {
	m.TelegramUpdatesTotal.WithLabelValues(kind, status).Inc()
}

// RecordSessionOp records a session store operation
func (m *Metrics) RecordSessionOp(op, status string) {
	m.SessionOpsTotal.WithLabelValues(op, status).Inc()
}

// RecordScraperRequest records a scraper request with status
func (m *Metrics) RecordScraperRequest(program, status string, duration float64) {
	m.ScraperRequestsTotal.WithLabelValues(program, status).Inc()
	m.ScraperDurationSeconds.WithLabelValues(program).Observe(duration)
}

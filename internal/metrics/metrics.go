package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics exposes counters and histograms for the session server.
type Metrics struct {
	storageFailures *prometheus.CounterVec
	sessions        *prometheus.CounterVec
	activeSessions  prometheus.Gauge
	scheduled       *prometheus.CounterVec
	httpLatency     *prometheus.HistogramVec
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		storageFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "telehealth",
			Subsystem: "storage",
			Name:      "failures_total",
			Help:      "Storage reads or writes that fell back to defaults",
		}, []string{"key", "op"}),
		sessions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "telehealth",
			Subsystem: "session",
			Name:      "events_total",
			Help:      "Session lifecycle events",
		}, []string{"event"}),
		activeSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "telehealth",
			Subsystem: "session",
			Name:      "active",
			Help:      "Sessions currently held in memory",
		}),
		scheduled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "telehealth",
			Subsystem: "chat",
			Name:      "scheduled_replies_total",
			Help:      "Simulated replies scheduled, by responder",
		}, []string{"responder"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "telehealth",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Latency of HTTP requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.storageFailures, m.sessions, m.activeSessions, m.scheduled, m.httpLatency)
	return m
}

func (m *Metrics) ObserveStorageFailure(key, op string) {
	if m == nil {
		return
	}
	m.storageFailures.WithLabelValues(key, op).Inc()
}

// ObserveSession records a lifecycle event ("created", "restored",
// "ended", "expired") and keeps the active gauge in step.
func (m *Metrics) ObserveSession(event string) {
	if m == nil {
		return
	}
	m.sessions.WithLabelValues(event).Inc()
	switch event {
	case "created", "restored":
		m.activeSessions.Inc()
	case "ended", "expired":
		m.activeSessions.Dec()
	}
}

func (m *Metrics) ObserveScheduledReply(responder string) {
	if m == nil {
		return
	}
	m.scheduled.WithLabelValues(responder).Inc()
}

func (m *Metrics) ObserveHTTP(method, route, status string, seconds float64) {
	if m == nil {
		return
	}
	m.httpLatency.WithLabelValues(method, route, status).Observe(seconds)
}

// Package observability wires structured logging and Prometheus metrics.
package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the service's Prometheus collectors on a private registry.
type Metrics struct {
	registry        *prometheus.Registry
	evaluations     *prometheus.CounterVec
	chatReplies     *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewMetrics registers all collectors on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		evaluations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "diabred",
			Name:      "risk_evaluations_total",
			Help:      "Risk evaluations by resulting level.",
		}, []string{"level"}),
		chatReplies: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "diabred",
			Name:      "chat_replies_total",
			Help:      "Chatbot replies by matched intent.",
		}, []string{"intent"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "diabred",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
	m.registry.MustRegister(
		m.evaluations,
		m.chatReplies,
		m.requestDuration,
		collectors.NewGoCollector(),
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveEvaluation counts one risk evaluation.
func (m *Metrics) ObserveEvaluation(level string) {
	m.evaluations.WithLabelValues(level).Inc()
}

// ObserveChatReply counts one chatbot reply.
func (m *Metrics) ObserveChatReply(intent string) {
	m.chatReplies.WithLabelValues(intent).Inc()
}

// ObserveRequest records the latency of one HTTP request.
func (m *Metrics) ObserveRequest(method, route string, status int, d time.Duration) {
	m.requestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(d.Seconds())
}

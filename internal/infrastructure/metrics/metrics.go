// Package metrics exposes Prometheus collectors for provider calls,
// flight resolutions, alert subscriptions and alert deliveries.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// DefaultNamespace prefixes every metric name.
const DefaultNamespace = "flight_webhook"

// Metrics holds all prometheus metrics.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	ProviderCalls   *prometheus.CounterVec
	ProviderLatency *prometheus.HistogramVec
	Resolutions     *prometheus.CounterVec
	Subscriptions   *prometheus.CounterVec
	AlertDeliveries *prometheus.CounterVec
	WebhookRequests *prometheus.CounterVec
}

// New registers the service metrics on a fresh registry.
// Each call returns an independent set, so tests can create as many as they need.
func New(namespace string) *Metrics {
	if namespace == "" {
		namespace = DefaultNamespace
	}

	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		ProviderCalls: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "provider_calls_total",
			Help:      "The total number of flight-data provider calls",
		}, []string{"operation", "mode", "result"}),
		ProviderLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "provider_call_duration_seconds",
			Help:      "Time taken by flight-data provider calls",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		Resolutions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "resolutions_total",
			Help:      "The total number of flight resolutions by strategy and outcome",
		}, []string{"strategy", "outcome"}),
		Subscriptions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "subscriptions_total",
			Help:      "The total number of alert subscription attempts by outcome",
		}, []string{"outcome"}),
		AlertDeliveries: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alert_deliveries_total",
			Help:      "The total number of alerts received from the provider",
		}, []string{"event"}),
		WebhookRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "webhook_requests_total",
			Help:      "The total number of inbound webhook requests",
		}, []string{"route", "status"}),
	}
}

// Registry returns the registry the metrics are registered on.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler returns the exposition handler for this registry.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveProviderCall records one outbound call and its latency.
func (m *Metrics) ObserveProviderCall(operation, mode, result string, d time.Duration) {
	if m == nil {
		return
	}
	m.ProviderCalls.WithLabelValues(operation, mode, result).Inc()
	m.ProviderLatency.WithLabelValues(operation).Observe(d.Seconds())
}

// IncResolution records a finished resolution.
// strategy is empty when nothing was found.
func (m *Metrics) IncResolution(strategy, outcome string) {
	if m == nil {
		return
	}
	if strategy == "" {
		strategy = "none"
	}
	m.Resolutions.WithLabelValues(strategy, outcome).Inc()
}

// IncSubscription records a subscription attempt.
func (m *Metrics) IncSubscription(outcome string) {
	if m == nil {
		return
	}
	m.Subscriptions.WithLabelValues(outcome).Inc()
}

// IncAlertDelivery records an alert pushed by the provider.
func (m *Metrics) IncAlertDelivery(event string) {
	if m == nil {
		return
	}
	if event == "" {
		event = "unknown"
	}
	m.AlertDeliveries.WithLabelValues(event).Inc()
}

// IncWebhookRequest records an inbound webhook request.
func (m *Metrics) IncWebhookRequest(route string, status int) {
	if m == nil {
		return
	}
	m.WebhookRequests.WithLabelValues(route, http.StatusText(status)).Inc()
}

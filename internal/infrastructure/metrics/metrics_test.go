package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_IndependentRegistries(t *testing.T) {
	a := New("")
	b := New("")

	a.IncSubscription("found")

	assert.Equal(t, float64(1), testutil.ToFloat64(a.Subscriptions.WithLabelValues("found")))
	assert.Equal(t, float64(0), testutil.ToFloat64(b.Subscriptions.WithLabelValues("found")))
}

func TestMetrics_Recorders(t *testing.T) {
	m := New("test")

	m.ObserveProviderCall("flights", "calendar_date", "ok", 150*time.Millisecond)
	m.ObserveProviderCall("flights", "calendar_date", "ok", 50*time.Millisecond)
	m.IncResolution("", "no_flights_found")
	m.IncResolution("exact_date", "found")
	m.IncAlertDelivery("")
	m.IncWebhookRequest("/webhook/chat", http.StatusOK)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.ProviderCalls.WithLabelValues("flights", "calendar_date", "ok")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Resolutions.WithLabelValues("none", "no_flights_found")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Resolutions.WithLabelValues("exact_date", "found")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.AlertDeliveries.WithLabelValues("unknown")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.WebhookRequests.WithLabelValues("/webhook/chat", "OK")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.ProviderLatency))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveProviderCall("flights", "epoch_window", "error", time.Second)
		m.IncResolution("code_translation", "found")
		m.IncSubscription("provider_error")
		m.IncAlertDelivery("departure")
		m.IncWebhookRequest("/webhook/subscribe", http.StatusOK)
	})
	assert.Nil(t, m.Registry())
}

func TestMetrics_Handler(t *testing.T) {
	m := New("test")
	m.IncSubscription("found")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `test_subscriptions_total{outcome="found"} 1`)
}

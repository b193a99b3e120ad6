package http

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/flight-search/flight-webhook-adapter/internal/usecase"
)

// RegisterRoutes registers the health check and webhook routes.
func RegisterRoutes(e *echo.Echo, h *WebhookHandler) {
	e.GET("/health", h.Health)

	webhook := e.Group("/webhook")
	webhook.POST("/chat", h.Chat)
	webhook.POST("/subscribe", h.Subscribe)

	// the subscribe use case builds alert target URLs from this path
	e.POST(usecase.CallbackPath, h.AlertCallback)
}

// RegisterOpsRoutes registers the metrics exposition and API docs.
// A nil metricsHandler leaves /metrics unregistered.
func RegisterOpsRoutes(e *echo.Echo, metricsHandler nethttp.Handler) {
	if metricsHandler != nil {
		e.GET("/metrics", echo.WrapHandler(metricsHandler))
	}
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

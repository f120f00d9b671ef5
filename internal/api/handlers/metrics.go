package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// MetricsHandler exposes prometheus metrics
type MetricsHandler struct {
	handler http.Handler
	logger  *logrus.Logger
}

// NewMetricsHandler creates a new metrics handler serving the collectors of gatherer
func NewMetricsHandler(gatherer prometheus.Gatherer, logger *logrus.Logger) *MetricsHandler {
	return &MetricsHandler{
		handler: promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{
			ErrorLog: logger,
		}),
		logger: logger,
	}
}

// GetMetrics handles metrics request
// @Summary Get application metrics
// @Description Prometheus metrics in text exposition format
// @Tags Metrics
// @Produce plain
// @Success 200 {string} string
// @Router /metrics [get]
func (h *MetricsHandler) GetMetrics(c *gin.Context) {
	h.logger.WithField("request_id", c.GetString("request_id")).Debug("Serving metrics")
	h.handler.ServeHTTP(c.Writer, c.Request)
}

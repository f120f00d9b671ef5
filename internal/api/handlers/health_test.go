package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/nexconsult/cnpj-toolkit/internal/logger"
	"github.com/nexconsult/cnpj-toolkit/internal/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticHealth map[string]interface{}

func (s staticHealth) Health() map[string]interface{} {
	return s
}

func newHealthRouter(checker HealthChecker) *gin.Engine {
	h := NewHealthHandler(checker, logger.Discard())
	r := gin.New()
	r.GET("/health", h.GetHealth)
	r.GET("/health/ready", h.GetReadiness)
	r.GET("/health/live", h.GetLiveness)
	return r
}

func TestHealthHandler(t *testing.T) {
	var testCases = []struct {
		description string
		services    staticHealth
		status      string
		code        int
		readyCode   int
	}{
		{
			description: "all healthy",
			services: staticHealth{
				"cnpj":       map[string]interface{}{"status": "healthy"},
				"rate_store": map[string]interface{}{"status": "healthy", "backend": "memory"},
			},
			status:    "healthy",
			code:      http.StatusOK,
			readyCode: http.StatusOK,
		},
		{
			description: "redis degraded",
			services: staticHealth{
				"cnpj":       map[string]interface{}{"status": "healthy"},
				"rate_store": map[string]interface{}{"status": "degraded", "error": "dial tcp: refused"},
			},
			status:    "degraded",
			code:      http.StatusOK,
			readyCode: http.StatusOK,
		},
		{
			description: "engine broken",
			services: staticHealth{
				"cnpj": map[string]interface{}{"status": "unhealthy", "error": "round trip failed"},
			},
			status:    "unhealthy",
			code:      http.StatusServiceUnavailable,
			readyCode: http.StatusServiceUnavailable,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			r := newHealthRouter(testCase.services)

			w := do(r, http.MethodGet, "/health", "", "")
			require.Equal(t, testCase.code, w.Code)
			var response models.HealthResponse
			decode(t, w, &response)
			assert.Equal(t, testCase.status, response.Status)
			assert.Equal(t, Version, response.Version)
			assert.Len(t, response.Services, len(testCase.services))

			w = do(r, http.MethodGet, "/health/ready", "", "")
			assert.Equal(t, testCase.readyCode, w.Code)
		})
	}
}

func TestHealthHandler_Liveness(t *testing.T) {
	r := newHealthRouter(staticHealth{})

	w := do(r, http.MethodGet, "/health/live", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	decode(t, w, &body)
	assert.Equal(t, true, body["alive"])
}

func TestMetricsHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "cnpj_test_total", Help: "test"})
	reg.MustRegister(counter)
	counter.Add(3)

	r := gin.New()
	r.GET("/metrics", NewMetricsHandler(reg, logger.Discard()).GetMetrics)

	w := do(r, http.MethodGet, "/metrics", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "cnpj_test_total 3")
}

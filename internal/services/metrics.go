package services

import (
	"github.com/nexconsult/cnpj-toolkit/internal/cnpj"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the prometheus collectors of the CNPJ service
type Metrics struct {
	Validations *prometheus.CounterVec
	Generated   prometheus.Counter
	Extracted   *prometheus.CounterVec
	RateLimited prometheus.Counter
}

// NewMetrics creates the collectors and registers them on reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Validations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cnpj",
			Name:      "validations_total",
			Help:      "CNPJ validations by outcome.",
		}, []string{"outcome"}),
		Generated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "cnpj",
			Name:      "generated_total",
			Help:      "Fictitious CNPJs generated.",
		}),
		Extracted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cnpj",
			Name:      "extracted_total",
			Help:      "CNPJs extracted from documents by source.",
		}, []string{"source"}),
		RateLimited: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "cnpj",
			Name:      "rate_limited_total",
			Help:      "Requests rejected by the rate limiter.",
		}),
	}

	// pre-create every outcome series so dashboards show zeros
	for _, outcome := range cnpj.Outcomes() {
		m.Validations.WithLabelValues(outcome.String())
	}

	if reg != nil {
		reg.MustRegister(m.Validations, m.Generated, m.Extracted, m.RateLimited)
	}
	return m
}

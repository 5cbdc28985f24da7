package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the server's prometheus instruments, exported on /metrics.
type Metrics struct {
	ReportsGenerated *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	return &Metrics{
		ReportsGenerated: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "stockroom",
			Name:      "reports_generated_total",
			Help:      "PDF reports generated, by report type.",
		}, []string{"type"}),
	}
}

package transport

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics 暴露 requests_total / request_latency_ms。
type Metrics struct {
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

// NewMetrics 在注册器中注册客户端指标，reg 为空则注册到默认注册器。
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "monobank",
			Subsystem: "client",
			Name:      "requests_total",
			Help:      "Total number of API requests by endpoint template, method and outcome",
		}, []string{"endpoint", "method", "code"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "monobank",
			Subsystem: "client",
			Name:      "request_latency_ms",
			Help:      "Latency of API requests in milliseconds",
			Buckets:   []float64{10, 25, 50, 100, 200, 300, 500, 750, 1000, 2000, 5000},
		}, []string{"endpoint"}),
	}
	reg.MustRegister(m.requests, m.latency)
	return m
}

func (m *Metrics) observe(endpoint, method, code string, duration time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(endpoint, method, code).Inc()
	m.latency.WithLabelValues(endpoint).Observe(duration.Seconds() * 1000)
}

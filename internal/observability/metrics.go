// Package observability exposes the application's Prometheus instruments.
package observability

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jesus-or/facturas/internal/config"
	"github.com/jesus-or/facturas/internal/extract"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

var Module = fx.Module("observability",
	fx.Provide(New),
)

// Metrics captures extraction pipeline health signals.
type Metrics struct {
	classified   *prometheus.CounterVec
	fieldMisses  *prometheus.CounterVec
	ingested     *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

// New registers the instruments on the default registerer.
func New(cfg config.Config) *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer, cfg)
}

// NewWithRegisterer registers the instruments on an explicit registerer so
// tests can use an isolated registry.
func NewWithRegisterer(registerer prometheus.Registerer, cfg config.Config) *Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	serviceName := strings.TrimSpace(cfg.AppName)
	if serviceName == "" {
		serviceName = "facturas"
	}
	environment := strings.TrimSpace(cfg.Environment)
	if environment == "" {
		environment = "unknown"
	}
	constLabels := prometheus.Labels{
		"service": serviceName,
		"env":     environment,
	}

	classified := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name:        "facturas_classified_total",
		Help:        "Documents classified by vendor format, including unknown.",
		ConstLabels: constLabels,
	}, []string{"format"})
	fieldMisses := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name:        "facturas_field_miss_total",
		Help:        "Fields degraded to a sentinel value, by format and field.",
		ConstLabels: constLabels,
	}, []string{"format", "field"})
	ingested := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name:        "facturas_ingested_total",
		Help:        "Invoices persisted after extraction, by format.",
		ConstLabels: constLabels,
	}, []string{"format"})
	httpDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:        "facturas_http_request_duration_seconds",
		Help:        "HTTP request latency by route, method, and status.",
		Buckets:     []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		ConstLabels: constLabels,
	}, []string{"route", "method", "status"})

	registerer.MustRegister(
		classified,
		fieldMisses,
		ingested,
		httpDuration,
	)

	return &Metrics{
		classified:   classified,
		fieldMisses:  fieldMisses,
		ingested:     ingested,
		httpDuration: httpDuration,
	}
}

// Classified increments the classification counter for a format.
func (m *Metrics) Classified(format extract.FormatKind) {
	if m == nil || m.classified == nil {
		return
	}
	m.classified.WithLabelValues(string(format)).Inc()
}

// FieldMiss increments the sentinel degradation counter for a field.
func (m *Metrics) FieldMiss(format extract.FormatKind, field string) {
	if m == nil || m.fieldMisses == nil {
		return
	}
	m.fieldMisses.WithLabelValues(string(format), field).Inc()
}

// Ingested increments the persisted invoice counter for a format.
func (m *Metrics) Ingested(format extract.FormatKind) {
	if m == nil || m.ingested == nil {
		return
	}
	m.ingested.WithLabelValues(string(format)).Inc()
}

// ObserveHTTP records one request's latency.
func (m *Metrics) ObserveHTTP(route, method string, status int, duration time.Duration) {
	if m == nil || m.httpDuration == nil {
		return
	}
	m.httpDuration.WithLabelValues(route, method, strconv.Itoa(status)).Observe(duration.Seconds())
}

// GinMiddleware records request latency on every route.
func GinMiddleware(m *Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if strings.TrimSpace(route) == "" {
			route = "unknown"
		}
		m.ObserveHTTP(route, c.Request.Method, c.Writer.Status(), time.Since(start))
	}
}

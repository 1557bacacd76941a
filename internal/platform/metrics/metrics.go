// Package metrics expone las métricas Prometheus del servicio de animales.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"animals-safety/internal/domain/animals"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Manager agrupa las métricas del servicio. Cada Manager tiene su propio registry:
// tests y routers distintos no chocan al registrar.
type Manager struct {
	namespace        string
	histogramBuckets []float64
	registry         *prometheus.Registry

	created  prometheus.Counter
	rejected *prometheus.CounterVec
	records  prometheus.Gauge

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

var _ animals.Observer = (*Manager)(nil)

// NewManager crea el manager con la configuración por defecto.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "animals",
		histogramBuckets: prometheus.DefBuckets,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
		m.registry.MustRegister(collectors.NewGoCollector())
	}

	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.created = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "created_total",
		Help:      "Total de animales creados",
	})

	m.rejected = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "rejected_total",
		Help:      "Total de formularios rechazados por validación, por tipo de fallo",
	}, []string{"kind"})

	m.records = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "records",
		Help:      "Cantidad actual de registros en el store",
	})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "http_requests_total",
		Help:      "Total de requests HTTP por ruta, método y status",
	}, []string{"route", "method", "status"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duración de los requests HTTP en segundos",
		Buckets:   m.histogramBuckets,
	}, []string{"route", "method"})
}

// AnimalCreated implementa animals.Observer.
func (m *Manager) AnimalCreated(total int) {
	m.created.Inc()
	m.records.Set(float64(total))
}

// AnimalRejected implementa animals.Observer.
func (m *Manager) AnimalRejected(kind animals.FailureKind) {
	m.rejected.WithLabelValues(string(kind)).Inc()
}

// ObserveHTTP registra un request servido.
func (m *Manager) ObserveHTTP(route, method string, status int, d time.Duration) {
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(route, method).Observe(d.Seconds())
}

// Handler sirve el registry en formato de exposición Prometheus.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry devuelve el registry subyacente.
func (m *Manager) Registry() *prometheus.Registry { return m.registry }

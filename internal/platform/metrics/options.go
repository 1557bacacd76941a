package metrics

import "github.com/prometheus/client_golang/prometheus"

// Option configura el Manager.
type Option func(*Manager)

// WithNamespace fija el namespace de todas las métricas.
func WithNamespace(namespace string) Option {
	return func(m *Manager) {
		if namespace != "" {
			m.namespace = namespace
		}
	}
}

// WithHistogramBuckets reemplaza los buckets del histograma de duración.
func WithHistogramBuckets(buckets []float64) Option {
	return func(m *Manager) {
		if len(buckets) > 0 {
			m.histogramBuckets = buckets
		}
	}
}

// WithRegistry usa un registry propio para registrar y exponer.
func WithRegistry(registry *prometheus.Registry) Option {
	return func(m *Manager) {
		if registry != nil {
			m.registry = registry
		}
	}
}

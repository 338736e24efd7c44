// Package metrics exposes Prometheus instrumentation for the readability
// service on a private registry.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "kincaid"

// Metrics holds every collector the service records into.
type Metrics struct {
	registry *prometheus.Registry

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	analyzedTexts   prometheus.Counter
	analyzedWords   prometheus.Counter
	syllableWords   prometheus.Counter
}

// New registers all collectors, plus the Go runtime and process
// collectors, on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		requestsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests by method, route and status code",
		}, []string{"method", "route", "status"}),
		requestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"method", "route"}),
		analyzedTexts: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analyzed_texts_total",
			Help:      "Total texts scored",
		}),
		analyzedWords: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analyzed_words_total",
			Help:      "Total words across scored texts",
		}),
		syllableWords: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "syllable_lookups_total",
			Help:      "Total words sent to the syllable endpoint",
		}),
	}
}

// ObserveRequest records one finished HTTP request. route is the matched
// mux pattern, never the raw path, to keep label cardinality bounded.
func (m *Metrics) ObserveRequest(method, route string, status int, d time.Duration) {
	m.requestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// RecordAnalysis counts one scored text of the given word count.
func (m *Metrics) RecordAnalysis(words int) {
	m.analyzedTexts.Inc()
	m.analyzedWords.Add(float64(words))
}

// RecordSyllableLookups counts n words looked up individually.
func (m *Metrics) RecordSyllableLookups(n int) {
	m.syllableWords.Add(float64(n))
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Package metrics holds the Prometheus instruments of a wordgraph session.
//
// All instruments live under the "wordgraph" namespace and are registered on
// the Registerer passed to New, so tests can use an isolated
// prometheus.NewRegistry(). Operations are goroutine-safe.
package metrics

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

const namespace = "wordgraph"

// Result labels for QueriesTotal.
const (
	ResultOK      = "ok"
	ResultUnknown = "unknown_word"
	ResultError   = "error"
)

// Metrics groups the session instruments.
type Metrics struct {
	// QueriesTotal counts queries by operation and outcome.
	// Labels: op (bridge, generate, path, all_paths, pagerank, walk, load, merge), result
	QueriesTotal *prometheus.CounterVec

	// QueryDuration measures query latency.
	// Labels: op
	QueryDuration *prometheus.HistogramVec

	// Vertices and Edges track the size of the current graph.
	Vertices prometheus.Gauge
	Edges    prometheus.Gauge

	// PathCacheHits and PathCacheMisses count lookups of cached shortest-path trees.
	PathCacheHits   prometheus.Counter
	PathCacheMisses prometheus.Counter
}

// New creates and registers all instruments on reg.
// Registering twice on the same registry panics, as promauto does.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		QueriesTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "queries_total",
			Help:      "Total graph queries by operation and result",
		}, []string{"op", "result"}),
		QueryDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "query_duration_seconds",
			Help:      "Graph query duration in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
		}, []string{"op"}),
		Vertices: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "vertices",
			Help:      "Number of words in the current graph",
		}),
		Edges: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "edges",
			Help:      "Number of distinct directed edges in the current graph",
		}),
		PathCacheHits: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "path_cache_hits_total",
			Help:      "Shortest-path tree cache hits",
		}),
		PathCacheMisses: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "path_cache_misses_total",
			Help:      "Shortest-path tree cache misses",
		}),
	}
}

// Observe records one query. A nil receiver is a no-op.
func (m *Metrics) Observe(op, result string, started time.Time) {
	if m == nil {
		return
	}
	m.QueriesTotal.WithLabelValues(op, result).Inc()
	m.QueryDuration.WithLabelValues(op).Observe(time.Since(started).Seconds())
}

// SetGraphSize updates the size gauges. A nil receiver is a no-op.
func (m *Metrics) SetGraphSize(vertices, edges int) {
	if m == nil {
		return
	}
	m.Vertices.Set(float64(vertices))
	m.Edges.Set(float64(edges))
}

// CacheHit records a path cache lookup. A nil receiver is a no-op.
func (m *Metrics) CacheHit(hit bool) {
	if m == nil {
		return
	}
	if hit {
		m.PathCacheHits.Inc()
		return
	}
	m.PathCacheMisses.Inc()
}

// Dump writes every metric family gathered from g in the Prometheus text format.
func Dump(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("metrics: gather: %w", err)
	}

	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("metrics: encode %s: %w", mf.GetName(), err)
		}
	}

	return nil
}

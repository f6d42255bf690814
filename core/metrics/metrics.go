// Package metrics exposes Prometheus counters for the converter.
// A nil *Metrics is valid and records nothing.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	MetricsNamespace          = "htmladf"
	MetricsSubsystemConverter = "converter"

	TagLabel = "tag"
)

type Metrics struct {
	registry *prometheus.Registry

	conversionsTotal    prometheus.Counter
	prunedElementsTotal *prometheus.CounterVec
	droppedBranchTotal  prometheus.Counter
}

// NewMetrics creates the collectors on a private registry.
func NewMetrics() *Metrics {
	m := &Metrics{registry: prometheus.NewRegistry()}

	m.conversionsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Subsystem: MetricsSubsystemConverter,
		Name:      "conversions_total",
		Help:      "The total number of documents converted.",
	})
	m.registry.MustRegister(m.conversionsTotal)

	m.prunedElementsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Subsystem: MetricsSubsystemConverter,
		Name:      "pruned_elements_total",
		Help:      "The total number of element subtrees dropped, by tag.",
	}, []string{TagLabel})
	m.registry.MustRegister(m.prunedElementsTotal)

	m.droppedBranchTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Subsystem: MetricsSubsystemConverter,
		Name:      "dropped_branches_total",
		Help:      "The total number of mark element children skipped by first-child collapsing.",
	})
	m.registry.MustRegister(m.droppedBranchTotal)

	return m
}

func (m *Metrics) GetRegistry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

func (m *Metrics) IncrementConversions() {
	if m == nil {
		return
	}
	m.conversionsTotal.Inc()
}

func (m *Metrics) IncrementPruned(tag string) {
	if m == nil {
		return
	}
	m.prunedElementsTotal.WithLabelValues(tag).Inc()
}

func (m *Metrics) AddDroppedBranches(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.droppedBranchTotal.Add(float64(n))
}

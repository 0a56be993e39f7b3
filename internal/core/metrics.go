package core

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	apiRequests     *prometheus.CounterVec
	insightRequests *prometheus.CounterVec
	importedEntries prometheus.Counter
}

func NewMetrics(namespace, subsystem string) *Metrics {
	return &Metrics{
		apiRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "api_requests_total",
			Help:      "API requests by path and status code.",
		}, []string{"path", "code"}),
		insightRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "insight_requests_total",
			Help:      "Insight generation attempts by driver and outcome.",
		}, []string{"driver", "outcome"}),
		importedEntries: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "imported_entries_total",
			Help:      "Journal entries created through file import.",
		}),
	}
}

func (m *Metrics) CountAPIRequest(path, code string) {
	m.apiRequests.WithLabelValues(path, code).Inc()
}

func (m *Metrics) CountInsight(driver, outcome string) {
	m.insightRequests.WithLabelValues(driver, outcome).Inc()
}

func (m *Metrics) CountImported(n int) {
	m.importedEntries.Add(float64(n))
}

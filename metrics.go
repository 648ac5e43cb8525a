package atomlint

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	metricsOnce   sync.Once
	entriesTotal  prometheus.Counter
	findingsTotal *prometheus.CounterVec
)

func setupMetrics() (
	totalCounter prometheus.Counter,
	findingCounterVec *prometheus.CounterVec,
) {

	const prometheusLabelLevel = "level"

	totalCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "atomlint_entries_total",
		Help: "number of entries linted since start of atomlint",
	})

	findingCounterVec = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "atomlint_findings_total",
			Help: "reported findings by level",
		},
		[]string{prometheusLabelLevel},
	)

	prometheus.MustRegister(
		totalCounter,
		findingCounterVec,
	)

	return
}

func trackReport(report *Report) {
	metricsOnce.Do(func() {
		entriesTotal, findingsTotal = setupMetrics()
	})
	for _, result := range report.Results {
		entriesTotal.Inc()
		for _, finding := range result.Findings {
			level := "advice"
			if finding.Demand {
				level = "demand"
			}
			findingsTotal.WithLabelValues(level).Inc()
		}
	}
}

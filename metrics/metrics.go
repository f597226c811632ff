// Package metrics exposes Prometheus counters and gauges describing test
// runs. Recording is fire-and-forget; nothing in the engine depends on these
// values.
package metrics

import (
	"github.com/ethereum/go-ethereum/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	MetricsNamespace = "verdict"
)

var (
	Debug bool = false

	testsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Name:      "tests_total",
		Help:      "Count of executed tests",
	}, []string{
		"suite",
		"result",
	})

	suiteTestsPassed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Name:      "suite_tests_passed",
		Help:      "Number of passed tests per suite",
	}, []string{
		"run_id",
		"suite",
	})

	suiteTestsFailed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Name:      "suite_tests_failed",
		Help:      "Number of failed tests per suite",
	}, []string{
		"run_id",
		"suite",
	})

	runSuccessRate = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: MetricsNamespace,
		Name:      "run_success_rate",
		Help:      "Overall success rate of a run",
	}, []string{
		"run_id",
	})
)

// RecordTest counts one executed test.
func RecordTest(suite string, passed bool) {
	result := "fail"
	if passed {
		result = "pass"
	}
	if Debug {
		log.Debug("metric inc",
			"m", "tests_total",
			"suite", suite,
			"result", result,
		)
	}
	testsTotal.WithLabelValues(suite, result).Inc()
}

// RecordSuite records one suite's aggregate counts for a run.
func RecordSuite(runID string, suite string, passed int, failed int) {
	if Debug {
		log.Debug("metric add",
			"m", "suite_tests",
			"run_id", runID,
			"suite", suite,
			"passed", passed,
			"failed", failed,
		)
	}
	suiteTestsPassed.WithLabelValues(runID, suite).Add(float64(passed))
	suiteTestsFailed.WithLabelValues(runID, suite).Add(float64(failed))
}

// RecordRun records the overall success rate of a completed run.
func RecordRun(runID string, rate float64) {
	runSuccessRate.WithLabelValues(runID).Set(rate)
}

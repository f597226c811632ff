// Package reporting renders cross-suite run reports: a per-suite table, a
// localized human summary and a compact machine-readable summary. It consumes
// plain per-suite statistics so it stays independent of the engine's types.
package reporting

import (
	"fmt"
	"strings"
)

// SuiteStats is one suite's aggregate outcome.
type SuiteStats struct {
	Name    string
	Passed  int
	Failed  int
	Total   int
	Details string  // one '+'/'-' per test, in order
	Rate    float64 // passed/total, 1.0 for an empty suite
}

// CSVSummary renders the machine-readable run summary: four lines covering
// per-suite ratios, per-test details, per-suite passed counts and per-suite
// success rates.
//
//	3/5 2/2
//	+;+;-;+;-;;+;+
//	3;2
//	0.600;1.000
func CSVSummary(stats []SuiteStats) string {
	ratios := make([]string, len(stats))
	details := make([]string, len(stats))
	passed := make([]string, len(stats))
	rates := make([]string, len(stats))
	for i, s := range stats {
		ratios[i] = fmt.Sprintf("%d/%d", s.Passed, s.Total)
		marks := make([]string, len(s.Details))
		for j, c := range s.Details {
			marks[j] = string(c)
		}
		details[i] = strings.Join(marks, ";")
		passed[i] = fmt.Sprintf("%d", s.Passed)
		rates[i] = fmt.Sprintf("%.3f", s.Rate)
	}
	return strings.Join([]string{
		strings.Join(ratios, " "),
		strings.Join(details, ";;"),
		strings.Join(passed, ";"),
		strings.Join(rates, ";"),
	}, "\n")
}

package verdict

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/verdictkit/verdict/metrics"
	"github.com/verdictkit/verdict/reporting"
)

// Suite is an ordered, named collection of tests run together and reported as
// one Results.
type Suite struct {
	name  string
	tests []*Test
}

// NewSuite wires a name and an ordered list of tests.
func NewSuite(name string, tests ...*Test) *Suite {
	if name == "" {
		panic("verdict: suite name must not be empty")
	}
	for _, t := range tests {
		if t == nil {
			panic("verdict: suite must not contain nil tests")
		}
	}
	owned := make([]*Test, len(tests))
	copy(owned, tests)
	return &Suite{name: name, tests: owned}
}

// Name returns the suite's identity.
func (s *Suite) Name() string { return s.name }

// Run executes every test in order against cfg and aggregates the outcomes.
// A failing test never stops the suite; all tests run and are reported.
func (s *Suite) Run(ctx context.Context, cfg *Config) *Results {
	s.printHeader(cfg)

	outcomes := make([]Result, 0, len(s.tests))
	for _, t := range s.tests {
		r := t.Run(ctx, cfg)
		metrics.RecordTest(s.name, r.IsSuccess())
		outcomes = append(outcomes, r)
	}
	results := NewResults(outcomes)

	cfg.Logger.Println(results.Format(cfg) + "\n")
	cfg.Logger.Flush()
	return results
}

func (s *Suite) printHeader(cfg *Config) {
	title := cfg.msg("suite.for", s.name)
	if cfg.Logger.SupportsColor() {
		cfg.Logger.Println(cfg.underline(cfg.bold(cfg.blue(title))) + "\n")
	} else {
		cfg.Logger.Println(title)
		cfg.Logger.Println(strings.Repeat("=", utf8.RuneCountInString(title)) + "\n")
	}
}

// Summary rolls suite results into cross-suite statistics.
type Summary struct {
	Suites      int
	Total       int
	Passed      int
	Failed      int
	SuccessRate float64 // 1.0 when no tests ran
}

// Summarize computes the cross-suite summary for an ordered list of suite
// results.
func Summarize(all []*Results) Summary {
	s := Summary{Suites: len(all)}
	for _, r := range all {
		s.Total += r.Total()
		s.Passed += r.Passed()
		s.Failed += r.Failed()
	}
	if s.Total == 0 {
		s.SuccessRate = 1.0
	} else {
		s.SuccessRate = float64(s.Passed) / float64(s.Total)
	}
	return s
}

// RunAll executes each suite in order against the shared configuration, then
// prints the cross-suite report: a per-suite table, a localized summary block
// and, when the configuration requests it, the compact machine-readable
// summary. It returns the summary plus each suite's Results in order.
func RunAll(ctx context.Context, cfg *Config, suites ...*Suite) (Summary, []*Results) {
	runID := uuid.New().String()
	diag := cfg.diag()
	diag.Info("Starting run", "run_id", runID, "suites", len(suites))

	all := make([]*Results, 0, len(suites))
	stats := make([]reporting.SuiteStats, 0, len(suites))
	for _, s := range suites {
		r := s.Run(ctx, cfg)
		all = append(all, r)
		metrics.RecordSuite(runID, s.name, r.Passed(), r.Failed())
		diag.Debug("Suite completed",
			"run_id", runID,
			"suite", s.name,
			"passed", r.Passed(),
			"failed", r.Failed(),
			"details", r.Details())
		stats = append(stats, reporting.SuiteStats{
			Name:    s.name,
			Passed:  r.Passed(),
			Failed:  r.Failed(),
			Total:   r.Total(),
			Details: r.Details(),
			Rate:    r.SuccessRate(),
		})
	}

	summary := Summarize(all)
	metrics.RecordRun(runID, summary.SuccessRate)
	diag.Info("Run completed",
		"run_id", runID,
		"total", summary.Total,
		"passed", summary.Passed,
		"failed", summary.Failed,
		"success_rate", summary.SuccessRate)

	colored := cfg.Logger.SupportsColor()
	cfg.Logger.Println(reporting.SuiteTable(stats, cfg.Renderer(), colored))
	cfg.Logger.Println(reporting.FormatSummary(stats, cfg.Renderer(), colored))
	if cfg.CSVSummary {
		cfg.Logger.Println(reporting.CSVSummary(stats))
	}
	cfg.Logger.Flush()

	return summary, all
}

package verdict

import (
	"strings"
)

// Results aggregates the outcomes of one suite run. The sequence preserves
// test order; counts and the detail string are computed once at construction
// and never change.
type Results struct {
	results []Result
	passed  int
	failed  int
	details string
}

// NewResults wraps an ordered sequence of test outcomes. The slice is copied;
// the caller keeps ownership of its own slice.
func NewResults(results []Result) *Results {
	rs := make([]Result, len(results))
	copy(rs, results)

	var b strings.Builder
	passed := 0
	for _, r := range rs {
		if r.IsSuccess() {
			passed++
			b.WriteByte('+')
		} else {
			b.WriteByte('-')
		}
	}
	return &Results{
		results: rs,
		passed:  passed,
		failed:  len(rs) - passed,
		details: b.String(),
	}
}

// Passed returns the number of successful tests.
func (r *Results) Passed() int { return r.passed }

// Failed returns the number of failed tests.
func (r *Results) Failed() int { return r.failed }

// Total returns the number of tests run.
func (r *Results) Total() int { return len(r.results) }

// SuccessRate returns passed/total, or 1.0 for an empty suite.
func (r *Results) SuccessRate() float64 {
	if len(r.results) == 0 {
		return 1.0
	}
	return float64(r.passed) / float64(len(r.results))
}

// Details returns one character per test in order: '+' for success, '-' for
// failure.
func (r *Results) Details() string { return r.details }

// IsSuccessful reports whether every test passed.
func (r *Results) IsSuccessful() bool { return r.failed == 0 }

// All returns the outcomes in test order.
func (r *Results) All() []Result {
	out := make([]Result, len(r.results))
	copy(out, r.results)
	return out
}

// Format renders the localized per-suite summary line, e.g.
//
//	Passed: 3  Failed: 2  Total: 5  Detail: ++-+-
func (r *Results) Format(cfg *Config) string {
	var b strings.Builder
	b.WriteString(cfg.bold(cfg.green(cfg.msg("results.passed"))))
	b.WriteString(": ")
	b.WriteString(cfg.green(itoa(r.passed)))
	b.WriteString("  ")
	b.WriteString(cfg.bold(cfg.red(cfg.msg("results.failed"))))
	b.WriteString(": ")
	b.WriteString(cfg.red(itoa(r.failed)))
	b.WriteString("  ")
	b.WriteString(cfg.bold(cfg.msg("results.total")))
	b.WriteString(": ")
	b.WriteString(itoa(r.Total()))
	b.WriteString("  ")
	b.WriteString(cfg.bold(cfg.msg("results.detail")))
	b.WriteString(": ")
	for _, c := range r.details {
		if c == '+' {
			b.WriteString(cfg.green("+"))
		} else {
			b.WriteString(cfg.red("-"))
		}
	}
	return b.String()
}

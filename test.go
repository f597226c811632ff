package verdict

import (
	"context"
)

// Test is a single named check. Construction validates identity and timeout;
// afterwards a Test is immutable and may be run any number of times, each run
// being an independent evaluation.
type Test struct {
	name            string
	timeoutOverride int // seconds; 0 means "use the configuration default"
	exec            func(ctx context.Context, cfg *Config) Result
}

// newTest wires a name, an optional timeout override and the family-specific
// evaluation logic. Precondition violations are programming errors at test
// definition time and panic rather than becoming results.
func newTest(name string, timeoutOverride int, exec func(context.Context, *Config) Result) *Test {
	if name == "" {
		panic("verdict: test name must not be empty")
	}
	if timeoutOverride < 0 {
		panic("verdict: timeout override must be positive")
	}
	if exec == nil {
		panic("verdict: test has no evaluation logic")
	}
	return &Test{name: name, timeoutOverride: timeoutOverride, exec: exec}
}

// Name returns the test's identity.
func (t *Test) Name() string { return t.name }

// Run executes the test once: notify start, resolve the effective timeout,
// evaluate, notify the outcome, return it. Run never fails; every evaluation
// condition is folded into the returned Result.
func (t *Test) Run(ctx context.Context, cfg *Config) Result {
	cfg.Logger.Start(t.name, cfg)

	timeout := cfg.Timeout
	if t.timeoutOverride > 0 {
		timeout = t.timeoutOverride
	}
	derived := cfg.withTimeout(timeout)

	result := t.exec(ctx, derived)

	cfg.Logger.Result(result, cfg)
	cfg.Logger.Println("")
	cfg.Logger.Flush()
	return result
}

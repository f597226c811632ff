package verdict

import (
	"context"
	"reflect"
)

// EqualOpts tunes an equality test. Zero values mean defaults: structural
// equality via reflect.DeepEqual, %v formatting, the configuration timeout.
type EqualOpts[T any] struct {
	Equals  func(a, b T) bool
	Format  func(T) string
	Timeout int // seconds; overrides the configuration default when positive
}

// Equal defines a test that passes when the computed value is structurally
// equal to expected.
func Equal[T any](name string, thunk Thunk[T], expected T) *Test {
	return EqualWith(name, thunk, expected, EqualOpts[T]{})
}

// EqualWith is Equal with an explicit equality relation, formatter or timeout.
func EqualWith[T any](name string, thunk Thunk[T], expected T, opts EqualOpts[T]) *Test {
	if thunk == nil {
		panic("verdict: computation must not be nil")
	}
	equals := opts.Equals
	if equals == nil {
		equals = func(a, b T) bool { return reflect.DeepEqual(a, b) }
	}
	format := opts.Format
	if format == nil {
		format = formatValue[T]
	}

	exec := func(ctx context.Context, cfg *Config) Result {
		// Rendered before evaluation so formatting cost never races the
		// timeout budget.
		desc := cfg.msg("expected.result", cfg.green(format(expected)))

		out := evaluate(ctx, thunk, cfg.Timeout)
		switch out.kind {
		case outcomeValue:
			if equals(expected, out.value) {
				return Success{}
			}
			return EqualityFailure{
				Expected: expected,
				Actual:   out.value,
				Format:   anyFormatter(format),
			}
		case outcomeTimedOut:
			return TimeoutFailure{Timeout: cfg.Timeout, Expectation: desc}
		default:
			return UnexpectedErrorFailure{Thrown: out.err, Expectation: desc}
		}
	}
	return newTest(name, opts.Timeout, exec)
}

package verdict

import (
	"context"
)

// PropertyOpts tunes a property test. Help describes the property in prose
// and appears in failure messages; HelpKey names a catalog key instead, so
// the description follows the run's language. When both are set, Help wins.
type PropertyOpts[T any] struct {
	Format    func(T) string
	FormatKey func(T) string // catalog key describing the obtained value
	Help      string
	HelpKey   string
	Timeout   int // seconds; overrides the configuration default when positive
}

// Property defines a test that passes when predicate holds for the computed
// value.
func Property[T any](name string, thunk Thunk[T], predicate func(T) bool) *Test {
	return PropertyWith(name, thunk, predicate, PropertyOpts[T]{})
}

// PropertyWith is Property with a description, formatter or timeout.
func PropertyWith[T any](name string, thunk Thunk[T], predicate func(T) bool, opts PropertyOpts[T]) *Test {
	if thunk == nil {
		panic("verdict: computation must not be nil")
	}
	if predicate == nil {
		panic("verdict: property predicate must not be nil")
	}
	format := opts.Format
	if format == nil && opts.FormatKey == nil {
		format = formatValue[T]
	}

	exec := func(ctx context.Context, cfg *Config) Result {
		desc := cfg.msg("property.failure.base")
		switch {
		case opts.Help != "":
			desc += cfg.msg("property.failure.suffix", cfg.green(opts.Help))
		case opts.HelpKey != "":
			desc += cfg.msg("property.failure.suffix", cfg.green(cfg.msg(opts.HelpKey)))
		}
		render := func(v any) string {
			if opts.FormatKey != nil {
				return cfg.msg(opts.FormatKey(v.(T)))
			}
			return format(v.(T))
		}

		out := evaluate(ctx, thunk, cfg.Timeout)
		switch out.kind {
		case outcomeValue:
			if predicate(out.value) {
				return Success{}
			}
			return PropertyFailure{
				Actual:      out.value,
				Format:      render,
				Description: desc,
			}
		case outcomeTimedOut:
			return TimeoutFailure{Timeout: cfg.Timeout, Expectation: desc}
		default:
			return UnexpectedErrorFailure{Thrown: out.err, Expectation: desc}
		}
	}
	return newTest(name, opts.Timeout, exec)
}

// Assert defines a property test over a boolean computation that passes when
// the value is true.
func Assert(name string, thunk Thunk[bool]) *Test {
	return assertWith(name, thunk, 0)
}

// AssertTimeout is Assert with a per-test timeout in seconds.
func AssertTimeout(name string, thunk Thunk[bool], timeout int) *Test {
	return assertWith(name, thunk, timeout)
}

func assertWith(name string, thunk Thunk[bool], timeout int) *Test {
	return PropertyWith(name, thunk, func(v bool) bool { return v }, PropertyOpts[bool]{
		FormatKey: func(v bool) string {
			if v {
				return "property.was.true"
			}
			return "property.was.false"
		},
		HelpKey: "property.must.be.true",
		Timeout: timeout,
	})
}

// Refute defines a property test over a boolean computation that passes when
// the value is false.
func Refute(name string, thunk Thunk[bool]) *Test {
	return refuteWith(name, thunk, 0)
}

// RefuteTimeout is Refute with a per-test timeout in seconds.
func RefuteTimeout(name string, thunk Thunk[bool], timeout int) *Test {
	return refuteWith(name, thunk, timeout)
}

func refuteWith(name string, thunk Thunk[bool], timeout int) *Test {
	return PropertyWith(name, thunk, func(v bool) bool { return !v }, PropertyOpts[bool]{
		FormatKey: func(v bool) string {
			if v {
				return "property.was.true"
			}
			return "property.was.false"
		},
		HelpKey: "property.must.be.false",
		Timeout: timeout,
	})
}

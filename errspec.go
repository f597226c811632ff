package verdict

import (
	"context"
	"errors"
	"reflect"
	"sort"
)

// ErrorKind is a named acceptability test over thrown errors. Matching walks
// wrapped error chains, so a kind accepts errors wrapping one of its
// instances the same way it accepts the instance itself.
type ErrorKind struct {
	name  string
	match func(error) bool
}

// Name returns the kind's display name, used in expectation descriptions.
func (k ErrorKind) Name() string { return k.name }

// Matches reports whether err is an instance of this kind.
func (k ErrorKind) Matches(err error) bool { return k.match(err) }

// KindOf builds an ErrorKind matching the concrete error type E anywhere in
// the chain, named after E's type.
func KindOf[E error]() ErrorKind {
	var zero E
	t := reflect.TypeOf(&zero).Elem()
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	name := t.Name()
	if name == "" {
		name = t.String()
	}
	return ErrorKind{
		name: name,
		match: func(err error) bool {
			var target E
			return errors.As(err, &target)
		},
	}
}

// KindIs builds an ErrorKind matching a sentinel error via errors.Is.
func KindIs(name string, sentinel error) ErrorKind {
	if name == "" {
		panic("verdict: error kind name must not be empty")
	}
	if sentinel == nil {
		panic("verdict: sentinel error must not be nil")
	}
	return ErrorKind{
		name:  name,
		match: func(err error) bool { return errors.Is(err, sentinel) },
	}
}

// KindFunc builds an ErrorKind from an arbitrary predicate.
func KindFunc(name string, match func(error) bool) ErrorKind {
	if name == "" {
		panic("verdict: error kind name must not be empty")
	}
	if match == nil {
		panic("verdict: error kind predicate must not be nil")
	}
	return ErrorKind{name: name, match: match}
}

// Unsupported matches errors.ErrUnsupported, the conventional "operation not
// implemented" sentinel.
var Unsupported = KindIs("ErrUnsupported", errors.ErrUnsupported)

// ErrorOpts tunes an error-expectation test. Message requirements resolve in
// fixed priority: an exact Message, when present, is the only requirement and
// any MessageCheck is ignored; otherwise MessageCheck applies, defaulting to
// accept-anything. MessageHelp is the prose shown when describing a
// MessageCheck.
type ErrorOpts[T any] struct {
	Message      *string
	MessageCheck func(string) bool
	MessageHelp  string
	Format       func(T) string
	Timeout      int // seconds; overrides the configuration default when positive
}

// Ptr is a convenience for ErrorOpts.Message literals.
func Ptr[T any](v T) *T { return &v }

// errorExpectation is the classification engine's parameterization: an
// acceptable-kind predicate plus a message requirement.
type errorExpectation struct {
	typeOK      func(error) bool
	exact       *string
	check       func(string) bool
	descKey     string
	descArgs    []HelpArg
	detailKey   string
	detailValue HelpArg
}

func (e *errorExpectation) messageOK(msg string) bool {
	if e.exact != nil {
		return msg == *e.exact
	}
	if e.check != nil {
		return e.check(msg)
	}
	return true
}

// descKeyFor selects the sentence template: the base varies with the kind
// predicate's shape, the suffix with the active message requirement.
func descKeyFor[T any](base string, opts ErrorOpts[T]) string {
	switch {
	case opts.Message != nil:
		return base + ".with.message.description"
	case opts.MessageCheck != nil && opts.MessageHelp != "":
		return base + ".with.predicate.description"
	default:
		return base + ".description"
	}
}

func buildExpectation[T any](base string, typeArg HelpArg, typeOK func(error) bool, opts ErrorOpts[T]) errorExpectation {
	exp := errorExpectation{
		typeOK:   typeOK,
		exact:    opts.Message,
		check:    opts.MessageCheck,
		descKey:  descKeyFor(base, opts),
		descArgs: []HelpArg{typeArg},
	}
	switch {
	case opts.Message != nil:
		exp.descArgs = append(exp.descArgs, ExactMessage{Text: *opts.Message})
		exp.detailKey = "detail.expected.exact.message"
		exp.detailValue = ExactMessage{Text: *opts.Message}
	case opts.MessageCheck != nil && opts.MessageHelp != "":
		exp.descArgs = append(exp.descArgs, PredicateHelp{Text: opts.MessageHelp})
		exp.detailKey = "detail.expected.predicate"
		exp.detailValue = PredicateHelp{Text: opts.MessageHelp}
	}
	return exp
}

// errorTest is the shared execution for all error-expectation families.
func errorTest[T any](name string, thunk Thunk[T], exp errorExpectation, opts ErrorOpts[T]) *Test {
	if thunk == nil {
		panic("verdict: computation must not be nil")
	}
	format := opts.Format
	if format == nil {
		format = formatValue[T]
	}

	exec := func(ctx context.Context, cfg *Config) Result {
		// Descriptions are rendered up front so they never compete with the
		// evaluation's time budget.
		desc := describeExpectation(cfg, exp.descKey, exp.descArgs...)
		expectedDesc := cfg.msg("expected", desc)
		detail := ""
		if exp.detailKey != "" {
			detail = describeExpectation(cfg, exp.detailKey, exp.detailValue)
		}

		out := evaluate(ctx, thunk, cfg.Timeout)
		switch out.kind {
		case outcomeValue:
			return NoErrorFailure{
				Value:       out.value,
				Format:      anyFormatter(format),
				Expectation: desc,
			}
		case outcomeTimedOut:
			return TimeoutFailure{Timeout: cfg.Timeout, Expectation: expectedDesc}
		case outcomeInterrupted:
			return UnexpectedErrorFailure{Thrown: out.err, Expectation: expectedDesc}
		}

		err := out.err
		// An interruption surfacing as the thrown condition is never "the
		// expected error", whatever kinds the test accepts.
		if errors.Is(err, context.Canceled) {
			return UnexpectedErrorFailure{Thrown: err, Expectation: expectedDesc}
		}

		typeOK := exp.typeOK(err)
		msgOK := exp.messageOK(err.Error())
		switch {
		case typeOK && msgOK:
			return Success{}
		case !typeOK && !msgOK:
			return WrongErrorAndMessageFailure{Thrown: err, Expectation: desc}
		case !typeOK:
			return WrongErrorTypeFailure{Thrown: err, Expectation: desc}
		default:
			return WrongErrorMessageFailure{Thrown: err, Expectation: desc, Detail: detail}
		}
	}
	return newTest(name, opts.Timeout, exec)
}

// ExpectError defines a test that passes only when the computation returns an
// error of the given kind.
func ExpectError[T any](name string, thunk Thunk[T], kind ErrorKind) *Test {
	return ExpectErrorWith(name, thunk, kind, ErrorOpts[T]{})
}

// ExpectErrorWith is ExpectError with a message requirement, formatter or
// timeout.
func ExpectErrorWith[T any](name string, thunk Thunk[T], kind ErrorKind, opts ErrorOpts[T]) *Test {
	exp := buildExpectation("error", TypeName{Name: kind.name}, kind.match, opts)
	return errorTest(name, thunk, exp, opts)
}

// ExpectErrorOneOf defines a test that passes when the computation returns an
// error matching at least one of the given kinds. The kind set must be
// non-empty.
func ExpectErrorOneOf[T any](name string, thunk Thunk[T], kinds ...ErrorKind) *Test {
	return ExpectErrorOneOfWith(name, thunk, kinds, ErrorOpts[T]{})
}

// ExpectErrorOneOfWith is ExpectErrorOneOf with a message requirement,
// formatter or timeout.
func ExpectErrorOneOfWith[T any](name string, thunk Thunk[T], kinds []ErrorKind, opts ErrorOpts[T]) *Test {
	if len(kinds) == 0 {
		panic("verdict: at least one error kind is required")
	}
	if len(kinds) == 1 {
		return ExpectErrorWith(name, thunk, kinds[0], opts)
	}
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.name
	}
	sort.Strings(names)
	accepted := make([]ErrorKind, len(kinds))
	copy(accepted, kinds)
	typeOK := func(err error) bool {
		for _, k := range accepted {
			if k.match(err) {
				return true
			}
		}
		return false
	}
	exp := buildExpectation("error.oneof", newTypeNameList(names), typeOK, opts)
	return errorTest(name, thunk, exp, opts)
}

// ExpectAnyErrorBut defines a test that passes when the computation returns
// any error except one of the excluded kind.
func ExpectAnyErrorBut[T any](name string, thunk Thunk[T], excluded ErrorKind) *Test {
	return ExpectAnyErrorButWith(name, thunk, excluded, ErrorOpts[T]{})
}

// ExpectAnyErrorButWith is ExpectAnyErrorBut with a message requirement,
// formatter or timeout.
func ExpectAnyErrorButWith[T any](name string, thunk Thunk[T], excluded ErrorKind, opts ErrorOpts[T]) *Test {
	typeOK := func(err error) bool { return !excluded.match(err) }
	exp := buildExpectation("error.except", TypeName{Name: excluded.name}, typeOK, opts)
	return errorTest(name, thunk, exp, opts)
}

// ExpectAnyErrorButUnsupported defines a test that passes when the
// computation returns any error other than errors.ErrUnsupported.
func ExpectAnyErrorButUnsupported[T any](name string, thunk Thunk[T]) *Test {
	return ExpectAnyErrorBut(name, thunk, Unsupported)
}

// ExpectAnyErrorButUnsupportedWith is ExpectAnyErrorButUnsupported with a
// message requirement, formatter or timeout.
func ExpectAnyErrorButUnsupportedWith[T any](name string, thunk Thunk[T], opts ErrorOpts[T]) *Test {
	return ExpectAnyErrorButWith(name, thunk, Unsupported, opts)
}

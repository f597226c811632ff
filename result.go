package verdict

import (
	"reflect"
)

// Result is the outcome of one test execution. The set of implementations is
// closed: Success plus the failure variants below. Each variant carries
// exactly the data its message needs, including the expectation description
// rendered before the bounded evaluation started, so rendering never competes
// with the timeout budget.
type Result interface {
	IsSuccess() bool
	// Message renders the localized, optionally colored description of this
	// outcome. It is pure given the variant's payload and the configuration's
	// renderer.
	Message(cfg *Config) string

	sealedResult()
}

// failedMarker is the standard "TEST FAILED!" marker, localized, red, bold.
func failedMarker(cfg *Config) string {
	return cfg.bold(cfg.red(cfg.msg("failed")))
}

// errorTypeName reports a display name for a thrown error's dynamic type,
// dereferencing pointers so *fs.PathError shows as PathError.
func errorTypeName(err error) string {
	t := reflect.TypeOf(err)
	if t == nil {
		return "nil"
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() != "" {
		return t.Name()
	}
	return t.String()
}

// quoted renders an error message the way failure messages display it.
func quoted(s string) string {
	return `"` + s + `"`
}

// Success indicates the expectation was met.
type Success struct{}

func (Success) IsSuccess() bool { return true }
func (Success) sealedResult()   {}

func (Success) Message(cfg *Config) string {
	return "\n   " + cfg.bold(cfg.green(cfg.msg("passed")))
}

// EqualityFailure indicates the evaluated value was not equal to the expected
// one under the test's equality relation.
type EqualityFailure struct {
	Expected any
	Actual   any
	Format   func(any) string
}

func (EqualityFailure) IsSuccess() bool { return false }
func (EqualityFailure) sealedResult()   {}

func (f EqualityFailure) Message(cfg *Config) string {
	expected := cfg.msg("expected.result", cfg.green(f.Format(f.Expected)))
	obtained := cfg.msg("obtained.result", cfg.red(f.Format(f.Actual)))
	return "\n   " + failedMarker(cfg) +
		"\n   " + expected +
		"\n   " + obtained
}

// PropertyFailure indicates the property predicate rejected the evaluated
// value.
type PropertyFailure struct {
	Actual      any
	Format      func(any) string
	Description string // pre-rendered property description
}

func (PropertyFailure) IsSuccess() bool { return false }
func (PropertyFailure) sealedResult()   {}

func (f PropertyFailure) Message(cfg *Config) string {
	obtained := cfg.msg("obtained.result", cfg.red(f.Format(f.Actual)))
	return "\n   " + failedMarker(cfg) +
		"\n   " + f.Description +
		"\n   " + obtained
}

// NoErrorFailure indicates an error-expectation test completed normally.
type NoErrorFailure struct {
	Value       any
	Format      func(any) string
	Expectation string
}

func (NoErrorFailure) IsSuccess() bool { return false }
func (NoErrorFailure) sealedResult()   {}

func (f NoErrorFailure) Message(cfg *Config) string {
	base := cfg.msg("no.error.basic", f.Expectation)
	obtained := cfg.msg("obtained.result", cfg.red(f.Format(f.Value)))
	return "\n   " + failedMarker(cfg) +
		"\n   " + base +
		"\n   " + obtained
}

// WrongErrorTypeFailure indicates an error occurred but its kind was not
// acceptable, while the message requirement held.
type WrongErrorTypeFailure struct {
	Thrown      error
	Expectation string
}

func (WrongErrorTypeFailure) IsSuccess() bool { return false }
func (WrongErrorTypeFailure) sealedResult()   {}

func (f WrongErrorTypeFailure) Message(cfg *Config) string {
	wrongType := cfg.msg("wrong.error.type.basic", cfg.red(errorTypeName(f.Thrown)))
	butExpected := cfg.msg("but.expected", f.Expectation)
	return "\n   " + failedMarker(cfg) +
		"\n   " + wrongType +
		"\n   " + butExpected
}

// WrongErrorMessageFailure indicates the error kind was acceptable but its
// message violated the requirement. Detail explains which requirement was
// active; it may be empty when the default accept-anything predicate was
// somehow rejected by a custom engine extension.
type WrongErrorMessageFailure struct {
	Thrown      error
	Expectation string
	Detail      string
}

func (WrongErrorMessageFailure) IsSuccess() bool { return false }
func (WrongErrorMessageFailure) sealedResult()   {}

func (f WrongErrorMessageFailure) Message(cfg *Config) string {
	wrongMsg := cfg.msg("wrong.error.message.basic",
		cfg.green(errorTypeName(f.Thrown)),
		cfg.red(quoted(f.Thrown.Error())))
	detail := f.Detail
	if detail == "" {
		detail = cfg.msg("detail.requirement.unspecified")
	}
	return "\n   " + failedMarker(cfg) +
		"\n   " + wrongMsg +
		"\n   " + detail
}

// WrongErrorAndMessageFailure indicates both the kind and the message of the
// thrown error were unacceptable.
type WrongErrorAndMessageFailure struct {
	Thrown      error
	Expectation string
}

func (WrongErrorAndMessageFailure) IsSuccess() bool { return false }
func (WrongErrorAndMessageFailure) sealedResult()   {}

func (f WrongErrorAndMessageFailure) Message(cfg *Config) string {
	wrongAll := cfg.msg("wrong.error.and.message.basic",
		cfg.red(errorTypeName(f.Thrown)),
		cfg.red(quoted(f.Thrown.Error())))
	butExpected := cfg.msg("but.expected", f.Expectation)
	return "\n   " + failedMarker(cfg) +
		"\n   " + wrongAll +
		"\n   " + butExpected
}

// TimeoutFailure indicates the evaluation did not finish within the bound.
type TimeoutFailure struct {
	Timeout     int // seconds
	Expectation string
}

func (TimeoutFailure) IsSuccess() bool { return false }
func (TimeoutFailure) sealedResult()   {}

func (f TimeoutFailure) Message(cfg *Config) string {
	return "\n   " + failedMarker(cfg) +
		"\n   " + cfg.msg("timeout", f.Expectation, f.Timeout)
}

// UnexpectedErrorFailure indicates an error the test family never expects: any
// error for equality/property tests, or an externally initiated interruption.
type UnexpectedErrorFailure struct {
	Thrown      error
	Expectation string
}

func (UnexpectedErrorFailure) IsSuccess() bool { return false }
func (UnexpectedErrorFailure) sealedResult()   {}

func (f UnexpectedErrorFailure) Message(cfg *Config) string {
	unexpected := cfg.msg("unexpected.error",
		f.Expectation,
		cfg.red(errorTypeName(f.Thrown)),
		cfg.red(quoted(f.Thrown.Error())))
	return "\n   " + failedMarker(cfg) +
		"\n   " + unexpected
}

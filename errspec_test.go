package verdict

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errDivideByZero = errors.New("division by zero")

func divide(a, b int) (int, error) {
	if b == 0 {
		return 0, errDivideByZero
	}
	return a / b, nil
}

func TestExpectErrorMatchingKind(t *testing.T) {
	cfg := testConfig(t)
	test := ExpectError("divide by zero",
		func(ctx context.Context) (int, error) { return divide(1, 0) },
		KindIs("DivideByZero", errDivideByZero))
	r := test.Run(context.Background(), cfg)
	assert.IsType(t, Success{}, r)
}

func TestExpectErrorMatchesConcreteType(t *testing.T) {
	cfg := testConfig(t)
	test := ExpectError("bad number",
		func(ctx context.Context) (int, error) { return strconv.Atoi("nope") },
		KindOf[*strconv.NumError]())
	r := test.Run(context.Background(), cfg)
	assert.IsType(t, Success{}, r)
}

func TestExpectErrorMatchesWrappedError(t *testing.T) {
	cfg := testConfig(t)
	test := ExpectError("wrapped",
		func(ctx context.Context) (int, error) {
			return 0, fmt.Errorf("outer context: %w", errDivideByZero)
		},
		KindIs("DivideByZero", errDivideByZero))
	r := test.Run(context.Background(), cfg)
	assert.IsType(t, Success{}, r)
}

func TestExpectErrorWrongKind(t *testing.T) {
	cfg := testConfig(t)
	test := ExpectError("wrong kind",
		func(ctx context.Context) (int, error) { return 0, errors.New("other") },
		KindOf[*strconv.NumError]())
	r := test.Run(context.Background(), cfg)

	f, ok := r.(WrongErrorTypeFailure)
	require.True(t, ok)
	assert.Contains(t, f.Message(cfg), "But The error NumError was expected")
}

func TestExpectErrorNoErrorOccurred(t *testing.T) {
	cfg := testConfig(t)
	test := ExpectError("no error",
		func(ctx context.Context) (int, error) { return divide(4, 2) },
		KindIs("DivideByZero", errDivideByZero))
	r := test.Run(context.Background(), cfg)

	f, ok := r.(NoErrorFailure)
	require.True(t, ok)
	assert.Equal(t, 2, f.Value)
	assert.Contains(t, f.Message(cfg), "An error was expected but none occurred")
}

func TestExpectErrorExactMessage(t *testing.T) {
	cfg := testConfig(t)

	match := ExpectErrorWith("exact match",
		func(ctx context.Context) (int, error) { return divide(1, 0) },
		KindIs("DivideByZero", errDivideByZero),
		ErrorOpts[int]{Message: Ptr("division by zero")})
	assert.IsType(t, Success{}, match.Run(context.Background(), cfg))

	mismatch := ExpectErrorWith("exact mismatch",
		func(ctx context.Context) (int, error) { return divide(1, 0) },
		KindIs("DivideByZero", errDivideByZero),
		ErrorOpts[int]{Message: Ptr("overflow")})
	r := mismatch.Run(context.Background(), cfg)

	f, ok := r.(WrongErrorMessageFailure)
	require.True(t, ok)
	assert.Contains(t, f.Detail, `Expected message was "overflow"`)
}

func TestExactMessageTakesPrecedenceOverPredicate(t *testing.T) {
	cfg := testConfig(t)
	// The predicate rejects everything; the exact match must still win.
	test := ExpectErrorWith("precedence",
		func(ctx context.Context) (int, error) { return divide(1, 0) },
		KindIs("DivideByZero", errDivideByZero),
		ErrorOpts[int]{
			Message:      Ptr("division by zero"),
			MessageCheck: func(string) bool { return false },
			MessageHelp:  "never satisfied",
		})
	r := test.Run(context.Background(), cfg)
	assert.IsType(t, Success{}, r)
}

func TestExpectErrorMessagePredicate(t *testing.T) {
	cfg := testConfig(t)

	match := ExpectErrorWith("predicate match",
		func(ctx context.Context) (int, error) { return divide(1, 0) },
		KindIs("DivideByZero", errDivideByZero),
		ErrorOpts[int]{
			MessageCheck: func(m string) bool { return strings.Contains(m, "zero") },
			MessageHelp:  "mentions zero",
		})
	assert.IsType(t, Success{}, match.Run(context.Background(), cfg))

	mismatch := ExpectErrorWith("predicate mismatch",
		func(ctx context.Context) (int, error) { return divide(1, 0) },
		KindIs("DivideByZero", errDivideByZero),
		ErrorOpts[int]{
			MessageCheck: func(m string) bool { return strings.Contains(m, "overflow") },
			MessageHelp:  "mentions overflow",
		})
	r := mismatch.Run(context.Background(), cfg)

	f, ok := r.(WrongErrorMessageFailure)
	require.True(t, ok)
	assert.Contains(t, f.Detail, "Message should satisfy: mentions overflow")
}

func TestExpectErrorWrongKindAndMessage(t *testing.T) {
	cfg := testConfig(t)
	test := ExpectErrorWith("both wrong",
		func(ctx context.Context) (int, error) { return 0, errors.New("other") },
		KindIs("DivideByZero", errDivideByZero),
		ErrorOpts[int]{Message: Ptr("division by zero")})
	r := test.Run(context.Background(), cfg)

	f, ok := r.(WrongErrorAndMessageFailure)
	require.True(t, ok)
	assert.Contains(t, f.Message(cfg), `Test failed with error errorString and message "other"`)
}

func TestExpectErrorOneOfMembership(t *testing.T) {
	cfg := testConfig(t)
	kinds := []ErrorKind{
		KindOf[*strconv.NumError](),
		KindIs("DivideByZero", errDivideByZero),
	}

	member := ExpectErrorOneOf("member",
		func(ctx context.Context) (int, error) { return divide(1, 0) }, kinds...)
	assert.IsType(t, Success{}, member.Run(context.Background(), cfg))

	// A wrapped member is still a member.
	wrapped := ExpectErrorOneOf("wrapped member",
		func(ctx context.Context) (int, error) {
			return 0, fmt.Errorf("wrap: %w", errDivideByZero)
		}, kinds...)
	assert.IsType(t, Success{}, wrapped.Run(context.Background(), cfg))

	outsider := ExpectErrorOneOf("outsider",
		func(ctx context.Context) (int, error) { return 0, errors.New("unrelated") }, kinds...)
	r := outsider.Run(context.Background(), cfg)

	f, ok := r.(WrongErrorTypeFailure)
	require.True(t, ok)
	// Kind names are listed sorted, joined with the localized connector.
	assert.Contains(t, f.Message(cfg), "One of the errors DivideByZero or NumError")
}

func TestExpectErrorOneOfRequiresKinds(t *testing.T) {
	thunk := func(ctx context.Context) (int, error) { return 0, nil }
	assert.Panics(t, func() { ExpectErrorOneOf("empty", thunk) })
}

func TestExpectAnyErrorButExclusion(t *testing.T) {
	cfg := testConfig(t)
	excluded := KindIs("DivideByZero", errDivideByZero)

	other := ExpectAnyErrorBut("other error",
		func(ctx context.Context) (int, error) { return 0, errors.New("anything") }, excluded)
	assert.IsType(t, Success{}, other.Run(context.Background(), cfg))

	hit := ExpectAnyErrorBut("excluded error",
		func(ctx context.Context) (int, error) { return divide(1, 0) }, excluded)
	r := hit.Run(context.Background(), cfg)

	f, ok := r.(WrongErrorTypeFailure)
	require.True(t, ok)
	assert.Contains(t, f.Message(cfg), "But Any error except DivideByZero was expected")
}

func TestExpectAnyErrorButUnsupported(t *testing.T) {
	cfg := testConfig(t)

	pass := ExpectAnyErrorButUnsupported("regular error",
		func(ctx context.Context) (int, error) { return 0, errors.New("boom") })
	assert.IsType(t, Success{}, pass.Run(context.Background(), cfg))

	fail := ExpectAnyErrorButUnsupported("unsupported",
		func(ctx context.Context) (int, error) {
			return 0, fmt.Errorf("not implemented: %w", errors.ErrUnsupported)
		})
	assert.IsType(t, WrongErrorTypeFailure{}, fail.Run(context.Background(), cfg))
}

func TestExpectErrorInterruptionIsNeverTheExpectedError(t *testing.T) {
	cfg := testConfig(t)
	// The expectation deliberately names the cancellation error itself; an
	// external interruption must still not count as a match.
	test := ExpectErrorWith("interrupted",
		func(ctx context.Context) (int, error) {
			<-ctx.Done()
			return 0, ctx.Err()
		},
		KindIs("Canceled", context.Canceled),
		ErrorOpts[int]{Timeout: 5})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(100 * time.Millisecond)
		cancel()
	}()
	r := test.Run(ctx, cfg)

	f, ok := r.(UnexpectedErrorFailure)
	require.True(t, ok, "interruption classified as %T", r)
	assert.ErrorIs(t, f.Thrown, context.Canceled)
}

func TestExpectErrorSurfacedCancellationIsUnexpected(t *testing.T) {
	cfg := testConfig(t)
	// Even without any real cancellation, a thunk reporting context.Canceled
	// is classified before the kind predicate ever sees it.
	test := ExpectError("reports cancellation",
		func(ctx context.Context) (int, error) { return 0, context.Canceled },
		KindIs("Canceled", context.Canceled))
	r := test.Run(context.Background(), cfg)
	assert.IsType(t, UnexpectedErrorFailure{}, r)
}

func TestExpectErrorPanicsAreClassifiedAsThrown(t *testing.T) {
	cfg := testConfig(t)
	test := ExpectError("panics",
		func(ctx context.Context) (int, error) { panic("blown fuse") },
		KindOf[*PanicError]())
	r := test.Run(context.Background(), cfg)
	assert.IsType(t, Success{}, r)
}

func TestKindConstructionPreconditions(t *testing.T) {
	assert.Panics(t, func() { KindIs("", errDivideByZero) })
	assert.Panics(t, func() { KindIs("x", nil) })
	assert.Panics(t, func() { KindFunc("", func(error) bool { return true }) })
	assert.Panics(t, func() { KindFunc("x", nil) })
}

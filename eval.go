package verdict

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Thunk is a user-supplied computation evaluated by a test. It receives a
// context carrying the evaluation deadline; cooperative computations observe
// ctx.Done() and return early, but nothing forces them to.
type Thunk[T any] func(ctx context.Context) (T, error)

// PanicError wraps a panic recovered from a computation so it can flow
// through the error-based classification like any other thrown condition.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

type outcomeKind int

const (
	outcomeValue outcomeKind = iota
	outcomeThrown
	outcomeTimedOut
	outcomeInterrupted
)

// outcome is the result of one bounded evaluation: a value, a thrown error,
// a deadline expiry, or an external interruption of the waiting caller.
type outcome[T any] struct {
	kind  outcomeKind
	value T
	err   error
}

// evaluate runs thunk on its own goroutine with a deadline of timeoutSeconds.
// Cancellation is cooperative: when the deadline elapses the evaluation
// context is cancelled and evaluate returns without waiting for the goroutine
// to stop; a computation that ignores its context keeps running in the
// background. Cancellation of the caller's ctx is reported as an interruption,
// not a timeout.
func evaluate[T any](ctx context.Context, thunk Thunk[T], timeoutSeconds int) outcome[T] {
	evalCtx, cancel := context.WithTimeout(ctx, time.Duration(timeoutSeconds)*time.Second)
	defer cancel()

	type completion struct {
		value T
		err   error
	}
	// Buffered so the goroutine can complete after a timeout without leaking.
	done := make(chan completion, 1)

	go func() {
		defer func() {
			if v := recover(); v != nil {
				var zero T
				done <- completion{value: zero, err: &PanicError{Value: v}}
			}
		}()
		v, err := thunk(evalCtx)
		done <- completion{value: v, err: err}
	}()

	select {
	case c := <-done:
		if c.err == nil {
			return outcome[T]{kind: outcomeValue, value: c.value}
		}
		// A computation that surfaces its context's error is reporting the
		// cancellation we issued, not an application error of its own.
		if errors.Is(c.err, context.DeadlineExceeded) && evalCtx.Err() != nil && ctx.Err() == nil {
			return outcome[T]{kind: outcomeTimedOut, err: c.err}
		}
		if errors.Is(c.err, context.Canceled) && ctx.Err() != nil {
			return outcome[T]{kind: outcomeInterrupted, err: c.err}
		}
		return outcome[T]{kind: outcomeThrown, err: c.err}
	case <-evalCtx.Done():
		if ctx.Err() != nil {
			return outcome[T]{kind: outcomeInterrupted, err: ctx.Err()}
		}
		return outcome[T]{kind: outcomeTimedOut, err: evalCtx.Err()}
	}
}

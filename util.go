package verdict

import (
	"fmt"
	"strconv"
)

// formatValue is the default rendering for evaluated values.
func formatValue[T any](v T) string {
	return fmt.Sprintf("%v", v)
}

// anyFormatter adapts a typed formatter to the untyped payload the result
// variants carry. The assertion is safe: variants only ever hold the value
// the same test produced.
func anyFormatter[T any](f func(T) string) func(any) string {
	return func(v any) string {
		return f(v.(T))
	}
}

func itoa(n int) string { return strconv.Itoa(n) }

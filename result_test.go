package verdict

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

// testConfig returns a silent, uncolored English configuration so message
// assertions see raw catalog text.
func testConfig(t *testing.T) *Config {
	t.Helper()
	cfg, err := NewConfig(SilentLogger{}, language.English, 1)
	require.NoError(t, err)
	return cfg
}

func TestSuccessMessage(t *testing.T) {
	cfg := testConfig(t)
	r := Success{}
	assert.True(t, r.IsSuccess())
	assert.Contains(t, r.Message(cfg), "TEST PASSED SUCCESSFULLY!")
}

func TestEqualityFailureMessage(t *testing.T) {
	cfg := testConfig(t)
	r := EqualityFailure{Expected: 5, Actual: 4, Format: anyFormatter(formatValue[int])}
	msg := r.Message(cfg)
	assert.False(t, r.IsSuccess())
	assert.Contains(t, msg, "TEST FAILED!")
	assert.Contains(t, msg, "Expected result was: 5")
	assert.Contains(t, msg, "Obtained result was: 4")
}

func TestPropertyFailureMessage(t *testing.T) {
	cfg := testConfig(t)
	r := PropertyFailure{
		Actual:      7,
		Format:      anyFormatter(formatValue[int]),
		Description: "Does not verify expected property",
	}
	msg := r.Message(cfg)
	assert.Contains(t, msg, "Does not verify expected property")
	assert.Contains(t, msg, "Obtained result was: 7")
}

func TestNoErrorFailureMessage(t *testing.T) {
	cfg := testConfig(t)
	r := NoErrorFailure{
		Value:       9,
		Format:      anyFormatter(formatValue[int]),
		Expectation: "The error PathError",
	}
	msg := r.Message(cfg)
	assert.Contains(t, msg, "An error was expected but none occurred. The error PathError was expected")
	assert.Contains(t, msg, "Obtained result was: 9")
}

func TestWrongErrorTypeFailureMessage(t *testing.T) {
	cfg := testConfig(t)
	r := WrongErrorTypeFailure{
		Thrown:      &fs.PathError{Op: "open", Path: "x", Err: errors.New("gone")},
		Expectation: "The error NumError",
	}
	msg := r.Message(cfg)
	assert.Contains(t, msg, "Test failed with error PathError")
	assert.Contains(t, msg, "But The error NumError was expected")
}

func TestWrongErrorMessageFailureMessage(t *testing.T) {
	cfg := testConfig(t)
	r := WrongErrorMessageFailure{
		Thrown:      errors.New("actual words"),
		Expectation: "The error errorString",
		Detail:      `Expected message was "other words"`,
	}
	msg := r.Message(cfg)
	assert.Contains(t, msg, `but message was "actual words"`)
	assert.Contains(t, msg, `Expected message was "other words"`)
}

func TestWrongErrorMessageFailureDetailFallbackIsLocalized(t *testing.T) {
	r := WrongErrorMessageFailure{
		Thrown:      errors.New("actual words"),
		Expectation: "The error errorString",
	}

	en := testConfig(t)
	assert.Contains(t, r.Message(en), "(reason for message failure not specified)")

	es, err := NewConfig(SilentLogger{}, language.Spanish, 1)
	require.NoError(t, err)
	msg := r.Message(es)
	assert.Contains(t, msg, "(motivo del fallo del mensaje no especificado)")
	assert.NotContains(t, msg, "not specified")
}

func TestTimeoutFailureMessage(t *testing.T) {
	cfg := testConfig(t)
	r := TimeoutFailure{Timeout: 3, Expectation: "The error NumError was expected"}
	msg := r.Message(cfg)
	assert.Contains(t, msg, "The error NumError was expected")
	assert.Contains(t, msg, "Timeout: test took more than 3 seconds to complete")
}

func TestUnexpectedErrorFailureMessage(t *testing.T) {
	cfg := testConfig(t)
	r := UnexpectedErrorFailure{
		Thrown:      errors.New("surprise"),
		Expectation: "Expected result was: 4",
	}
	msg := r.Message(cfg)
	assert.Contains(t, msg, "Expected result was: 4")
	assert.Contains(t, msg, `Unexpected error errorString with message "surprise"`)
}

func TestErrorTypeName(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"pointer type", &fs.PathError{Op: "open", Path: "x", Err: errors.New("e")}, "PathError"},
		{"stdlib sentinel", errors.New("plain"), "errorString"},
		{"nil error", nil, "nil"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errorTypeName(tt.err))
		})
	}
}

package verdict

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

// recordingLogger captures the observer notifications for ordering checks.
type recordingLogger struct {
	SilentLogger
	started []string
	results []Result
}

func (l *recordingLogger) Start(name string, cfg *Config) {
	l.started = append(l.started, name)
}

func (l *recordingLogger) Result(r Result, cfg *Config) {
	l.results = append(l.results, r)
}

func passing(name string) *Test {
	return Assert(name, func(ctx context.Context) (bool, error) { return true, nil })
}

func failing(name string) *Test {
	return Assert(name, func(ctx context.Context) (bool, error) { return false, nil })
}

func TestSuiteRunAggregates(t *testing.T) {
	cfg := testConfig(t)
	suite := NewSuite("mixed",
		passing("a"), passing("b"), failing("c"), passing("d"), failing("e"))
	results := suite.Run(context.Background(), cfg)

	assert.Equal(t, 5, results.Total())
	assert.Equal(t, 3, results.Passed())
	assert.Equal(t, 2, results.Failed())
	assert.Equal(t, "++-+-", results.Details())
}

func TestSuiteRunsTestsInOrder(t *testing.T) {
	logger := &recordingLogger{}
	cfg, err := NewConfig(logger, language.English, 1)
	require.NoError(t, err)

	suite := NewSuite("ordered", passing("first"), failing("second"), passing("third"))
	results := suite.Run(context.Background(), cfg)

	assert.Equal(t, []string{"first", "second", "third"}, logger.started)
	require.Len(t, logger.results, 3)
	assert.True(t, logger.results[0].IsSuccess())
	assert.False(t, logger.results[1].IsSuccess())
	assert.True(t, logger.results[2].IsSuccess())
	assert.Equal(t, "+-+", results.Details())
}

func TestSuiteContinuesAfterFailures(t *testing.T) {
	cfg := testConfig(t)
	suite := NewSuite("all failing", failing("a"), failing("b"), failing("c"))
	results := suite.Run(context.Background(), cfg)

	assert.Equal(t, 3, results.Total())
	assert.Equal(t, 0, results.Passed())
	assert.Equal(t, "---", results.Details())
}

func TestSuiteConstructionPreconditions(t *testing.T) {
	assert.Panics(t, func() { NewSuite("") })
	assert.Panics(t, func() { NewSuite("x", nil) })
}

func TestSummarize(t *testing.T) {
	a := NewResults([]Result{Success{}, Success{}, PropertyFailure{}})
	b := NewResults([]Result{Success{}})

	s := Summarize([]*Results{a, b})
	assert.Equal(t, 2, s.Suites)
	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 3, s.Passed)
	assert.Equal(t, 1, s.Failed)
	assert.InDelta(t, 0.75, s.SuccessRate, 1e-9)
}

func TestSummarizeEmptyRunIsFullySuccessful(t *testing.T) {
	s := Summarize(nil)
	assert.Equal(t, 1.0, s.SuccessRate)

	s = Summarize([]*Results{NewResults(nil)})
	assert.Equal(t, 1.0, s.SuccessRate)
}

func TestRunAll(t *testing.T) {
	cfg := testConfig(t)
	first := NewSuite("first", passing("a"), failing("b"))
	second := NewSuite("second", passing("c"))

	summary, all := RunAll(context.Background(), cfg, first, second)

	assert.Equal(t, 2, summary.Suites)
	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 2, summary.Passed)
	assert.Equal(t, 1, summary.Failed)
	require.Len(t, all, 2)
	assert.Equal(t, "+-", all[0].Details())
	assert.Equal(t, "+", all[1].Details())
}

// Command verdict runs a demonstration suite of assertions and exits with a
// code describing the outcome: 0 when everything passed, 1 on test failures,
// 2 on runtime errors such as a bad configuration.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/ethereum/go-ethereum/log"
	"github.com/urfave/cli/v2"
	"golang.org/x/text/language"

	verdict "github.com/verdictkit/verdict"
	"github.com/verdictkit/verdict/exitcodes"
	"github.com/verdictkit/verdict/flags"
	"github.com/verdictkit/verdict/i18n"
)

var (
	Version   = "v0.1.0"
	GitCommit = ""
	GitDate   = ""
)

func main() {
	app := cli.NewApp()
	app.Version = fmt.Sprintf("%s-%s-%s", Version, GitCommit, GitDate)
	app.Name = "verdict"
	app.Usage = "Assertion suite runner"
	app.Description = "verdict evaluates assertion suites under bounded timeouts and reports the outcome"
	app.Flags = flags.Flags
	app.Action = run
	app.ExitErrHandler = func(c *cli.Context, err error) {
		var exitErr cli.ExitCoder
		if errors.As(err, &exitErr) {
			cli.HandleExitCoder(exitErr)
		} else if err != nil {
			if verdict.IsRuntimeError(err) {
				cli.HandleExitCoder(cli.Exit(err.Error(), exitcodes.RuntimeErr))
			} else if verdict.IsTestFailureError(err) {
				cli.HandleExitCoder(cli.Exit(err.Error(), exitcodes.TestFailure))
			} else {
				// Unspecified errors default to the test-failure code.
				cli.HandleExitCoder(cli.Exit(err.Error(), exitcodes.TestFailure))
			}
		}
	}

	if err := app.Run(os.Args); err != nil {
		log.Crit("Application failed", "message", err)
	}
}

func run(ctx *cli.Context) error {
	if err := flags.Check(ctx); err != nil {
		return verdict.NewRuntimeError(err)
	}

	cfg, err := buildConfig(ctx)
	if err != nil {
		return verdict.NewRuntimeError(fmt.Errorf("failed to create config: %w", err))
	}

	summary, _ := verdict.RunAll(ctx.Context, cfg, demoSuites()...)
	if summary.Failed > 0 {
		return verdict.NewTestFailureError(
			fmt.Sprintf("%d of %d tests failed", summary.Failed, summary.Total))
	}
	return nil
}

func buildConfig(ctx *cli.Context) (*verdict.Config, error) {
	if path := ctx.String(flags.ConfigFile.Name); path != "" {
		return verdict.LoadConfig(path)
	}
	var logger verdict.Logger
	if ctx.Bool(flags.Silent.Name) {
		logger = verdict.SilentLogger{}
	} else {
		logger = verdict.NewConsoleLogger(os.Stdout, !ctx.Bool(flags.NoColor.Name))
	}
	lang := language.English
	if s := ctx.String(flags.Language.Name); s != "" {
		lang = i18n.Parse(s)
	}
	cfg, err := verdict.NewConfig(logger, lang, ctx.Int(flags.Timeout.Name))
	if err != nil {
		return nil, err
	}
	cfg.CSVSummary = ctx.Bool(flags.CSV.Name)
	return cfg, nil
}

// demoSuites exercises each test family against the standard library.
func demoSuites() []*verdict.Suite {
	arithmetic := verdict.NewSuite("arithmetic",
		verdict.Equal("addition",
			func(ctx context.Context) (int, error) { return 2 + 2, nil }, 4),
		verdict.Equal("integer division",
			func(ctx context.Context) (int, error) { return 7 / 2, nil }, 3),
		verdict.Assert("positive product",
			func(ctx context.Context) (bool, error) { return 3*3 > 0, nil }),
		verdict.Refute("odd square",
			func(ctx context.Context) (bool, error) { return 9%2 == 0, nil }),
	)

	parsing := verdict.NewSuite("number parsing",
		verdict.Equal("decimal",
			func(ctx context.Context) (int, error) { return strconv.Atoi("42") }, 42),
		verdict.ExpectError("rejects words",
			func(ctx context.Context) (int, error) { return strconv.Atoi("forty-two") },
			verdict.KindOf[*strconv.NumError]()),
		verdict.ExpectErrorOneOf("rejects overflow",
			func(ctx context.Context) (int64, error) { return strconv.ParseInt("9223372036854775808", 10, 64) },
			verdict.KindOf[*strconv.NumError](),
			verdict.KindIs("ErrRange", strconv.ErrRange)),
		verdict.ExpectAnyErrorBut("range, not syntax",
			func(ctx context.Context) (int64, error) { return strconv.ParseInt("1e99", 10, 64) },
			verdict.KindIs("ErrRange", strconv.ErrRange)),
	)

	return []*verdict.Suite{arithmetic, parsing}
}

// Package flags defines the CLI surface of the verdict command.
package flags

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

const EnvVarPrefix = "VERDICT"

// prefixEnvVar builds the canonical environment variable name for a flag.
func prefixEnvVar(name string) []string {
	return []string{EnvVarPrefix + "_" + name}
}

var (
	ConfigFile = &cli.StringFlag{
		Name:    "config",
		Value:   "",
		EnvVars: prefixEnvVar("CONFIG"),
		Usage:   "Path to a YAML config file (eg. 'verdict.yaml')",
	}
	Timeout = &cli.IntFlag{
		Name:    "timeout",
		Value:   3,
		EnvVars: prefixEnvVar("TIMEOUT"),
		Usage:   "Default per-test timeout in seconds",
	}
	Language = &cli.StringFlag{
		Name:    "language",
		Value:   "en",
		EnvVars: prefixEnvVar("LANGUAGE"),
		Usage:   "Message language (eg. 'en', 'es', 'fr')",
	}
	CSV = &cli.BoolFlag{
		Name:    "csv",
		Value:   false,
		EnvVars: prefixEnvVar("CSV"),
		Usage:   "Emit the machine-readable summary after the run",
	}
	NoColor = &cli.BoolFlag{
		Name:    "no-color",
		Value:   false,
		EnvVars: prefixEnvVar("NO_COLOR"),
		Usage:   "Disable ANSI styling in test output",
	}
	Silent = &cli.BoolFlag{
		Name:    "silent",
		Value:   false,
		EnvVars: prefixEnvVar("SILENT"),
		Usage:   "Suppress per-test output; only the exit code reports the outcome",
	}
)

var Flags = []cli.Flag{
	ConfigFile,
	Timeout,
	Language,
	CSV,
	NoColor,
	Silent,
}

// Check validates flag values that cli cannot express as types.
func Check(ctx *cli.Context) error {
	if ctx.Int(Timeout.Name) <= 0 {
		return fmt.Errorf("flag %s must be positive", Timeout.Name)
	}
	return nil
}

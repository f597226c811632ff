package verdict

import (
	"bufio"
	"io"

	"github.com/jedib0t/go-pretty/v6/text"
)

// Logger is the observer notified by Test.Run. It receives a start
// notification before each evaluation, the Result afterwards, and owns the
// presentation of both. Logger failures are not part of the engine's error
// taxonomy; implementations must not panic.
type Logger interface {
	// SupportsColor reports whether ANSI styling should be applied to the
	// messages this logger receives.
	SupportsColor() bool
	Print(s string)
	Println(s string)
	// Start is invoked just before a test's evaluation begins.
	Start(name string, cfg *Config)
	// Result is invoked with the outcome of a completed test.
	Result(r Result, cfg *Config)
	// Flush forces buffered output to the destination.
	Flush()
}

// paint applies a single ANSI style when enabled, otherwise returns s as-is.
func paint(c text.Color, s string, enabled bool) string {
	if !enabled {
		return s
	}
	return c.Sprint(s)
}

// Styling helpers on Config so result renderers follow the active logger's
// color capability without reaching into presentation code.

func (c *Config) green(s string) string  { return paint(text.FgGreen, s, c.Logger.SupportsColor()) }
func (c *Config) red(s string) string    { return paint(text.FgRed, s, c.Logger.SupportsColor()) }
func (c *Config) blue(s string) string   { return paint(text.FgBlue, s, c.Logger.SupportsColor()) }
func (c *Config) bold(s string) string   { return paint(text.Bold, s, c.Logger.SupportsColor()) }
func (c *Config) underline(s string) string {
	return paint(text.Underline, s, c.Logger.SupportsColor())
}

// ConsoleLogger writes test progress to an io.Writer, optionally with ANSI
// styling.
type ConsoleLogger struct {
	w     *bufio.Writer
	color bool
}

// NewConsoleLogger returns a ConsoleLogger writing to w. Set color to false
// for terminals (or files) that do not understand ANSI escapes.
func NewConsoleLogger(w io.Writer, color bool) *ConsoleLogger {
	return &ConsoleLogger{w: bufio.NewWriter(w), color: color}
}

func (l *ConsoleLogger) SupportsColor() bool { return l.color }

func (l *ConsoleLogger) Print(s string) {
	_, _ = l.w.WriteString(s)
}

func (l *ConsoleLogger) Println(s string) {
	_, _ = l.w.WriteString(s)
	_ = l.w.WriteByte('\n')
}

func (l *ConsoleLogger) Start(name string, cfg *Config) {
	l.Print(paint(text.Bold, " "+name, l.color) + ":")
}

func (l *ConsoleLogger) Result(r Result, cfg *Config) {
	l.Println(r.Message(cfg))
}

func (l *ConsoleLogger) Flush() {
	_ = l.w.Flush()
}

// SilentLogger discards all output. Useful for programmatic runs that only
// consume the returned Results.
type SilentLogger struct{}

func (SilentLogger) SupportsColor() bool          { return false }
func (SilentLogger) Print(string)                 {}
func (SilentLogger) Println(string)               {}
func (SilentLogger) Start(string, *Config)        {}
func (SilentLogger) Result(Result, *Config)       {}
func (SilentLogger) Flush()                       {}

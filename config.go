package verdict

import (
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/log"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/verdictkit/verdict/i18n"
)

// DefaultTimeout is the per-test evaluation bound, in seconds, used when
// neither the configuration nor the test supplies one.
const DefaultTimeout = 3

// Config holds the settings shared by every test in a run: the observer that
// receives per-test output, the language used to render messages, the default
// evaluation timeout and the machine-readable summary flag. A Config is
// read-only during a run; tests derive private copies to resolve their
// effective timeout.
type Config struct {
	Logger     Logger       // observer for per-test output
	Language   language.Tag // message catalog language
	Timeout    int          // default per-test timeout, seconds; must be positive
	CSVSummary bool         // emit the compact machine-readable summary after RunAll
	Log        log.Logger   // diagnostic logger

	renderer *i18n.Renderer
}

// NewConfig validates and assembles a Config.
func NewConfig(logger Logger, lang language.Tag, timeout int) (*Config, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("timeout must be positive, got %d", timeout)
	}
	return &Config{
		Logger:   logger,
		Language: lang,
		Timeout:  timeout,
		Log:      log.New(),
		renderer: i18n.NewRenderer(lang),
	}, nil
}

// DefaultConfig returns a Config with a colored console logger on stdout,
// English messages and the default timeout.
func DefaultConfig() *Config {
	cfg, err := NewConfig(NewConsoleLogger(os.Stdout, true), language.English, DefaultTimeout)
	if err != nil {
		panic("verdict: default config: " + err.Error())
	}
	return cfg
}

// Renderer returns the message renderer for this configuration's language.
func (c *Config) Renderer() *i18n.Renderer {
	if c.renderer == nil {
		c.renderer = i18n.NewRenderer(c.Language)
	}
	return c.renderer
}

// msg renders the catalog template for key with args.
func (c *Config) msg(key string, args ...any) string {
	return c.Renderer().Render(key, args...)
}

// diag returns the diagnostic logger, defaulting to the root geth logger so
// struct-literal configs stay usable.
func (c *Config) diag() log.Logger {
	if c.Log == nil {
		c.Log = log.New()
	}
	return c.Log
}

// withTimeout derives a private copy of the configuration carrying the
// resolved per-test timeout. The copy is never shared between tests.
func (c *Config) withTimeout(timeout int) *Config {
	derived := *c
	derived.Timeout = timeout
	return &derived
}

// FileConfig is the YAML shape of a configuration file.
//
//	timeout: 5
//	language: es
//	csv: true
//	colors: false
//	silent: false
type FileConfig struct {
	Timeout  int    `yaml:"timeout"`
	Language string `yaml:"language"`
	CSV      bool   `yaml:"csv"`
	Colors   *bool  `yaml:"colors"`
	Silent   bool   `yaml:"silent"`
}

// LoadConfig reads a YAML configuration file and builds a Config from it.
// Omitted fields take the library defaults (colored console output, English,
// DefaultTimeout seconds).
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", path, err)
	}
	return fc.Build()
}

// Build validates a FileConfig and assembles the runtime Config.
func (fc FileConfig) Build() (*Config, error) {
	timeout := fc.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	if timeout < 0 {
		return nil, fmt.Errorf("timeout must be positive, got %d", fc.Timeout)
	}
	colors := true
	if fc.Colors != nil {
		colors = *fc.Colors
	}
	var logger Logger
	if fc.Silent {
		logger = SilentLogger{}
	} else {
		logger = NewConsoleLogger(os.Stdout, colors)
	}
	lang := language.English
	if fc.Language != "" {
		lang = i18n.Parse(fc.Language)
	}
	cfg, err := NewConfig(logger, lang, timeout)
	if err != nil {
		return nil, err
	}
	cfg.CSVSummary = fc.CSV
	return cfg, nil
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// ErrInvalidConfig is returned when an environment value cannot be used
var ErrInvalidConfig = errors.New("invalid config")

// Browser types supported by Playwright
const (
	BrowserChromium = "chromium"
	BrowserFirefox  = "firefox"
	BrowserWebkit   = "webkit"
)

// Report formats understood by the report store
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config holds the settings of a suite run
type Config struct {
	BaseURL      string
	Browser      string
	Headless     bool
	SlowMo       time.Duration
	Timeout      time.Duration
	Screenshots  bool
	ArtifactsDir string
	ReportFormat string
	LogLevel     logrus.Level
	FakerSeed    uint64
	SeedRecords  int
}

// Default returns the configuration used when no variable is set
func Default() *Config {
	return &Config{
		BaseURL:      "https://demoqa.com",
		Browser:      BrowserChromium,
		Headless:     true,
		Timeout:      15 * time.Second,
		Screenshots:  true,
		ArtifactsDir: "test-results",
		ReportFormat: FormatJSON,
		LogLevel:     logrus.InfoLevel,
		SeedRecords:  3,
	}
}

// Load - reads the given dotenv files (".env" when none) and then the environment.
// Missing files are skipped; variables already set in the environment win.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return Parse(os.LookupEnv)
}

// Parse - builds a Config from lookup, falling back to Default for unset keys
func Parse(lookup func(key string) (string, bool)) (*Config, error) {
	cfg := Default()
	p := parser{lookup: lookup}

	cfg.BaseURL = strings.TrimRight(p.str("DEMOQA_BASE_URL", cfg.BaseURL), "/")
	cfg.Browser = strings.ToLower(p.str("BROWSER", cfg.Browser))
	cfg.Headless = p.bool("HEADLESS", cfg.Headless)
	cfg.SlowMo = time.Duration(p.int("SLOW_MO", 0)) * time.Millisecond
	cfg.Timeout = p.duration("TIMEOUT", cfg.Timeout)
	cfg.Screenshots = p.bool("SCREENSHOTS", cfg.Screenshots)
	cfg.ArtifactsDir = p.str("ARTIFACTS_DIR", cfg.ArtifactsDir)
	cfg.ReportFormat = strings.ToLower(p.str("REPORT_FORMAT", cfg.ReportFormat))
	cfg.FakerSeed = uint64(p.int("FAKER_SEED", 0))
	cfg.SeedRecords = p.int("WEBTABLE_SEED_RECORDS", cfg.SeedRecords)

	if v, ok := p.value("LOG_LEVEL"); ok {
		level, err := logrus.ParseLevel(v)
		if err != nil {
			p.fail("LOG_LEVEL", v, err)
		} else {
			cfg.LogLevel = level
		}
	}

	if err := p.err(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate - checks the cross-field constraints of the config
func (c *Config) Validate() error {
	var problems []string

	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		problems = append(problems, fmt.Sprintf("DEMOQA_BASE_URL %q is not an absolute URL", c.BaseURL))
	}
	switch c.Browser {
	case BrowserChromium, BrowserFirefox, BrowserWebkit:
	default:
		problems = append(problems, fmt.Sprintf("BROWSER %q is not one of chromium, firefox, webkit", c.Browser))
	}
	switch c.ReportFormat {
	case FormatJSON, FormatYAML:
	default:
		problems = append(problems, fmt.Sprintf("REPORT_FORMAT %q is not one of json, yaml", c.ReportFormat))
	}
	if c.Timeout <= 0 {
		problems = append(problems, "TIMEOUT must be positive")
	}
	if c.SlowMo < 0 {
		problems = append(problems, "SLOW_MO must not be negative")
	}
	if c.SeedRecords < 1 {
		problems = append(problems, "WEBTABLE_SEED_RECORDS must be at least 1")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// Logger - builds the suite logger at the configured level
func (c *Config) Logger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(c.LogLevel)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	return logger
}

type parser struct {
	lookup   func(string) (string, bool)
	problems []string
}

func (p *parser) value(key string) (string, bool) {
	v, ok := p.lookup(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

func (p *parser) fail(key, value string, err error) {
	p.problems = append(p.problems, fmt.Sprintf("%s=%q: %v", key, value, err))
}

func (p *parser) str(key, def string) string {
	if v, ok := p.value(key); ok {
		return v
	}
	return def
}

func (p *parser) bool(key string, def bool) bool {
	v, ok := p.value(key)
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		p.fail(key, v, err)
		return def
	}
	return b
}

func (p *parser) int(key string, def int) int {
	v, ok := p.value(key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		p.fail(key, v, err)
		return def
	}
	if n < 0 {
		p.fail(key, v, errors.New("must not be negative"))
		return def
	}
	return n
}

func (p *parser) duration(key string, def time.Duration) time.Duration {
	v, ok := p.value(key)
	if !ok {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		p.fail(key, v, err)
		return def
	}
	return d
}

func (p *parser) err() error {
	if len(p.problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(p.problems, "; "))
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse(lookupFrom(nil))
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "https://demoqa.com", cfg.BaseURL)
	assert.Equal(t, BrowserChromium, cfg.Browser)
	assert.True(t, cfg.Headless)
	assert.Equal(t, 15*time.Second, cfg.Timeout)
	assert.Equal(t, 3, cfg.SeedRecords)
}

func TestParse_Overrides(t *testing.T) {
	cfg, err := Parse(lookupFrom(map[string]string{
		"DEMOQA_BASE_URL":       "http://localhost:3000/",
		"BROWSER":               "Firefox",
		"HEADLESS":              "false",
		"SLOW_MO":               "250",
		"TIMEOUT":               "30s",
		"SCREENSHOTS":           "0",
		"ARTIFACTS_DIR":         "out",
		"REPORT_FORMAT":         "YAML",
		"LOG_LEVEL":             "debug",
		"FAKER_SEED":            "42",
		"WEBTABLE_SEED_RECORDS": "5",
	}))
	require.NoError(t, err)

	assert.Equal(t, &Config{
		BaseURL:      "http://localhost:3000",
		Browser:      BrowserFirefox,
		Headless:     false,
		SlowMo:       250 * time.Millisecond,
		Timeout:      30 * time.Second,
		Screenshots:  false,
		ArtifactsDir: "out",
		ReportFormat: FormatYAML,
		LogLevel:     logrus.DebugLevel,
		FakerSeed:    42,
		SeedRecords:  5,
	}, cfg)
}

func TestParse_BlankValuesUseDefaults(t *testing.T) {
	cfg, err := Parse(lookupFrom(map[string]string{"BROWSER": "  ", "TIMEOUT": ""}))
	require.NoError(t, err)

	assert.Equal(t, BrowserChromium, cfg.Browser)
	assert.Equal(t, 15*time.Second, cfg.Timeout)
}

func TestParse_Invalid(t *testing.T) {
	tests := map[string]map[string]string{
		"bool":         {"HEADLESS": "maybe"},
		"duration":     {"TIMEOUT": "15"},
		"int":          {"SLOW_MO": "fast"},
		"negative":     {"FAKER_SEED": "-1"},
		"level":        {"LOG_LEVEL": "loud"},
		"browser":      {"BROWSER": "ie"},
		"format":       {"REPORT_FORMAT": "xml"},
		"relative url": {"DEMOQA_BASE_URL": "demoqa.com"},
		"zero timeout": {"TIMEOUT": "0s"},
		"no seed rows": {"WEBTABLE_SEED_RECORDS": "0"},
	}

	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			cfg, err := Parse(lookupFrom(env))
			assert.Nil(t, cfg)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestParse_ReportsEveryProblem(t *testing.T) {
	_, err := Parse(lookupFrom(map[string]string{"HEADLESS": "maybe", "SLOW_MO": "fast"}))
	require.Error(t, err)

	assert.Contains(t, err.Error(), "HEADLESS")
	assert.Contains(t, err.Error(), "SLOW_MO")
}

func TestLoad_DotEnvDoesNotOverrideEnvironment(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(path, []byte("BROWSER=webkit\nTIMEOUT=5s\n"), 0o644))

	t.Setenv("BROWSER", "firefox")
	// godotenv sets TIMEOUT; register it so the test restores it afterwards
	t.Setenv("TIMEOUT", "")
	require.NoError(t, os.Unsetenv("TIMEOUT"))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, BrowserFirefox, cfg.Browser)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
}

func TestLoad_MissingFileIsSkipped(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.NoError(t, err)
}

func TestConfig_Logger(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = logrus.WarnLevel

	logger := cfg.Logger()

	assert.Equal(t, logrus.WarnLevel, logger.GetLevel())
	require.IsType(t, &logrus.TextFormatter{}, logger.Formatter)
	assert.True(t, logger.Formatter.(*logrus.TextFormatter).FullTimestamp)
}

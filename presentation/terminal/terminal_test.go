package terminal

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"demoqa_automation/application/scenario"
	"demoqa_automation/domain/interfaces"
	"demoqa_automation/infrastructure/config"

	"github.com/playwright-community/playwright-go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blankPage has no behaviour; scenarios driving it break on first use
type blankPage struct {
	playwright.Page
}

type fakeBrowser struct {
	closed bool
}

func (b *fakeBrowser) NewPage(ctx context.Context) (playwright.Page, error) {
	return &blankPage{}, nil
}

func (b *fakeBrowser) Screenshot(ctx context.Context, page playwright.Page, name string) (string, error) {
	return "", errors.New("no screen")
}

func (b *fakeBrowser) ClosePage(page playwright.Page) error { return nil }

func (b *fakeBrowser) Name() string { return "fake" }

func (b *fakeBrowser) Close() error {
	b.closed = true
	return nil
}

func execute(t *testing.T, launch Launcher, args ...string) (string, error) {
	t.Helper()

	var out, stderr bytes.Buffer
	cmd := newRootCmd(launch)
	cmd.SetOut(&out)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func noLaunch(t *testing.T) Launcher {
	return func(cfg *config.Config, logger *logrus.Logger) (interfaces.Browser, error) {
		t.Fatal("browser must not be launched")
		return nil, nil
	}
}

func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv("ARTIFACTS_DIR", t.TempDir())
	t.Setenv("SCREENSHOTS", "false")
	t.Setenv("REPORT_FORMAT", "json")
}

func TestList(t *testing.T) {
	out, err := execute(t, noLaunch(t), "list")
	require.NoError(t, err)

	assert.Contains(t, out, "Elements > Webtables Page\n")
	assert.Contains(t, out, "  TC01 should be able to edit existing webtables record  [@elements @webtables @TC01]\n")
	assert.Contains(t, out, "Widgets > Select Menu page\n")
	assert.Contains(t, out, "TC21 ")
}

func TestList_FilteredByTag(t *testing.T) {
	out, err := execute(t, noLaunch(t), "list", "--tag", "@TC21")
	require.NoError(t, err)

	assert.Equal(t,
		"Widgets > Select Menu page\n"+
			"  TC21 should be able to select options from multiple select types  [@widgets @select-menu @TC21]\n",
		out)
}

func TestLabel(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no placeholders", []string{"GIVEN Webtable records are available for testing"}, "GIVEN Webtable records are available for testing"},
		{"json args", []string{"WHEN User edits an existing record for {0} with {1}", `"a@test.com"`, `{"salary":"5000"}`}, `WHEN User edits an existing record for "a@test.com" with {"salary":"5000"}`},
		{"bare word is a string", []string{"User searches for {0}", "Maths"}, `User searches for "Maths"`},
		{"number and list", []string{"{0} of {1}", "3", `["a","b"]`}, `3 of ["a","b"]`},
		{"missing argument kept", []string{"{0} and {1}", "true"}, "true and {1}"},
		{"null kept", []string{"value {0}", "null"}, "value {0}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, noLaunch(t), append([]string{"label"}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want+"\n", out)
		})
	}
}

func TestLabel_RequiresPattern(t *testing.T) {
	_, err := execute(t, noLaunch(t), "label")
	require.Error(t, err)
}

func TestRun_NoMatchingScenarios(t *testing.T) {
	isolateEnv(t)

	_, err := execute(t, noLaunch(t), "run", "--tag", "@nothing")
	require.ErrorIs(t, err, scenario.ErrNoScenarios)
}

func TestRun_InvalidFormat(t *testing.T) {
	isolateEnv(t)

	_, err := execute(t, noLaunch(t), "run", "--format", "xml")
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestRun_LaunchFailure(t *testing.T) {
	isolateEnv(t)
	launch := func(cfg *config.Config, logger *logrus.Logger) (interfaces.Browser, error) {
		return nil, errors.New("executable doesn't exist")
	}

	_, err := execute(t, launch, "run", "--tag", "@TC21")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to initialize browser: executable doesn't exist")
}

func TestRun_FailedScenariosExitNonZero(t *testing.T) {
	isolateEnv(t)
	b := &fakeBrowser{}
	launch := func(cfg *config.Config, logger *logrus.Logger) (interfaces.Browser, error) {
		return b, nil
	}

	out, err := execute(t, launch, "run", "--tag", "@TC21", "--format", "yaml")
	require.ErrorIs(t, err, ErrScenariosFailed)
	assert.Contains(t, err.Error(), "1 of 1")

	assert.Contains(t, out, "BROKEN TC21 should be able to select options from multiple select types")
	assert.Contains(t, out, "[broken] TC21 should be able to select options from multiple select types")
	assert.Contains(t, out, "0 passed, 1 failed")
	assert.True(t, b.closed)
}

package terminal

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"demoqa_automation/application/scenario"
	"demoqa_automation/domain/entities"
	"demoqa_automation/infrastructure/config"
	"demoqa_automation/infrastructure/fakedata"
	"demoqa_automation/infrastructure/reporting"
	"demoqa_automation/infrastructure/security"
	"demoqa_automation/infrastructure/storage"

	"github.com/spf13/cobra"
)

// ErrScenariosFailed is returned by run when at least one scenario did not pass
var ErrScenariosFailed = errors.New("scenarios failed")

// NewRunCmd creates the run subcommand executing the selected scenarios.
func NewRunCmd(launch Launcher) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the scenarios against the configured site",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tags, _ := cmd.Flags().GetStringSlice("tag")
			format, _ := cmd.Flags().GetString("format")

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if format != "" {
				cfg.ReportFormat = format
				if err := cfg.Validate(); err != nil {
					return err
				}
			}

			logger := cfg.Logger()
			logger.SetOutput(cmd.ErrOrStderr())

			scenarios := scenario.Filter(scenario.Catalogue(), tags...)
			if len(scenarios) == 0 {
				return scenario.ErrNoScenarios
			}

			store, err := storage.NewReportStore(filepath.Join(cfg.ArtifactsDir, "reports"), cfg.ReportFormat)
			if err != nil {
				return err
			}

			b, err := launch(cfg, logger)
			if err != nil {
				return fmt.Errorf("failed to initialize browser: %w", err)
			}
			defer func() {
				if err := b.Close(); err != nil {
					logger.WithError(err).Warn("Failed to close browser")
				}
			}()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			runner := scenario.NewRunner(b, store, security.NewCleanupGuard(logger), fakedata.NewGenerator(cfg.FakerSeed), cfg, logger)
			report, err := runner.Run(ctx, scenarios)
			if report != nil {
				printSummary(cmd, report)
			}
			if err != nil {
				return err
			}

			if failed := report.Failed(); failed > 0 {
				return fmt.Errorf("%d of %d: %w", failed, len(report.Tests), ErrScenariosFailed)
			}
			return nil
		},
	}
	cmd.Flags().StringSlice("tag", nil, "only scenarios carrying any of these tags (e.g. @webtables,@TC21)")
	cmd.Flags().String("format", "", "report format, json or yaml (default from REPORT_FORMAT)")
	return cmd
}

func printSummary(cmd *cobra.Command, report *entities.Report) {
	out := cmd.OutOrStdout()
	for _, t := range report.Tests {
		fmt.Fprintf(out, "%-6s %s (%s)\n", statusMark(t.Status), t.Name, t.Duration.Round(time.Millisecond))
		if t.Status == entities.StepStatusPassed {
			continue
		}
		fmt.Fprint(out, reporting.Format(t.Steps))
		if t.Error != "" {
			fmt.Fprintf(out, "       error: %s\n", t.Error)
		}
		if t.Screenshot != "" {
			fmt.Fprintf(out, "       screenshot: %s\n", t.Screenshot)
		}
	}
	fmt.Fprintf(out, "\n%d passed, %d failed\n", len(report.Tests)-report.Failed(), report.Failed())
}

func statusMark(status entities.StepStatus) string {
	switch status {
	case entities.StepStatusPassed:
		return "PASS"
	case entities.StepStatusBroken:
		return "BROKEN"
	default:
		return "FAIL"
	}
}

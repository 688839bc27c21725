package scenario

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"demoqa_automation/application/steps"
	"demoqa_automation/domain/entities"
	"demoqa_automation/domain/interfaces"
	"demoqa_automation/infrastructure/config"
	"demoqa_automation/infrastructure/fakedata"
	"demoqa_automation/infrastructure/pages"
	"demoqa_automation/infrastructure/reporting"

	"github.com/google/uuid"
	"github.com/playwright-community/playwright-go"
	"github.com/sirupsen/logrus"
)

// SuiteName names the run in the saved report
const SuiteName = "DemoQA"

// panicError carries the value a scenario panicked with
type panicError struct {
	value any
}

func (e *panicError) Error() string {
	return fmt.Sprintf("panic: %v", e.value)
}

// Runner executes scenarios one after another, each in a fresh page
type Runner struct {
	browser interfaces.Browser
	store   interfaces.ReportStorage
	guard   interfaces.CleanupGuard
	data    *fakedata.Generator
	cfg     *config.Config
	logger  *logrus.Logger
	now     func() time.Time
}

// NewRunner - creates new runner instance
func NewRunner(browser interfaces.Browser, store interfaces.ReportStorage, guard interfaces.CleanupGuard, data *fakedata.Generator, cfg *config.Config, logger *logrus.Logger) *Runner {
	return &Runner{
		browser: browser,
		store:   store,
		guard:   guard,
		data:    data,
		cfg:     cfg,
		logger:  logger,
		now:     time.Now,
	}
}

// Run - executes scenarios and saves the report.
// A cancelled ctx stops the run before the next scenario; the partial report is still saved.
func (r *Runner) Run(ctx context.Context, scenarios []Scenario) (*entities.Report, error) {
	if len(scenarios) == 0 {
		return nil, ErrNoScenarios
	}

	picture, err := fakedata.WritePicture(filepath.Join(r.cfg.ArtifactsDir, "assets"))
	if err != nil {
		return nil, err
	}
	r.data.WithPicture(picture)

	report := &entities.Report{
		Suite:     SuiteName,
		BaseURL:   r.cfg.BaseURL,
		Browser:   r.browser.Name(),
		StartedAt: r.now(),
		Tests:     make([]*entities.TestResult, 0, len(scenarios)),
	}

	r.logger.WithField("scenarios", len(scenarios)).Info("Run started")

	var runErr error
	for _, sc := range scenarios {
		select {
		case <-ctx.Done():
			runErr = fmt.Errorf("run canceled: %w", ctx.Err())
		default:
		}
		if runErr != nil {
			break
		}
		report.Tests = append(report.Tests, r.runScenario(ctx, sc))
	}
	report.FinishedAt = r.now()

	path, err := r.store.Save(report)
	if err != nil {
		return report, errors.Join(runErr, fmt.Errorf("failed to save report: %w", err))
	}

	r.logger.WithFields(logrus.Fields{
		"path":   path,
		"tests":  len(report.Tests),
		"failed": report.Failed(),
	}).Info("Report saved")

	return report, runErr
}

func (r *Runner) runScenario(ctx context.Context, sc Scenario) *entities.TestResult {
	result := &entities.TestResult{
		ID:     uuid.NewString(),
		Name:   sc.Title(),
		Tags:   sc.AllTags(),
		Status: entities.StepStatusPassed,
	}
	log := r.logger.WithFields(logrus.Fields{
		"scenario": sc.ID,
		"suite":    sc.Suite,
	})
	started := r.now()
	defer func() {
		result.Duration = r.now().Sub(started)
	}()

	page, err := r.browser.NewPage(ctx)
	if err != nil {
		result.Status = entities.StepStatusBroken
		result.Error = err.Error()
		log.WithError(err).Error("Failed to open page")
		return result
	}
	defer func() {
		if err := r.browser.ClosePage(page); err != nil {
			log.WithError(err).Warn("Failed to close page")
		}
	}()

	recorder := reporting.NewRecorder()
	rep := reporting.Multi(recorder, reporting.NewLogReporter(r.logger))
	env := &Env{
		Page:     page,
		Reporter: rep,
		Pages: pages.Options{
			Reporter: rep,
			Timeout:  r.cfg.Timeout,
			Guard:    r.guard,
			Data:     r.data,
		},
		Data:        r.data,
		SeedRecords: r.cfg.SeedRecords,
	}

	err = execute(ctx, sc, env)
	result.Steps = recorder.Roots()

	if err != nil {
		var perr *panicError
		if errors.As(err, &perr) {
			result.Status = entities.StepStatusBroken
		} else {
			result.Status = entities.StepStatusFailed
		}
		result.Error = err.Error()
		if r.cfg.Screenshots {
			result.Screenshot = r.screenshot(ctx, page, sc, log)
		}
	}

	log.WithFields(logrus.Fields{
		"status":   result.Status,
		"duration": r.now().Sub(started).Round(time.Millisecond),
	}).Info(sc.Title())
	return result
}

// execute runs the scenario inside its root step and turns a panic into an error
func execute(ctx context.Context, sc Scenario, env *Env) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = &panicError{value: rec}
		}
	}()

	run := steps.WrapErr1(steps.Step(sc.Title()), env.Reporter, sc.Run)
	return run(ctx, env)
}

func (r *Runner) screenshot(ctx context.Context, page playwright.Page, sc Scenario, log *logrus.Entry) string {
	path, err := r.browser.Screenshot(context.WithoutCancel(ctx), page, sc.ID+"-"+sc.Name)
	if err != nil {
		log.WithError(err).Warn("Failed to take screenshot")
		return ""
	}
	log.WithField("path", path).Info("Screenshot saved")
	return path
}

package pages

import (
	"context"
	"errors"
	"fmt"
	"time"

	"demoqa_automation/application/steps"
	"demoqa_automation/domain/interfaces"
	"demoqa_automation/infrastructure/fakedata"
	"demoqa_automation/infrastructure/reporting"

	"github.com/playwright-community/playwright-go"
)

// DefaultTimeout is used for assertions when Options.Timeout is zero
const DefaultTimeout = 5 * time.Second

// Options - collaborators shared by every page object
type Options struct {
	Reporter interfaces.StepReporter
	Timeout  time.Duration
	Guard    interfaces.CleanupGuard
	Data     *fakedata.Generator
}

func (o Options) withDefaults() Options {
	if o.Reporter == nil {
		o.Reporter = reporting.Nop{}
	}
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
	if o.Data == nil {
		o.Data = fakedata.NewGenerator(0)
	}
	return o
}

// BasePage holds the functionality common to every DemoQA page
type BasePage struct {
	page   playwright.Page
	rep    interfaces.StepReporter
	expect playwright.PlaywrightAssertions
	opts   Options

	accordionGroup playwright.Locator
	menuList       playwright.Locator
}

// NewBasePage - creates the shared page object
func NewBasePage(page playwright.Page, opts Options) *BasePage {
	opts = opts.withDefaults()
	return &BasePage{
		page:           page,
		rep:            opts.Reporter,
		expect:         playwright.NewPlaywrightAssertions(float64(opts.Timeout.Milliseconds())),
		opts:           opts,
		accordionGroup: page.Locator(".accordion"),
		menuList:       page.Locator(".menu-list"),
	}
}

// Page - returns the underlying Playwright page
func (b *BasePage) Page() playwright.Page { return b.page }

// GoToHomePage - opens the DemoQA landing page
func (b *BasePage) GoToHomePage(ctx context.Context) error {
	return steps.Step().Do(ctx, b.rep, func(ctx context.Context) error {
		return b.goTo(ctx, "/")
	})
}

// NavigateToPage - opens a page through the side menu, e.g. ("Elements", "Web Tables")
func (b *BasePage) NavigateToPage(ctx context.Context, section, pageName string) error {
	return steps.Step().Do(ctx, b.rep, func(ctx context.Context) error {
		if err := b.accordionGroup.GetByText(section, playwright.LocatorGetByTextOptions{Exact: playwright.Bool(true)}).Click(); err != nil {
			return fmt.Errorf("failed to open section %s: %w", section, err)
		}
		if err := b.menuList.GetByText(pageName, playwright.LocatorGetByTextOptions{Exact: playwright.Bool(true)}).Click(); err != nil {
			return fmt.Errorf("failed to open page %s: %w", pageName, err)
		}
		return nil
	}, section, pageName)
}

// goTo navigates relative to the context base URL
func (b *BasePage) goTo(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := b.page.Goto(path, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
	}); err != nil {
		return fmt.Errorf("failed to navigate to %s: %w", path, err)
	}
	return nil
}

// check wraps a failed assertion with what was expected
func check(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// softChecks collects assertion failures so every check of a group runs
type softChecks struct {
	errs []error
}

func (s *softChecks) add(err error) {
	if err != nil {
		s.errs = append(s.errs, err)
	}
}

func (s *softChecks) err() error {
	return errors.Join(s.errs...)
}

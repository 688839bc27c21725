package browser

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"demoqa_automation/domain/interfaces"
	"demoqa_automation/infrastructure/config"

	"github.com/playwright-community/playwright-go"
	"github.com/sirupsen/logrus"
)

// Hosts serving the ads that cover DemoQA widgets
var adHosts = []string{
	"googlesyndication.com",
	"doubleclick.net",
	"googletagservices.com",
	"adservice.google.com",
	"adplus.",
}

var unsafeNameRe = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

type browserController struct {
	pw       *playwright.Playwright
	browser  playwright.Browser
	cfg      *config.Config
	logger   *logrus.Logger
	contexts []playwright.BrowserContext
	mu       sync.Mutex
}

// NewBrowserController - starts Playwright and launches the configured browser
func NewBrowserController(cfg *config.Config, logger *logrus.Logger) (interfaces.Browser, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright: %w", err)
	}

	browserType, err := selectBrowserType(pw, cfg.Browser)
	if err != nil {
		_ = pw.Stop()
		return nil, err
	}

	browser, err := browserType.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(cfg.Headless),
		SlowMo:   playwright.Float(float64(cfg.SlowMo.Milliseconds())),
	})
	if err != nil {
		_ = pw.Stop()
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"browser":  cfg.Browser,
		"headless": cfg.Headless,
		"version":  browser.Version(),
	}).Info("Browser launched")

	return &browserController{
		pw:      pw,
		browser: browser,
		cfg:     cfg,
		logger:  logger,
	}, nil
}

// Install - downloads the driver and the configured browser
func Install(cfg *config.Config) error {
	if err := playwright.Install(&playwright.RunOptions{
		Browsers: []string{cfg.Browser},
	}); err != nil {
		return fmt.Errorf("failed to install playwright: %w", err)
	}
	return nil
}

func selectBrowserType(pw *playwright.Playwright, name string) (playwright.BrowserType, error) {
	switch name {
	case config.BrowserChromium:
		return pw.Chromium, nil
	case config.BrowserFirefox:
		return pw.Firefox, nil
	case config.BrowserWebkit:
		return pw.WebKit, nil
	}
	return nil, fmt.Errorf("%w: unknown browser %q", config.ErrInvalidConfig, name)
}

// NewPage - opens a page in a fresh browser context rooted at the base URL
func (b *browserController) NewPage(ctx context.Context) (playwright.Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	bctx, err := b.browser.NewContext(playwright.BrowserNewContextOptions{
		BaseURL: playwright.String(b.cfg.BaseURL),
		Viewport: &playwright.Size{
			Width:  1280,
			Height: 720,
		},
		IgnoreHttpsErrors: playwright.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create context: %w", err)
	}

	timeout := float64(b.cfg.Timeout.Milliseconds())
	bctx.SetDefaultTimeout(timeout)
	bctx.SetDefaultNavigationTimeout(timeout * 2)

	if err := bctx.Route("**/*", blockAds); err != nil {
		b.logger.WithError(err).Warn("Failed to install ad blocking route")
	}

	page, err := bctx.NewPage()
	if err != nil {
		_ = bctx.Close()
		return nil, fmt.Errorf("failed to create page: %w", err)
	}

	page.OnDialog(func(dialog playwright.Dialog) {
		_ = dialog.Accept()
	})

	b.mu.Lock()
	b.contexts = append(b.contexts, bctx)
	b.mu.Unlock()

	return page, nil
}

func blockAds(route playwright.Route) {
	url := route.Request().URL()
	for _, host := range adHosts {
		if strings.Contains(url, host) {
			_ = route.Abort()
			return
		}
	}
	_ = route.Continue()
}

// Screenshot - saves a full page screenshot under <artifacts>/screenshots
func (b *browserController) Screenshot(ctx context.Context, page playwright.Page, name string) (string, error) {
	dir := filepath.Join(b.cfg.ArtifactsDir, "screenshots")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create screenshot directory: %w", err)
	}

	path := filepath.Join(dir, ScreenshotName(name))
	if _, err := page.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(path),
		FullPage: playwright.Bool(true),
	}); err != nil {
		return "", fmt.Errorf("failed to take screenshot: %w", err)
	}
	return path, nil
}

// ScreenshotName - turns a scenario name into a file name
func ScreenshotName(name string) string {
	name = strings.Trim(unsafeNameRe.ReplaceAllString(name, "_"), "_")
	if name == "" {
		name = "screenshot"
	}
	return name + ".png"
}

// ClosePage - closes a page together with its browser context
func (b *browserController) ClosePage(page playwright.Page) error {
	bctx := page.Context()

	b.mu.Lock()
	for i, c := range b.contexts {
		if c == bctx {
			b.contexts = append(b.contexts[:i], b.contexts[i+1:]...)
			break
		}
	}
	b.mu.Unlock()

	if err := bctx.Close(); err != nil && !isClosedErr(err) {
		return fmt.Errorf("failed to close context: %w", err)
	}
	return nil
}

// Name - returns the browser type in use
func (b *browserController) Name() string {
	return b.cfg.Browser
}

// Close - closes every open context, the browser and Playwright
func (b *browserController) Close() error {
	var closeErr error
	appendErr := func(what string, err error) {
		if err == nil || isClosedErr(err) {
			return
		}
		if closeErr != nil {
			closeErr = fmt.Errorf("%v; failed to close %s: %w", closeErr, what, err)
		} else {
			closeErr = fmt.Errorf("failed to close %s: %w", what, err)
		}
	}

	b.mu.Lock()
	contexts := b.contexts
	b.contexts = nil
	b.mu.Unlock()

	for _, c := range contexts {
		appendErr("context", c.Close())
	}

	if b.browser != nil {
		appendErr("browser", b.browser.Close())
		b.browser = nil
	}

	if b.pw != nil {
		appendErr("playwright", b.pw.Stop())
		b.pw = nil
	}

	return closeErr
}

// isClosedErr - reports errors caused by closing something already gone
func isClosedErr(err error) bool {
	errStr := err.Error()
	return strings.Contains(errStr, "closed") || strings.Contains(errStr, "target closed")
}

package interfaces

import (
	"context"

	"github.com/playwright-community/playwright-go"
)

// Browser defines the interface for browser automation
type Browser interface {
	// NewPage opens a page in a fresh, isolated browser context
	NewPage(ctx context.Context) (playwright.Page, error)

	// Screenshot saves a full page screenshot and returns the file path
	Screenshot(ctx context.Context, page playwright.Page, name string) (string, error)

	// ClosePage closes a page together with its browser context
	ClosePage(page playwright.Page) error

	// Name returns the browser type in use
	Name() string

	// Close closes the browser
	Close() error
}

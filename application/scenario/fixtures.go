package scenario

import (
	"context"
	"errors"

	"demoqa_automation/infrastructure/pages"
)

// WithWebtablePage - opens the web table, seeds it with env.SeedRecords records,
// runs fn and always removes the rows the suite created
func WithWebtablePage(fn func(ctx context.Context, env *Env, page *pages.WebtablePage) error) func(context.Context, *Env) error {
	return func(ctx context.Context, env *Env) (err error) {
		page := pages.NewWebtablePage(env.Page, env.Pages)
		if err := page.GoToPage(ctx); err != nil {
			return err
		}

		// cleanup also runs when seeding fails halfway or ctx is cancelled
		defer func() {
			cleanupCtx := context.WithoutCancel(ctx)
			if cerr := page.CleanUpWebtableRecords(cleanupCtx); cerr != nil {
				err = errors.Join(err, cerr)
			}
		}()

		if err := page.SetWebtableRecords(ctx, env.SeedRecords); err != nil {
			return err
		}
		return fn(ctx, env, page)
	}
}

// WithPracticeFormPage - opens the practice form and runs fn
func WithPracticeFormPage(fn func(ctx context.Context, env *Env, page *pages.PracticeFormPage) error) func(context.Context, *Env) error {
	return func(ctx context.Context, env *Env) error {
		page := pages.NewPracticeFormPage(env.Page, env.Pages)
		if err := page.GoToPage(ctx); err != nil {
			return err
		}
		return fn(ctx, env, page)
	}
}

// WithSelectMenuPage - opens the select menu page and runs fn
func WithSelectMenuPage(fn func(ctx context.Context, env *Env, page *pages.SelectMenuPage) error) func(context.Context, *Env) error {
	return func(ctx context.Context, env *Env) error {
		page := pages.NewSelectMenuPage(env.Page, env.Pages)
		if err := page.GoToPage(ctx); err != nil {
			return err
		}
		return fn(ctx, env, page)
	}
}

// Package steps wraps units of work in named reporting scopes.
//
// A step label is either rendered from a pattern whose {n} placeholders are
// replaced with the JSON form of the n-th call argument, or derived from the
// name of the wrapped function ("fillForm" -> "Fill form"). The reporting
// itself is delegated to an interfaces.StepReporter; nesting follows the
// context.Context handed from a step body to the steps it calls.
//
//	var search = steps.When("User searches for record with text - {0}")
//
//	func (p *Page) Search(ctx context.Context, text string) error {
//		return search.Do(ctx, p.reporter, func(ctx context.Context) error {
//			return p.input.Fill(text)
//		}, text)
//	}
package steps

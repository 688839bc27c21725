package steps

import (
	"context"
	"fmt"

	"demoqa_automation/domain/interfaces"
)

// BDD keywords prepended by the prefix helpers
const (
	PrefixGiven = "GIVEN"
	PrefixWhen  = "WHEN"
	PrefixThen  = "THEN"
	PrefixAnd   = "AND"
)

// Annotation is an immutable step label template.
// The zero value labels steps after the function they wrap.
type Annotation struct {
	pattern string
	name    string
}

// Step returns an annotation for pattern, or a name-derived annotation when no
// pattern is given. It panics when called with more than one pattern.
func Step(pattern ...string) Annotation {
	switch len(pattern) {
	case 0:
		return Annotation{}
	case 1:
		return Annotation{pattern: pattern[0]}
	}
	panic(fmt.Sprintf("steps: Step takes at most one pattern, got %d", len(pattern)))
}

// Given labels a precondition
func Given(pattern string) Annotation { return Step(PrefixGiven + " " + pattern) }

// When labels an action
func When(pattern string) Annotation { return Step(PrefixWhen + " " + pattern) }

// Then labels an expected outcome
func Then(pattern string) Annotation { return Step(PrefixThen + " " + pattern) }

// And labels a continuation of the previous step
func And(pattern string) Annotation { return Step(PrefixAnd + " " + pattern) }

// Named fixes the identifier used when the annotation has no pattern.
func (a Annotation) Named(name string) Annotation {
	a.name = name
	return a
}

// Pattern returns the template, prefix included
func (a Annotation) Pattern() string { return a.pattern }

// Label renders the step title for one invocation. name is the identifier of the
// wrapped function and is only consulted when the annotation has no pattern.
func (a Annotation) Label(name string, args ...any) string {
	if a.pattern != "" {
		return Render(a.pattern, args...)
	}
	if a.name != "" {
		name = a.name
	}
	return Uncamel(name)
}

// label resolves the function name lazily from the call stack; skip counts the
// frames above label, so 2 names the caller of Do or Call.
//
//go:noinline
func (a Annotation) label(skip int, args []any) string {
	if a.pattern != "" {
		return Render(a.pattern, args...)
	}
	name := a.name
	if name == "" {
		name = callerName(skip)
	}
	return Uncamel(name)
}

// Do runs body as a step reported by rep and returns its error unchanged.
// args feed the placeholders; without a pattern the step is named after the
// function calling Do.
//
//go:noinline
func (a Annotation) Do(ctx context.Context, rep interfaces.StepReporter, body func(ctx context.Context) error, args ...any) error {
	return rep.Step(ctx, a.label(2, args), body)
}

// Call is Do for bodies that produce a value.
//
//go:noinline
func Call[R any](ctx context.Context, rep interfaces.StepReporter, a Annotation, body func(ctx context.Context) (R, error), args ...any) (R, error) {
	return invoke(ctx, rep, a.label(2, args), body)
}

func invoke[R any](ctx context.Context, rep interfaces.StepReporter, title string, body func(ctx context.Context) (R, error)) (R, error) {
	var out R
	err := rep.Step(ctx, title, func(ctx context.Context) error {
		var err error
		out, err = body(ctx)
		return err
	})
	return out, err
}

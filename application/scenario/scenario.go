package scenario

import (
	"context"
	"errors"
	"strings"

	"demoqa_automation/domain/interfaces"
	"demoqa_automation/infrastructure/fakedata"
	"demoqa_automation/infrastructure/pages"

	"github.com/playwright-community/playwright-go"
)

// ErrNoScenarios is returned when a run has nothing to execute
var ErrNoScenarios = errors.New("no scenarios to run")

// Env is what a scenario gets to work with: a fresh page and the suite collaborators
type Env struct {
	Page        playwright.Page
	Reporter    interfaces.StepReporter
	Pages       pages.Options
	Data        *fakedata.Generator
	SeedRecords int
}

// Scenario is one test case of the suite
type Scenario struct {
	ID    string
	Suite string
	Name  string
	Tags  []string
	Run   func(ctx context.Context, env *Env) error
}

// Title - returns the label of the scenario's root step
func (s Scenario) Title() string {
	return s.ID + " " + s.Name
}

// AllTags - returns the scenario tags followed by its id tag
func (s Scenario) AllTags() []string {
	tags := make([]string, 0, len(s.Tags)+1)
	tags = append(tags, s.Tags...)
	return append(tags, "@"+s.ID)
}

// HasTag - reports whether the scenario carries tag; the leading @ and case are ignored
func (s Scenario) HasTag(tag string) bool {
	tag = normalizeTag(tag)
	for _, t := range s.AllTags() {
		if normalizeTag(t) == tag {
			return true
		}
	}
	return false
}

// Filter - returns the scenarios carrying any of tags, all of them when tags is empty
func Filter(scenarios []Scenario, tags ...string) []Scenario {
	var wanted []string
	for _, t := range tags {
		for _, part := range strings.Split(t, ",") {
			if part = strings.TrimSpace(part); part != "" {
				wanted = append(wanted, part)
			}
		}
	}
	if len(wanted) == 0 {
		return scenarios
	}

	var out []Scenario
	for _, s := range scenarios {
		for _, t := range wanted {
			if s.HasTag(t) {
				out = append(out, s)
				break
			}
		}
	}
	return out
}

func normalizeTag(tag string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(tag), "@"))
}

// chain runs fns in order and stops at the first error
func chain(ctx context.Context, fns ...func(context.Context) error) error {
	for _, fn := range fns {
		if err := fn(ctx); err != nil {
			return err
		}
	}
	return nil
}

package reporting

import (
	"context"

	"demoqa_automation/domain/interfaces"
)

// Nop runs step bodies without reporting them
type Nop struct{}

// Step - runs body
func (Nop) Step(ctx context.Context, _ string, body func(ctx context.Context) error) error {
	return body(ctx)
}

type multi []interfaces.StepReporter

// Multi - combines reporters; every step is opened in each of them, in order,
// each nested inside the previous one.
func Multi(reporters ...interfaces.StepReporter) interfaces.StepReporter {
	var m multi
	for _, r := range reporters {
		if r != nil {
			m = append(m, r)
		}
	}
	switch len(m) {
	case 0:
		return Nop{}
	case 1:
		return m[0]
	}
	return m
}

func (m multi) Step(ctx context.Context, title string, body func(ctx context.Context) error) error {
	return m.open(ctx, 0, title, body)
}

func (m multi) open(ctx context.Context, i int, title string, body func(ctx context.Context) error) error {
	if i == len(m) {
		return body(ctx)
	}
	return m[i].Step(ctx, title, func(ctx context.Context) error {
		return m.open(ctx, i+1, title, body)
	})
}

package interfaces

import "context"

// StepReporter defines the step-reporting collaborator
type StepReporter interface {
	// Step runs body inside a reporting scope titled title and returns its error unchanged.
	// The scope of the caller is carried by ctx; body receives the context of the new scope.
	Step(ctx context.Context, title string, body func(ctx context.Context) error) error
}

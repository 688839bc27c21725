package entities

import "time"

// StepStatus represents the outcome of a reported step
type StepStatus string

const (
	StepStatusRunning StepStatus = "running"
	StepStatusPassed  StepStatus = "passed"
	StepStatusFailed  StepStatus = "failed"
	// StepStatusBroken marks a step whose body panicked
	StepStatusBroken StepStatus = "broken"
)

// StepResult is one node of the step tree
type StepResult struct {
	ID         string        `json:"id" yaml:"id"`
	Title      string        `json:"title" yaml:"title"`
	Status     StepStatus    `json:"status" yaml:"status"`
	Error      string        `json:"error,omitempty" yaml:"error,omitempty"`
	StartedAt  time.Time     `json:"started_at" yaml:"started_at"`
	FinishedAt time.Time     `json:"finished_at" yaml:"finished_at"`
	Duration   time.Duration `json:"duration" yaml:"duration"`
	Steps      []*StepResult `json:"steps,omitempty" yaml:"steps,omitempty"`
}

// TestResult represents one executed scenario
type TestResult struct {
	ID         string        `json:"id" yaml:"id"`
	Name       string        `json:"name" yaml:"name"`
	Tags       []string      `json:"tags,omitempty" yaml:"tags,omitempty"`
	Status     StepStatus    `json:"status" yaml:"status"`
	Error      string        `json:"error,omitempty" yaml:"error,omitempty"`
	Screenshot string        `json:"screenshot,omitempty" yaml:"screenshot,omitempty"`
	Duration   time.Duration `json:"duration" yaml:"duration"`
	Steps      []*StepResult `json:"steps,omitempty" yaml:"steps,omitempty"`
}

// Report is the outcome of a whole run
type Report struct {
	Suite      string        `json:"suite" yaml:"suite"`
	BaseURL    string        `json:"base_url" yaml:"base_url"`
	Browser    string        `json:"browser" yaml:"browser"`
	StartedAt  time.Time     `json:"started_at" yaml:"started_at"`
	FinishedAt time.Time     `json:"finished_at" yaml:"finished_at"`
	Tests      []*TestResult `json:"tests" yaml:"tests"`
}

// Failed - returns the number of tests that did not pass
func (r *Report) Failed() int {
	n := 0
	for _, t := range r.Tests {
		if t.Status != StepStatusPassed {
			n++
		}
	}
	return n
}

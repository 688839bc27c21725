package reporting

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"demoqa_automation/domain/entities"
	"demoqa_automation/domain/interfaces"

	"github.com/google/uuid"
)

// errAbandoned is recorded when a step body exits without returning, e.g. through runtime.Goexit
var errAbandoned = errors.New("step exited without returning")

// Recorder builds the tree of executed steps.
// A step opened with the context of another step becomes its child.
type Recorder struct {
	mu    sync.Mutex
	roots []*entities.StepResult
	now   func() time.Time
}

type recorderKey struct{ r *Recorder }

// NewRecorder - creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{now: time.Now}
}

// Step - records body as a step titled title
func (r *Recorder) Step(ctx context.Context, title string, body func(ctx context.Context) error) error {
	_, err := r.Record(ctx, title, body)
	return err
}

// Record - runs body as a step and returns the finished node.
// A panic in body marks the node broken and is re-raised.
func (r *Recorder) Record(ctx context.Context, title string, body func(ctx context.Context) error) (node *entities.StepResult, err error) {
	node = &entities.StepResult{
		ID:     uuid.NewString(),
		Title:  title,
		Status: entities.StepStatusRunning,
	}

	r.mu.Lock()
	node.StartedAt = r.now()
	if parent, ok := ctx.Value(recorderKey{r}).(*entities.StepResult); ok {
		parent.Steps = append(parent.Steps, node)
	} else {
		r.roots = append(r.roots, node)
	}
	r.mu.Unlock()

	returned := false
	defer func() {
		rec := recover()

		r.mu.Lock()
		node.FinishedAt = r.now()
		node.Duration = node.FinishedAt.Sub(node.StartedAt)
		switch {
		case rec != nil:
			node.Status = entities.StepStatusBroken
			node.Error = fmt.Sprint(rec)
		case !returned:
			node.Status = entities.StepStatusBroken
			node.Error = errAbandoned.Error()
		case err != nil:
			node.Status = entities.StepStatusFailed
			node.Error = err.Error()
		default:
			node.Status = entities.StepStatusPassed
		}
		r.mu.Unlock()

		if rec != nil {
			panic(rec)
		}
	}()

	err = body(context.WithValue(ctx, recorderKey{r}, node))
	returned = true
	return node, err
}

// Roots - returns the top level steps recorded so far
func (r *Recorder) Roots() []*entities.StepResult {
	r.mu.Lock()
	defer r.mu.Unlock()

	roots := make([]*entities.StepResult, len(r.roots))
	copy(roots, r.roots)
	return roots
}

// Reset - forgets every recorded step
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.roots = nil
}

var _ interfaces.StepReporter = (*Recorder)(nil)
